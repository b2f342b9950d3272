package sqlstore

import (
	"context"
	"fmt"

	"bloglist/internal/domain/models"
	"bloglist/internal/repository/dto"

	sq "github.com/Masterminds/squirrel"
)

// postSelect joins the owner so reads carry the user projection.
func (s *Storage) postSelect() sq.SelectBuilder {
	return s.builder.
		Select(
			"p.id", "p.title", "p.author", "p.url", "p.likes", "p.user_id", "p.created_at",
			"u.username AS owner_username", "u.name AS owner_name",
		).
		From("posts p").
		LeftJoin("users u ON u.id = p.user_id")
}

func (s *Storage) PostCreate(ctx context.Context, post models.Post) (_ models.Post, err error) {
	if post.ID == "" {
		return models.Post{}, models.ErrInvalidData
	}

	ctx, span := s.startSpan(ctx, "post_create")
	defer func() { endSpan(span, err) }()

	row := dto.PostDBFromDomain(post)
	query, args, err := s.builder.
		Insert("posts").
		Columns("id", "title", "author", "url", "likes", "user_id", "created_at").
		Values(row.ID, row.Title, row.Author, row.URL, row.Likes, row.UserID, row.CreatedAt).
		ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := s.querier(ctx).ExecContext(ctx, query, args...); err != nil {
		return models.Post{}, mapError(err, fmt.Sprintf("post id %q", post.ID))
	}

	return row.ToDomain(), nil
}

func (s *Storage) PostGetByID(ctx context.Context, id string) (_ models.Post, err error) {
	ctx, span := s.startSpan(ctx, "post_get_by_id")
	defer func() { endSpan(span, err) }()

	query, args, err := s.postSelect().
		Where(sq.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("failed to build query: %w", err)
	}

	var row dto.PostDB
	if err := s.querier(ctx).GetContext(ctx, &row, query, args...); err != nil {
		return models.Post{}, mapError(err, fmt.Sprintf("post %q", id))
	}
	return row.ToDomain(), nil
}

func (s *Storage) PostGetAll(ctx context.Context) (_ []models.Post, err error) {
	ctx, span := s.startSpan(ctx, "post_get_all")
	defer func() { endSpan(span, err) }()

	query, args, err := s.postSelect().
		OrderBy("p.created_at", "p.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var rows []dto.PostDB
	if err := s.querier(ctx).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, mapError(err, "posts")
	}

	posts := make([]models.Post, 0, len(rows))
	for i := range rows {
		posts = append(posts, rows[i].ToDomain())
	}
	return posts, nil
}

// PostUpdate overwrites the mutable fields. id, user_id and created_at are never written.
func (s *Storage) PostUpdate(ctx context.Context, post models.Post) (_ models.Post, err error) {
	ctx, span := s.startSpan(ctx, "post_update")
	defer func() { endSpan(span, err) }()

	query, args, err := s.builder.
		Update("posts").
		Set("title", post.Title).
		Set("author", post.Author).
		Set("url", post.URL).
		Set("likes", post.Likes).
		Where(sq.Eq{"id": post.ID}).
		ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("failed to build query: %w", err)
	}

	res, err := s.querier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return models.Post{}, mapError(err, fmt.Sprintf("post %q", post.ID))
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return models.Post{}, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.Post{}, fmt.Errorf("%w: post %q", models.ErrUnfound, post.ID)
	}

	return s.PostGetByID(ctx, post.ID)
}

// PostDelete removes the post row only. The owner's user_posts link is kept.
func (s *Storage) PostDelete(ctx context.Context, id string) (err error) {
	ctx, span := s.startSpan(ctx, "post_delete")
	defer func() { endSpan(span, err) }()

	query, args, err := s.builder.
		Delete("posts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	res, err := s.querier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return mapError(err, fmt.Sprintf("post %q", id))
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: post %q", models.ErrUnfound, id)
	}
	return nil
}
