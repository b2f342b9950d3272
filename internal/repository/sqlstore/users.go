package sqlstore

import (
	"context"
	"fmt"

	"bloglist/internal/domain/models"
	"bloglist/internal/repository/dto"

	sq "github.com/Masterminds/squirrel"
)

var userColumns = []string{"id", "username", "name", "password_hash", "created_at"}

func (s *Storage) UserCreate(ctx context.Context, user models.User) (_ models.User, err error) {
	if user.ID == "" || user.Username == "" {
		return models.User{}, models.ErrInvalidData
	}

	ctx, span := s.startSpan(ctx, "user_create")
	defer func() { endSpan(span, err) }()

	row := dto.UserDBFromDomain(user)
	query, args, err := s.builder.
		Insert("users").
		Columns(userColumns...).
		Values(row.ID, row.Username, row.Name, row.PasswordHash, row.CreatedAt).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := s.querier(ctx).ExecContext(ctx, query, args...); err != nil {
		return models.User{}, mapError(err, fmt.Sprintf("username %q", user.Username))
	}

	return dto.UserDBToDomain(row, nil), nil
}

func (s *Storage) UserGetByID(ctx context.Context, id string) (_ models.User, err error) {
	ctx, span := s.startSpan(ctx, "user_get_by_id")
	defer func() { endSpan(span, err) }()

	return s.userGet(ctx, sq.Eq{"id": id}, fmt.Sprintf("user %q", id))
}

func (s *Storage) UserGetByUsername(ctx context.Context, username string) (_ models.User, err error) {
	ctx, span := s.startSpan(ctx, "user_get_by_username")
	defer func() { endSpan(span, err) }()

	return s.userGet(ctx, sq.Eq{"username": username}, fmt.Sprintf("username %q", username))
}

func (s *Storage) userGet(ctx context.Context, where sq.Eq, what string) (models.User, error) {
	query, args, err := s.builder.
		Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("failed to build query: %w", err)
	}

	var row dto.UserDB
	if err := s.querier(ctx).GetContext(ctx, &row, query, args...); err != nil {
		return models.User{}, mapError(err, what)
	}

	links, err := s.userPosts(ctx, sq.Eq{"user_id": row.ID})
	if err != nil {
		return models.User{}, err
	}

	return dto.UserDBToDomain(row, links[row.ID]), nil
}

func (s *Storage) UserGetAll(ctx context.Context) (_ []models.User, err error) {
	ctx, span := s.startSpan(ctx, "user_get_all")
	defer func() { endSpan(span, err) }()

	query, args, err := s.builder.
		Select(userColumns...).
		From("users").
		OrderBy("created_at", "username").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var rows []dto.UserDB
	if err := s.querier(ctx).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, mapError(err, "users")
	}

	links, err := s.userPosts(ctx, nil)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, dto.UserDBToDomain(row, links[row.ID]))
	}
	return users, nil
}

// userPosts возвращает id постов по пользователям в порядке добавления
func (s *Storage) userPosts(ctx context.Context, where sq.Sqlizer) (map[string][]string, error) {
	b := s.builder.
		Select("user_id", "post_id", "position").
		From("user_posts").
		OrderBy("user_id", "position")
	if where != nil {
		b = b.Where(where)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var rows []dto.UserPostDB
	if err := s.querier(ctx).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, mapError(err, "user posts")
	}

	links := make(map[string][]string)
	for _, r := range rows {
		links[r.UserID] = append(links[r.UserID], r.PostID)
	}
	return links, nil
}

// UserAppendPost adds postID to the end of the user's list.
// Must run inside WithinTx so the position read and the insert are atomic.
func (s *Storage) UserAppendPost(ctx context.Context, userID, postID string) (err error) {
	ctx, span := s.startSpan(ctx, "user_append_post")
	defer func() { endSpan(span, err) }()

	q := s.querier(ctx)

	query, args, err := s.builder.
		Select("COUNT(*)").
		From("users").
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	var exists int
	if err := q.GetContext(ctx, &exists, query, args...); err != nil {
		return mapError(err, fmt.Sprintf("user %q", userID))
	}
	if exists == 0 {
		return fmt.Errorf("%w: user %q", models.ErrUnfound, userID)
	}

	next := s.builder.
		Select().
		Column(sq.Expr("?", userID)).
		Column(sq.Expr("?", postID)).
		Column("COALESCE(MAX(position) + 1, 0)").
		From("user_posts").
		Where(sq.Eq{"user_id": userID})

	query, args, err = s.builder.
		Insert("user_posts").
		Columns("user_id", "post_id", "position").
		Select(next).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return mapError(err, fmt.Sprintf("link post %q", postID))
	}
	return nil
}
