package blogs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bloglist/internal/domain/analytics"
	"bloglist/internal/domain/models"
)

/*
BlogStorage - хранилище постов и пользователей, нужное сервису
*/

//go:generate mockgen -source=blogs.go -destination=../../mocks/mock_blog_storage.go -package=mocks
type BlogStorage interface {
	PostCreate(ctx context.Context, post models.Post) (models.Post, error)
	PostGetByID(ctx context.Context, id string) (models.Post, error)
	PostGetAll(ctx context.Context) ([]models.Post, error)
	PostUpdate(ctx context.Context, post models.Post) (models.Post, error)
	PostDelete(ctx context.Context, id string) error

	UserGetByID(ctx context.Context, id string) (models.User, error)
	UserGetAll(ctx context.Context) ([]models.User, error)
	UserAppendPost(ctx context.Context, userID, postID string) error

	Ping(ctx context.Context) error

	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserWithPosts is a user with its owned posts resolved. Ids of deleted
// posts that linger in the user's list are skipped.
type UserWithPosts struct {
	User  models.User
	Posts []models.Post
}

// Blogs реализует бизнес-логику постов: чтение открыто всем, изменения только владельцу
type Blogs struct {
	storage BlogStorage
}

func NewServiceBlogs(storage BlogStorage) *Blogs {
	return &Blogs{storage: storage}
}

func (s *Blogs) List(ctx context.Context) ([]models.Post, error) {
	posts, err := s.storage.PostGetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (s *Blogs) Get(ctx context.Context, id string) (models.Post, error) {
	if id == "" {
		return models.Post{}, models.ErrInvalidData
	}

	post, err := s.storage.PostGetByID(ctx, id)
	if err != nil {
		return models.Post{}, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

// Create stores post owned by actor. Any id or owner on the input is replaced.
// The post insert and the owner's list append happen in one transaction.
func (s *Blogs) Create(ctx context.Context, actor models.Identity, post models.Post) (models.Post, error) {
	if actor.UserID == "" {
		return models.Post{}, models.ErrMissingToken
	}

	post.ID = models.NewID()
	post.UserID = actor.UserID
	post.User = nil
	post.CreatedAt = time.Now().UTC()

	if err := post.Validate(); err != nil {
		return models.Post{}, err
	}

	var created models.Post
	err := s.storage.WithinTx(ctx, func(ctx context.Context) error {
		owner, err := s.storage.UserGetByID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, models.ErrUnfound) {
				// token outlived its user
				return fmt.Errorf("%w: owner does not exist", models.ErrInvalidToken)
			}
			return fmt.Errorf("failed to get owner: %w", err)
		}

		created, err = s.storage.PostCreate(ctx, post)
		if err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}

		if err := s.storage.UserAppendPost(ctx, owner.ID, created.ID); err != nil {
			return fmt.Errorf("failed to link post to owner: %w", err)
		}

		ref := owner.Ref()
		created.User = &ref
		return nil
	})
	if err != nil {
		return models.Post{}, err
	}
	return created, nil
}

// Update applies upd to the post if actor owns it. ID and owner never change.
func (s *Blogs) Update(ctx context.Context, actor models.Identity, id string, upd models.PostUpdate) (models.Post, error) {
	if actor.UserID == "" {
		return models.Post{}, models.ErrMissingToken
	}

	var updated models.Post
	err := s.storage.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.storage.PostGetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get post: %w", err)
		}

		if AuthorizeMutation(actor, existing) != Allow {
			return models.ErrForbidden
		}

		next := upd.Apply(existing)
		if err := next.Validate(); err != nil {
			return err
		}

		updated, err = s.storage.PostUpdate(ctx, next)
		if err != nil {
			return fmt.Errorf("failed to update post: %w", err)
		}
		if updated.User == nil {
			updated.User = existing.User
		}
		return nil
	})
	if err != nil {
		return models.Post{}, err
	}
	return updated, nil
}

// Delete removes the post if actor owns it. The id stays in the owner's list.
func (s *Blogs) Delete(ctx context.Context, actor models.Identity, id string) error {
	if actor.UserID == "" {
		return models.ErrMissingToken
	}

	return s.storage.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.storage.PostGetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get post: %w", err)
		}

		if AuthorizeMutation(actor, existing) != Allow {
			return models.ErrForbidden
		}

		if err := s.storage.PostDelete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete post: %w", err)
		}
		return nil
	})
}

func (s *Blogs) ListUsers(ctx context.Context) ([]UserWithPosts, error) {
	users, err := s.storage.UserGetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	posts, err := s.storage.PostGetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	byID := make(map[string]models.Post, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
	}

	result := make([]UserWithPosts, 0, len(users))
	for _, u := range users {
		owned := make([]models.Post, 0, len(u.Posts))
		for _, id := range u.Posts {
			if p, ok := byID[id]; ok {
				owned = append(owned, p)
			}
		}
		result = append(result, UserWithPosts{User: u, Posts: owned})
	}
	return result, nil
}

// Stats runs the analytics over the current post snapshot.
func (s *Blogs) Stats(ctx context.Context) (analytics.Summary, error) {
	posts, err := s.storage.PostGetAll(ctx)
	if err != nil {
		return analytics.Summary{}, fmt.Errorf("failed to list posts: %w", err)
	}
	return analytics.Summarize(posts), nil
}

// PingDataBase проверяет соединение с хранилищем
func (s *Blogs) PingDataBase(ctx context.Context) error {
	if err := s.storage.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
