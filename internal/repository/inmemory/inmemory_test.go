package inmemory

import (
	"context"
	"errors"
	"testing"
	"time"

	"bloglist/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, s *InmemoryStorage, id, username string) models.User {
	t.Helper()
	u, err := s.UserCreate(context.Background(), models.User{
		ID:        id,
		Username:  username,
		Name:      "Name of " + username,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	return u
}

func TestInmemoryStorage_UserCreate(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	seedUser(t, s, "u1", "root")

	_, err := s.UserCreate(ctx, models.User{ID: "u2", Username: "root"})
	assert.ErrorIs(t, err, models.ErrConflict)

	_, err = s.UserGetByID(ctx, "u2")
	assert.ErrorIs(t, err, models.ErrUnfound, "failed registration leaves no trace")

	got, err := s.UserGetByUsername(ctx, "root")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)

	_, err = s.UserGetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, models.ErrUnfound)
}

func TestInmemoryStorage_PostLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	seedUser(t, s, "u1", "root")

	p1, err := s.PostCreate(ctx, models.Post{ID: "p1", Title: "first", URL: "a.com", UserID: "u1"})
	require.NoError(t, err)
	_, err = s.PostCreate(ctx, models.Post{ID: "p2", Title: "second", URL: "b.com", UserID: "u1"})
	require.NoError(t, err)
	require.NoError(t, s.UserAppendPost(ctx, "u1", p1.ID))
	require.NoError(t, s.UserAppendPost(ctx, "u1", "p2"))

	all, err := s.PostGetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "p1", all[0].ID, "insertion order is kept")
	require.NotNil(t, all[0].User)
	assert.Equal(t, "root", all[0].User.Username)

	updated, err := s.PostUpdate(ctx, models.Post{ID: "p1", Title: "renamed", URL: "a.com", Likes: 4, UserID: "forged"})
	require.NoError(t, err)
	assert.Equal(t, "u1", updated.UserID, "owner is not writable")
	assert.Equal(t, 4, updated.Likes)

	require.NoError(t, s.PostDelete(ctx, "p1"))
	_, err = s.PostGetByID(ctx, "p1")
	assert.ErrorIs(t, err, models.ErrUnfound)
	assert.ErrorIs(t, s.PostDelete(ctx, "p1"), models.ErrUnfound)

	u, err := s.UserGetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, u.Posts, "deleted id stays in the owner's list")
}

func TestInmemoryStorage_WithinTxRollback(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	seedUser(t, s, "u1", "root")

	boom := errors.New("boom")
	err := s.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.PostCreate(ctx, models.Post{ID: "p1", Title: "t", URL: "a.com", UserID: "u1"}); err != nil {
			return err
		}
		if err := s.UserAppendPost(ctx, "u1", "p1"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	all, err := s.PostGetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	u, err := s.UserGetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, u.Posts)
}

func TestInmemoryStorage_WithinTxCommit(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	seedUser(t, s, "u1", "root")

	err := s.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.PostCreate(ctx, models.Post{ID: "p1", Title: "t", URL: "a.com", UserID: "u1"}); err != nil {
			return err
		}
		return s.UserAppendPost(ctx, "u1", "p1")
	})
	require.NoError(t, err)

	p, err := s.PostGetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "u1", p.UserID)
}

func TestInmemoryStorage_ReturnedUserIsACopy(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	seedUser(t, s, "u1", "root")
	require.NoError(t, s.UserAppendPost(ctx, "u1", "p1"))

	u, err := s.UserGetByID(ctx, "u1")
	require.NoError(t, err)
	u.Posts[0] = "mutated"

	again, err := s.UserGetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, again.Posts)
}
