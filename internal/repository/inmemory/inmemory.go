package inmemory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"bloglist/internal/domain/models"
)

type keyTxType int

const keyTxValue keyTxType = iota

// InmemoryStorage keeps users and posts in maps guarded by one RWMutex.
// WithinTx holds the write lock for the whole callback and restores a
// snapshot if the callback fails.
type InmemoryStorage struct {
	mu        sync.RWMutex
	users     map[string]models.User
	usernames map[string]string // username -> id
	posts     map[string]models.Post
	postOrder []string
}

func NewStorage() *InmemoryStorage {
	s := &InmemoryStorage{}
	s.reset()
	return s
}

func (m *InmemoryStorage) reset() {
	m.users = make(map[string]models.User)
	m.usernames = make(map[string]string)
	m.posts = make(map[string]models.Post)
	m.postOrder = nil
}

func (m *InmemoryStorage) inTx(ctx context.Context) bool {
	owner, ok := ctx.Value(keyTxValue).(*InmemoryStorage)
	return ok && owner == m
}

func (m *InmemoryStorage) rlock(ctx context.Context) func() {
	if m.inTx(ctx) {
		return func() {}
	}
	m.mu.RLock()
	return m.mu.RUnlock
}

func (m *InmemoryStorage) lock(ctx context.Context) func() {
	if m.inTx(ctx) {
		return func() {}
	}
	m.mu.Lock()
	return m.mu.Unlock
}

func (m *InmemoryStorage) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if m.inTx(ctx) {
		return fn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	snap := m.snapshot()
	defer func() {
		if p := recover(); p != nil {
			m.restore(snap)
			panic(p)
		}
		if err != nil {
			m.restore(snap)
		}
	}()

	err = fn(context.WithValue(ctx, keyTxValue, m))
	return err
}

type snapshot struct {
	users     map[string]models.User
	usernames map[string]string
	posts     map[string]models.Post
	postOrder []string
}

func (m *InmemoryStorage) snapshot() snapshot {
	s := snapshot{
		users:     make(map[string]models.User, len(m.users)),
		usernames: make(map[string]string, len(m.usernames)),
		posts:     make(map[string]models.Post, len(m.posts)),
		postOrder: append([]string(nil), m.postOrder...),
	}
	for k, v := range m.users {
		v.Posts = append([]string(nil), v.Posts...)
		s.users[k] = v
	}
	for k, v := range m.usernames {
		s.usernames[k] = v
	}
	for k, v := range m.posts {
		s.posts[k] = v
	}
	return s
}

func (m *InmemoryStorage) restore(s snapshot) {
	m.users = s.users
	m.usernames = s.usernames
	m.posts = s.posts
	m.postOrder = s.postOrder
}

func (m *InmemoryStorage) UserCreate(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	if user.ID == "" || user.Username == "" {
		return models.User{}, models.ErrInvalidData
	}

	defer m.lock(ctx)()

	if _, exists := m.usernames[user.Username]; exists {
		return models.User{}, fmt.Errorf("%w: username %q is taken", models.ErrConflict, user.Username)
	}
	if _, exists := m.users[user.ID]; exists {
		return models.User{}, fmt.Errorf("%w: user id %q", models.ErrConflict, user.ID)
	}

	user.Posts = append([]string{}, user.Posts...)
	m.users[user.ID] = user
	m.usernames[user.Username] = user.ID
	return copyUser(user), nil
}

func (m *InmemoryStorage) UserGetByID(ctx context.Context, id string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	defer m.rlock(ctx)()

	user, ok := m.users[id]
	if !ok {
		return models.User{}, fmt.Errorf("%w: user %q", models.ErrUnfound, id)
	}
	return copyUser(user), nil
}

func (m *InmemoryStorage) UserGetByUsername(ctx context.Context, username string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	defer m.rlock(ctx)()

	id, ok := m.usernames[username]
	if !ok {
		return models.User{}, fmt.Errorf("%w: username %q", models.ErrUnfound, username)
	}
	return copyUser(m.users[id]), nil
}

func (m *InmemoryStorage) UserGetAll(ctx context.Context) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defer m.rlock(ctx)()

	users := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, copyUser(u))
	}

	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].Username < users[j].Username
		}
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func (m *InmemoryStorage) UserAppendPost(ctx context.Context, userID, postID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	defer m.lock(ctx)()

	user, ok := m.users[userID]
	if !ok {
		return fmt.Errorf("%w: user %q", models.ErrUnfound, userID)
	}
	user.Posts = append(user.Posts, postID)
	m.users[userID] = user
	return nil
}

func (m *InmemoryStorage) PostCreate(ctx context.Context, post models.Post) (models.Post, error) {
	if err := ctx.Err(); err != nil {
		return models.Post{}, err
	}
	if post.ID == "" {
		return models.Post{}, models.ErrInvalidData
	}

	defer m.lock(ctx)()

	if _, exists := m.posts[post.ID]; exists {
		return models.Post{}, fmt.Errorf("%w: post id %q", models.ErrConflict, post.ID)
	}

	post.User = nil
	m.posts[post.ID] = post
	m.postOrder = append(m.postOrder, post.ID)
	return post, nil
}

func (m *InmemoryStorage) PostGetByID(ctx context.Context, id string) (models.Post, error) {
	if err := ctx.Err(); err != nil {
		return models.Post{}, err
	}

	defer m.rlock(ctx)()

	post, ok := m.posts[id]
	if !ok {
		return models.Post{}, fmt.Errorf("%w: post %q", models.ErrUnfound, id)
	}
	return m.withOwner(post), nil
}

func (m *InmemoryStorage) PostGetAll(ctx context.Context) ([]models.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defer m.rlock(ctx)()

	posts := make([]models.Post, 0, len(m.postOrder))
	for _, id := range m.postOrder {
		posts = append(posts, m.withOwner(m.posts[id]))
	}
	return posts, nil
}

// PostUpdate overwrites the mutable fields. ID, owner and CreatedAt are kept from the stored record.
func (m *InmemoryStorage) PostUpdate(ctx context.Context, post models.Post) (models.Post, error) {
	if err := ctx.Err(); err != nil {
		return models.Post{}, err
	}

	defer m.lock(ctx)()

	stored, ok := m.posts[post.ID]
	if !ok {
		return models.Post{}, fmt.Errorf("%w: post %q", models.ErrUnfound, post.ID)
	}

	stored.Title = post.Title
	stored.Author = post.Author
	stored.URL = post.URL
	stored.Likes = post.Likes
	m.posts[post.ID] = stored
	return m.withOwner(stored), nil
}

func (m *InmemoryStorage) PostDelete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	defer m.lock(ctx)()

	if _, ok := m.posts[id]; !ok {
		return fmt.Errorf("%w: post %q", models.ErrUnfound, id)
	}

	delete(m.posts, id)
	for i, pid := range m.postOrder {
		if pid == id {
			m.postOrder = append(m.postOrder[:i:i], m.postOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (m *InmemoryStorage) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *InmemoryStorage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
	return nil
}

// withOwner must be called with the lock held.
func (m *InmemoryStorage) withOwner(p models.Post) models.Post {
	if u, ok := m.users[p.UserID]; ok {
		ref := u.Ref()
		p.User = &ref
	}
	return p
}

func copyUser(u models.User) models.User {
	u.Posts = append([]string{}, u.Posts...)
	return u
}
