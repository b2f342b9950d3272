package repository

import (
	"context"
	"fmt"

	"bloglist/internal/domain/models"
	"bloglist/internal/repository/inmemory"
	"bloglist/internal/repository/sqlstore"
)

// Storage - основной интерфейс хранилища пользователей и постов
type (
	Storage interface {
		// Пользователи
		UserCreate(ctx context.Context, user models.User) (models.User, error)
		UserGetByID(ctx context.Context, id string) (models.User, error)
		UserGetByUsername(ctx context.Context, username string) (models.User, error)
		UserGetAll(ctx context.Context) ([]models.User, error)
		UserAppendPost(ctx context.Context, userID, postID string) error

		// Посты
		PostCreate(ctx context.Context, post models.Post) (models.Post, error)
		PostGetByID(ctx context.Context, id string) (models.Post, error)
		PostGetAll(ctx context.Context) ([]models.Post, error)
		PostUpdate(ctx context.Context, post models.Post) (models.Post, error)
		PostDelete(ctx context.Context, id string) error

		// Транзакции
		WithinTx(ctx context.Context, fn func(ctx context.Context) error) error

		// Управление соединением
		Ping(ctx context.Context) error
		Close() error
	}
)

var (
	_ Storage = (*inmemory.InmemoryStorage)(nil)
	_ Storage = (*sqlstore.Storage)(nil)
)

// Open выбирает хранилище по драйверу: пустой драйвер - память процесса
func Open(ctx context.Context, driver, dsn string) (Storage, error) {
	if driver == "" {
		return inmemory.NewStorage(), nil
	}

	s, err := sqlstore.NewStorage(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", driver, err)
	}
	return s, nil
}
