// Package deps собирает внешние зависимости приложения: конфиг, логгер,
// хранилище и сервисы. Используется и HTTP сервером, и blogctl.
package deps

import (
	"context"
	"fmt"

	"bloglist/internal/config"
	"bloglist/internal/logger"
	"bloglist/internal/repository"
	"bloglist/internal/services/auth"
	"bloglist/internal/services/blogs"

	"github.com/rs/zerolog"
)

type Deps struct {
	Config  *config.Config
	Log     *zerolog.Logger
	Storage repository.Storage
	Auth    *auth.Authentication
	Blogs   *blogs.Blogs
}

// New parses configuration from args and the environment and opens the storage.
// The caller owns the result and must Close it.
func New(ctx context.Context, args []string) (*Deps, error) {
	cfg, err := config.NewConfig(args)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewLogger(cfg.LogLevel)
	if cfg.JWTSecretGenerated {
		log.Warn().Msg("Using auto-generated JWT secret key. For production, set JWT_SECRET_KEY environment variable.")
	}

	storage, err := repository.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	driver := cfg.DatabaseDriver
	if driver == "" {
		driver = "inmemory"
	}
	log.Info().Str("driver", driver).Msg("storage ready")

	authSvc, err := auth.NewAuthentication(storage, cfg.JWTSecretKey, cfg.JWTAccessExpire, auth.WithBcryptCost(cfg.BcryptCost))
	if err != nil {
		_ = storage.Close()
		return nil, fmt.Errorf("failed to init auth service: %w", err)
	}

	return &Deps{
		Config:  cfg,
		Log:     log,
		Storage: storage,
		Auth:    authSvc,
		Blogs:   blogs.NewServiceBlogs(storage),
	}, nil
}

func (d *Deps) Close() error {
	return d.Storage.Close()
}
