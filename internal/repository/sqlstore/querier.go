package sqlstore

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// Querier - общее подмножество *sqlx.DB и *sqlx.Tx
type Querier interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

var (
	_ Querier = (*sqlx.DB)(nil)
	_ Querier = (*sqlx.Tx)(nil)
)

// querier возвращает транзакцию из контекста, если она есть, иначе пул соединений
func (s *Storage) querier(ctx context.Context) Querier {
	if tx, ok := ctx.Value(keyTxValue).(*sqlx.Tx); ok {
		return tx
	}
	return s.db
}
