package sqlc

import (
	"context"
	"database/sql"

	"github.com/sqlc-dev/pqtype"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	PrepareContext(context.Context, string) (*sql.Stmt, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

type Querier interface {
	IncrementGamesCreatedCount(ctx context.Context, serverIp pqtype.Inet) error
	IncrementGamesWonCount(ctx context.Context, serverIp pqtype.Inet) error
	IncrementGamesLostCount(ctx context.Context, serverIp pqtype.Inet) error
	GetGamesCreatedCount(ctx context.Context, serverIp pqtype.Inet) (int64, error)
	GetGamesWonCount(ctx context.Context, serverIp pqtype.Inet) (int64, error)
	GetGamesLostCount(ctx context.Context, serverIp pqtype.Inet) (int64, error)
}

var _ Querier = (*Queries)(nil)
