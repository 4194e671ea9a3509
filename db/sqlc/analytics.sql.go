package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

const incrementGamesCreatedCount = `INSERT INTO game_server_analytics (server_ip, games_created) VALUES ($1, 1)
ON CONFLICT (server_ip) DO UPDATE SET games_created = game_server_analytics.games_created + 1`

func (q *Queries) IncrementGamesCreatedCount(ctx context.Context, serverIp pqtype.Inet) error {
	_, err := q.db.ExecContext(ctx, incrementGamesCreatedCount, serverIp)
	return err
}

const incrementGamesWonCount = `INSERT INTO game_server_analytics (server_ip, games_won) VALUES ($1, 1)
ON CONFLICT (server_ip) DO UPDATE SET games_won = game_server_analytics.games_won + 1`

func (q *Queries) IncrementGamesWonCount(ctx context.Context, serverIp pqtype.Inet) error {
	_, err := q.db.ExecContext(ctx, incrementGamesWonCount, serverIp)
	return err
}

const incrementGamesLostCount = `INSERT INTO game_server_analytics (server_ip, games_lost) VALUES ($1, 1)
ON CONFLICT (server_ip) DO UPDATE SET games_lost = game_server_analytics.games_lost + 1`

func (q *Queries) IncrementGamesLostCount(ctx context.Context, serverIp pqtype.Inet) error {
	_, err := q.db.ExecContext(ctx, incrementGamesLostCount, serverIp)
	return err
}

const getGamesCreatedCount = `SELECT games_created FROM game_server_analytics WHERE server_ip = $1`

func (q *Queries) GetGamesCreatedCount(ctx context.Context, serverIp pqtype.Inet) (int64, error) {
	row := q.db.QueryRowContext(ctx, getGamesCreatedCount, serverIp)
	var gamesCreated int64
	err := row.Scan(&gamesCreated)
	return gamesCreated, err
}

const getGamesWonCount = `SELECT games_won FROM game_server_analytics WHERE server_ip = $1`

func (q *Queries) GetGamesWonCount(ctx context.Context, serverIp pqtype.Inet) (int64, error) {
	row := q.db.QueryRowContext(ctx, getGamesWonCount, serverIp)
	var gamesWon int64
	err := row.Scan(&gamesWon)
	return gamesWon, err
}

const getGamesLostCount = `SELECT games_lost FROM game_server_analytics WHERE server_ip = $1`

func (q *Queries) GetGamesLostCount(ctx context.Context, serverIp pqtype.Inet) (int64, error) {
	row := q.db.QueryRowContext(ctx, getGamesLostCount, serverIp)
	var gamesLost int64
	err := row.Scan(&gamesLost)
	return gamesLost, err
}
