package sqlc

import (
	"database/sql"
	"time"
)

// Every analytics query gets its own deadline so a slow database
// never holds up a game.
const (
	QuerierCtxTimeout = time.Second * 10
)

type DbManager struct {
	Querier   Querier
	Analytics *AnalyticsManager
}

func NewDbManager(db *sql.DB) DbManager {
	q := New(db)
	return DbManager{
		Querier:   q,
		Analytics: NewAnalyticsManager(q),
	}
}
