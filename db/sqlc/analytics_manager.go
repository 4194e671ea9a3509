package sqlc

import (
	"context"
	"net"

	mb "github.com/saeidalz13/battleship-solo/models/battleship"
	"github.com/sqlc-dev/pqtype"
)

// AnalyticsManager keeps per server counters of how games start and end.
// A nil querier turns every call into a no-op, which is how the server
// runs without a database.
type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func inet(ipnet net.IPNet) pqtype.Inet {
	return pqtype.Inet{IPNet: ipnet, Valid: true}
}

func (a *AnalyticsManager) Enabled() bool {
	return a != nil && a.queries != nil
}

func (a *AnalyticsManager) RecordGameCreated(ctx context.Context, serverIpNet net.IPNet) error {
	if !a.Enabled() {
		return nil
	}
	return a.queries.IncrementGamesCreatedCount(ctx, inet(serverIpNet))
}

// RecordMatchResult ignores games that are still running.
func (a *AnalyticsManager) RecordMatchResult(ctx context.Context, serverIpNet net.IPNet, status mb.MatchStatus) error {
	if !a.Enabled() {
		return nil
	}

	switch status {
	case mb.MatchStatusWon:
		return a.queries.IncrementGamesWonCount(ctx, inet(serverIpNet))
	case mb.MatchStatusLost:
		return a.queries.IncrementGamesLostCount(ctx, inet(serverIpNet))
	default:
		return nil
	}
}

func (a *AnalyticsManager) GetGamesCreatedCount(ctx context.Context, serverIpNet net.IPNet) (int64, error) {
	return a.queries.GetGamesCreatedCount(ctx, inet(serverIpNet))
}

func (a *AnalyticsManager) GetGamesWonCount(ctx context.Context, serverIpNet net.IPNet) (int64, error) {
	return a.queries.GetGamesWonCount(ctx, inet(serverIpNet))
}

func (a *AnalyticsManager) GetGamesLostCount(ctx context.Context, serverIpNet net.IPNet) (int64, error) {
	return a.queries.GetGamesLostCount(ctx, inet(serverIpNet))
}
