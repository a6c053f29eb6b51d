package dashboard

import "context"

// DashboardService computes the per-day attendance snapshot.
type DashboardService interface {
	// DailyStats counts present/late records for the date and derives the
	// absent count as total employees minus records. Date defaults to today
	// when empty.
	DailyStats(ctx context.Context, date string) (DailyStatsResponse, error)
}
