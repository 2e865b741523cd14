package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetStats returns employee, today's attendance and department figures,
	// computed fresh on every call
	GetStats(ctx context.Context) (StatsResponse, error)
}
