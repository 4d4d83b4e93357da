package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard gathers every derived view concurrently and aggregates them
	GetDashboard(ctx context.Context) (*DashboardResponse, error)
}
