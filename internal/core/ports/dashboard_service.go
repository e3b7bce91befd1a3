package ports

import (
	"context"

	"github.com/clinicos/console/internal/core/domain"
)

// DashboardOverview joins the three dashboard fetches.
type DashboardOverview struct {
	Info    domain.SystemInfo
	Summary domain.SegmentSummary
	Recent  []domain.Client
}

// DashboardService assembles the dashboard screen.
type DashboardService interface {
	// Overview fetches info, recent clients, and the segment summary
	// concurrently and joins them; any failure fails the whole view.
	Overview(ctx context.Context) (*DashboardOverview, error)
}
