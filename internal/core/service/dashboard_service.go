package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/clinicos/console/internal/core/domain"
	"github.com/clinicos/console/internal/core/ports"
)

const dashboardRecentLimit = 10

// DashboardService assembles the dashboard overview from three independent
// backend fetches.
type DashboardService struct {
	backend ports.Backend
}

var _ ports.DashboardService = (*DashboardService)(nil)

func NewDashboardService(backend ports.Backend) *DashboardService {
	return &DashboardService{backend: backend}
}

// Overview issues the three fetches concurrently and joins them. The first
// failure cancels the siblings and fails the view.
func (s *DashboardService) Overview(ctx context.Context) (*ports.DashboardOverview, error) {
	var (
		info    *domain.SystemInfo
		summary *domain.SegmentSummary
		recent  []domain.Client
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		info, err = s.backend.Info(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = s.backend.SegmentSummary(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.backend.Clients(gctx, dashboardRecentLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ports.DashboardOverview{
		Info:    *info,
		Summary: *summary,
		Recent:  recent,
	}, nil
}
