package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clinicos/console/internal/core/domain"
	"github.com/clinicos/console/internal/core/ports"
)

type DashboardHandler struct {
	dashboard  ports.DashboardService
	backendURL string
}

func NewDashboardHandler(dashboard ports.DashboardService, backendURL string) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, backendURL: backendURL}
}

type segmentStat struct {
	Name  domain.Segment
	Count int
	Color string
}

type dashboardView struct {
	pageShell
	Error      string
	BackendURL string

	DemoMode     bool
	TotalClients int
	Segments     []segmentStat
	VIPCount     int
	AtRiskCount  int
	LapsedCount  int
	RegularCount int
	NewCount     int
	TopVIP       string
	Recent       []domain.Client
	LastUpdated  time.Time
}

// Dashboard renders the overview screen. The three backend fetches run
// concurrently; any failure renders the connection banner instead.
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	view := dashboardView{
		pageShell:  shell(c, "Dashboard", "dashboard"),
		BackendURL: h.backendURL,
	}

	overview, err := h.dashboard.Overview(c.Request().Context())
	if err != nil {
		view.Error = errBackendDown
		return c.Render(http.StatusOK, "dashboard", view)
	}

	view.DemoMode = overview.Info.DemoMode
	view.TotalClients = overview.Summary.TotalClients
	view.Recent = overview.Recent
	view.LastUpdated = time.Now()

	counts := overview.Summary.SegmentCounts
	view.VIPCount = counts[domain.SegmentVIP]
	view.AtRiskCount = counts[domain.SegmentAtRisk]
	view.LapsedCount = counts[domain.SegmentLapsed]
	view.RegularCount = counts[domain.SegmentRegular]
	view.NewCount = counts[domain.SegmentNew]

	for _, s := range domain.Segments {
		if n, ok := counts[s]; ok {
			view.Segments = append(view.Segments, segmentStat{Name: s, Count: n, Color: s.Color()})
		}
	}

	for _, client := range overview.Recent {
		if client.Segment == domain.SegmentVIP {
			view.TopVIP = client.FirstName
			break
		}
	}

	return c.Render(http.StatusOK, "dashboard", view)
}
