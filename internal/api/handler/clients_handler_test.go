package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clinicos/console/internal/core/domain"
	"github.com/clinicos/console/internal/core/ports"
)

type stubDirectoryService struct {
	listFn     func(ctx context.Context, input ports.ListClientsInput) (*ports.ClientListing, error)
	getFn      func(ctx context.Context, id string) (*domain.Client, error)
	classifyFn func(ctx context.Context, id, actor string) (*domain.Classification, error)
}

func (s *stubDirectoryService) List(ctx context.Context, input ports.ListClientsInput) (*ports.ClientListing, error) {
	return s.listFn(ctx, input)
}

func (s *stubDirectoryService) Get(ctx context.Context, id string) (*domain.Client, error) {
	return s.getFn(ctx, id)
}

func (s *stubDirectoryService) SegmentSamples(context.Context, domain.Segment) ([]domain.SegmentMember, error) {
	return nil, nil
}

func (s *stubDirectoryService) Classify(ctx context.Context, id, actor string) (*domain.Classification, error) {
	return s.classifyFn(ctx, id, actor)
}

func TestClientsHandler_List_EmptyState(t *testing.T) {
	e := newTestEcho(t)
	handler := NewClientsHandler(&stubDirectoryService{
		listFn: func(_ context.Context, input ports.ListClientsInput) (*ports.ClientListing, error) {
			if input.Query != "nobody" {
				t.Fatalf("unexpected query %q", input.Query)
			}
			return &ports.ClientListing{Total: 12}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/clients?q=nobody", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/clients")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No clients found") {
		t.Fatalf("expected empty state message in body")
	}
}

func TestClientsHandler_List_SegmentTagToggle(t *testing.T) {
	e := newTestEcho(t)
	handler := NewClientsHandler(&stubDirectoryService{
		listFn: func(_ context.Context, input ports.ListClientsInput) (*ports.ClientListing, error) {
			if input.Segment != domain.SegmentVIP {
				t.Fatalf("unexpected segment %q", input.Segment)
			}
			return &ports.ClientListing{
				Clients:  []domain.Client{{ID: "c1", FirstName: "Maria", Segment: domain.SegmentVIP}},
				Total:    2,
				Segments: []domain.Segment{domain.SegmentVIP, domain.SegmentNew},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/clients?segment=VIP", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/clients")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	// The active tag links back to the unfiltered list; the inactive tag
	// links to its own filter.
	if !strings.Contains(body, `href="/clients"`) {
		t.Fatalf("active tag should toggle the filter off")
	}
	if !strings.Contains(body, "segment=New") {
		t.Fatalf("inactive tag should link to its segment filter")
	}
}

func TestClientsHandler_List_BackendDownBanner(t *testing.T) {
	e := newTestEcho(t)
	handler := NewClientsHandler(&stubDirectoryService{
		listFn: func(context.Context, ports.ListClientsInput) (*ports.ClientListing, error) {
			return nil, &domain.BackendError{Op: "clients", StatusCode: http.StatusInternalServerError}
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("banner renders with 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), errBackendDown) {
		t.Fatalf("expected backend-down banner in body")
	}
}

func TestClientsHandler_Detail_NotFound(t *testing.T) {
	e := newTestEcho(t)
	handler := NewClientsHandler(&stubDirectoryService{
		getFn: func(context.Context, string) (*domain.Client, error) {
			return nil, domain.ErrClientNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/clients/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := handler.Detail(c)
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound to propagate, got %v", err)
	}
}

func TestClientsHandler_Classify_UpdatesSegment(t *testing.T) {
	e := newTestEcho(t)
	handler := NewClientsHandler(&stubDirectoryService{
		getFn: func(_ context.Context, id string) (*domain.Client, error) {
			return &domain.Client{ID: id, FirstName: "Maria", LastName: "Garcia", Segment: domain.SegmentRegular}, nil
		},
		classifyFn: func(_ context.Context, id, _ string) (*domain.Classification, error) {
			if id != "c1" {
				t.Fatalf("unexpected id %q", id)
			}
			return &domain.Classification{Segment: domain.SegmentVIP, Confidence: 0.93}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/clients/c1/classify", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := handler.Classify(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, string(domain.SegmentVIP)) {
		t.Fatalf("expected new segment in body")
	}
	if !strings.Contains(body, "93%") {
		t.Fatalf("expected confidence percentage in body")
	}
}
