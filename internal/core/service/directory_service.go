package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clinicos/console/internal/core/domain"
	"github.com/clinicos/console/internal/core/ports"
)

const defaultClientLimit = 100

// DirectoryService serves the clients list/detail screens: one backend fetch
// per view, then pure in-memory filtering.
type DirectoryService struct {
	backend ports.Backend
	audit   ports.AuditRepository
	log     zerolog.Logger
}

var _ ports.DirectoryService = (*DirectoryService)(nil)

func NewDirectoryService(backend ports.Backend, audit ports.AuditRepository, log zerolog.Logger) *DirectoryService {
	return &DirectoryService{backend: backend, audit: audit, log: log}
}

func (s *DirectoryService) List(ctx context.Context, input ports.ListClientsInput) (*ports.ClientListing, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultClientLimit
	}

	clients, err := s.backend.Clients(ctx, limit)
	if err != nil {
		return nil, err
	}

	return &ports.ClientListing{
		Clients:  domain.FilterClients(clients, input.Query, input.Segment),
		Total:    len(clients),
		Segments: domain.DistinctSegments(clients),
	}, nil
}

// Get resolves one client from the list fetch; the backend exposes no
// per-client read endpoint.
func (s *DirectoryService) Get(ctx context.Context, id string) (*domain.Client, error) {
	clients, err := s.backend.Clients(ctx, defaultClientLimit)
	if err != nil {
		return nil, err
	}
	for i := range clients {
		if clients[i].ID == id {
			return &clients[i], nil
		}
	}
	return nil, domain.ErrClientNotFound
}

// SegmentSamples picks the summary's sample members for one segment.
func (s *DirectoryService) SegmentSamples(ctx context.Context, segment domain.Segment) ([]domain.SegmentMember, error) {
	if segment == "" {
		return nil, nil
	}
	summary, err := s.backend.SegmentSummary(ctx)
	if err != nil {
		return nil, err
	}
	return summary.SegmentDetails[segment], nil
}

func (s *DirectoryService) Classify(ctx context.Context, id, actor string) (*domain.Classification, error) {
	result, err := s.backend.ClassifyClient(ctx, id)
	if err != nil {
		recordAudit(ctx, s.audit, s.log, domain.ActivityClassification, "AI Classification",
			fmt.Sprintf("Classification failed for client %s", id), domain.ActivityError, actor)
		return nil, err
	}

	recordAudit(ctx, s.audit, s.log, domain.ActivityClassification, "AI Classification",
		fmt.Sprintf("Classified client %s as %s (%.0f%% confidence)", id, result.Segment, result.Confidence*100),
		domain.ActivitySuccess, actor)

	return result, nil
}
