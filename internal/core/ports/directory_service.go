package ports

import (
	"context"

	"github.com/clinicos/console/internal/core/domain"
)

// ListClientsInput carries the clients-list view parameters.
type ListClientsInput struct {
	Query   string
	Segment domain.Segment
	Limit   int
}

// ClientListing is the filtered clients-list view model.
type ClientListing struct {
	// Clients is the filtered subsequence.
	Clients []domain.Client
	// Total is the size of the unfiltered fetch.
	Total int
	// Segments are the segments present in the unfiltered list, for the
	// filter tag row.
	Segments []domain.Segment
}

// DirectoryService serves the clients list/detail screens.
type DirectoryService interface {
	List(ctx context.Context, input ListClientsInput) (*ClientListing, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	// SegmentSamples returns sample members of one segment from the backend
	// summary, for the detail screen's "similar clients" block.
	SegmentSamples(ctx context.Context, segment domain.Segment) ([]domain.SegmentMember, error)
	// Classify triggers backend classification and records the action in the
	// console trail.
	Classify(ctx context.Context, id, actor string) (*domain.Classification, error)
}
