package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/clinicos/console/internal/core/domain"
	"github.com/clinicos/console/internal/core/ports"
)

type ClientsHandler struct {
	directory ports.DirectoryService
}

func NewClientsHandler(directory ports.DirectoryService) *ClientsHandler {
	return &ClientsHandler{directory: directory}
}

type segmentTag struct {
	Segment domain.Segment
	Active  bool
	URL     string
}

type clientsView struct {
	pageShell
	Error         string
	Query         string
	ActiveSegment domain.Segment
	AllURL        string
	Tags          []segmentTag
	Clients       []domain.Client
	Total         int
}

// List renders the searchable clients table. Search and segment filters are
// pure projections over one list fetch; an empty result is the empty state,
// not an error.
func (h *ClientsHandler) List(c echo.Context) error {
	query := c.QueryParam("q")
	segment := domain.Segment(c.QueryParam("segment"))

	view := clientsView{
		pageShell:     shell(c, "Clients", "clients"),
		Query:         query,
		ActiveSegment: segment,
		AllURL:        clientsURL(query, ""),
	}

	listing, err := h.directory.List(c.Request().Context(), ports.ListClientsInput{
		Query:   query,
		Segment: segment,
	})
	if err != nil {
		view.Error = errBackendDown
		return c.Render(http.StatusOK, "clients", view)
	}

	view.Clients = listing.Clients
	view.Total = listing.Total
	for _, s := range listing.Segments {
		view.Tags = append(view.Tags, segmentTag{
			Segment: s,
			Active:  s == segment,
			// Clicking the active tag toggles the filter off again.
			URL: clientsURL(query, domain.ToggleSegment(segment, s)),
		})
	}

	return c.Render(http.StatusOK, "clients", view)
}

type clientDetailView struct {
	pageShell
	Error          string
	Client         domain.Client
	Samples        []domain.SegmentMember
	Classification *domain.Classification
}

// Detail renders one client, resolved from the list fetch, with sample
// members of its segment. A failed samples fetch degrades to an empty block.
func (h *ClientsHandler) Detail(c echo.Context) error {
	ctx := c.Request().Context()
	client, err := h.directory.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	samples, _ := h.directory.SegmentSamples(ctx, client.Segment)

	return c.Render(http.StatusOK, "client_detail", clientDetailView{
		pageShell: shell(c, client.FullName(), "clients"),
		Client:    *client,
		Samples:   samples,
	})
}

// Classify triggers backend AI classification for one client and renders the
// result inline on the detail screen.
func (h *ClientsHandler) Classify(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	client, err := h.directory.Get(ctx, id)
	if err != nil {
		return err
	}

	view := clientDetailView{
		pageShell: shell(c, client.FullName(), "clients"),
		Client:    *client,
	}

	classification, err := h.directory.Classify(ctx, id, actor(c))
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return err
		}
		view.Error = errBackendDown
		return c.Render(http.StatusOK, "client_detail", view)
	}

	view.Classification = classification
	if classification.Segment != "" {
		view.Client.Segment = classification.Segment
	}
	return c.Render(http.StatusOK, "client_detail", view)
}

func clientsURL(query string, segment domain.Segment) string {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	if segment != "" {
		params.Set("segment", string(segment))
	}
	if len(params) == 0 {
		return "/clients"
	}
	return "/clients?" + params.Encode()
}
