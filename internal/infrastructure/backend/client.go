// Package backend implements the typed HTTP client for the ClinicOS REST
// backend. The backend owns all domain data; the console only reads and
// triggers explicit actions.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicos/console/internal/api/metrics"
	"github.com/clinicos/console/internal/core/domain"
	"github.com/clinicos/console/internal/core/ports"
)

const (
	// DefaultBaseURL is the fallback when BACKEND_URL is unset.
	DefaultBaseURL = "http://localhost:8000"

	defaultTimeout = 30 * time.Second

	// DefaultClientLimit bounds the clients list fetch.
	DefaultClientLimit = 100
)

// Client talks to the ClinicOS backend. It implements ports.Backend.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

var _ ports.Backend = (*Client)(nil)

// New returns a backend client for the given base URL. An empty baseURL
// falls back to DefaultBaseURL; a non-positive timeout falls back to 30s.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *Client) Info(ctx context.Context) (*domain.SystemInfo, error) {
	var info domain.SystemInfo
	if err := c.get(ctx, "info", "/info", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) Clients(ctx context.Context, limit int) ([]domain.Client, error) {
	if limit <= 0 {
		limit = DefaultClientLimit
	}
	q := url.Values{"limit": {strconv.Itoa(limit)}}

	var clients []domain.Client
	if err := c.get(ctx, "clients", "/clients", q, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (c *Client) ClassifyClient(ctx context.Context, id string) (*domain.Classification, error) {
	var result domain.Classification
	if err := c.get(ctx, "classify_client", "/clients/"+url.PathEscape(id)+"/classify", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) SegmentSummary(ctx context.Context) (*domain.SegmentSummary, error) {
	var summary domain.SegmentSummary
	if err := c.get(ctx, "segment_summary", "/segments/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// workflowsResponse is the catalog envelope: {"workflows": [...]}.
type workflowsResponse struct {
	Workflows []domain.Workflow `json:"workflows"`
}

func (c *Client) Workflows(ctx context.Context) ([]domain.Workflow, error) {
	var resp workflowsResponse
	if err := c.get(ctx, "workflows", "/workflows", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Workflows, nil
}

func (c *Client) RunWorkflow(ctx context.Context, id string) (*domain.WorkflowResult, error) {
	var result domain.WorkflowResult
	err := c.do(ctx, "run_workflow", http.MethodPost, "/workflows/"+url.PathEscape(id)+"/run", nil, nil, "", &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// scheduleRequest mirrors the backend's schedule payload.
type scheduleRequest struct {
	WorkflowID   string `json:"workflow_id"`
	ScheduleTime string `json:"schedule_time"`
	Repeat       string `json:"repeat,omitempty"`
}

func (c *Client) ScheduleWorkflow(ctx context.Context, input ports.ScheduleWorkflowInput) (*domain.ScheduledWorkflow, error) {
	body := scheduleRequest{
		WorkflowID:   input.WorkflowID,
		ScheduleTime: input.ScheduleTime.UTC().Format(time.RFC3339),
		Repeat:       input.Repeat,
	}

	var scheduled domain.ScheduledWorkflow
	path := "/workflows/" + url.PathEscape(input.WorkflowID) + "/schedule"
	if err := c.do(ctx, "schedule_workflow", http.MethodPost, path, nil, body, input.Token, &scheduled); err != nil {
		return nil, err
	}
	return &scheduled, nil
}

// scheduledResponse is the scheduled-runs envelope: {"scheduled": [...]}.
type scheduledResponse struct {
	Scheduled []domain.ScheduledWorkflow `json:"scheduled"`
}

func (c *Client) ScheduledWorkflows(ctx context.Context) ([]domain.ScheduledWorkflow, error) {
	var resp scheduledResponse
	if err := c.get(ctx, "scheduled_workflows", "/workflows/scheduled", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Scheduled, nil
}

// copyRequest mirrors the backend's copy-generation payload.
type copyRequest struct {
	CopyType string `json:"copy_type"`
	ClientID string `json:"client_id,omitempty"`
}

func (c *Client) GenerateCopy(ctx context.Context, copyType, clientID string) (*domain.CopyResult, error) {
	var result domain.CopyResult
	err := c.do(ctx, "generate_copy", http.MethodPost, "/copy/generate", nil, copyRequest{CopyType: copyType, ClientID: clientID}, "", &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Activity(ctx context.Context, limit int) ([]domain.ActivityItem, error) {
	if limit <= 0 {
		limit = 50
	}
	q := url.Values{"limit": {strconv.Itoa(limit)}}

	var items []domain.ActivityItem
	if err := c.get(ctx, "activity", "/activity", q, &items); err != nil {
		return nil, err
	}
	return items, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string      `json:"access_token"`
	User        domain.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	var resp loginResponse
	err := c.do(ctx, "login", http.MethodPost, "/auth/login", nil, loginRequest{Email: email, Password: password}, "", &resp)
	if err != nil {
		return nil, err
	}
	return &domain.Session{Token: resp.AccessToken, User: resp.User}, nil
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, out any) error {
	return c.do(ctx, op, http.MethodGet, path, query, nil, "", out)
}

// do issues one backend request and decodes the JSON response into out.
// Status is checked uniformly: any non-2xx yields *domain.BackendError with
// the status code, transport failures wrap the underlying error. Outcomes
// are counted and timed per operation.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body any, token string, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &domain.BackendError{Op: op, Err: err}
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return &domain.BackendError{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	res, err := c.http.Do(req)
	metrics.BackendRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(op, "transport").Inc()
		c.log.Warn().Err(err).Str("op", op).Msg("backend request failed")
		return &domain.BackendError{Op: op, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		metrics.BackendRequestsTotal.WithLabelValues(op, "status").Inc()
		c.log.Warn().Int("status", res.StatusCode).Str("op", op).Msg("backend returned non-2xx")
		return &domain.BackendError{Op: op, StatusCode: res.StatusCode}
	}

	metrics.BackendRequestsTotal.WithLabelValues(op, "ok").Inc()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &domain.BackendError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
