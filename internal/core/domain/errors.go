package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
	ErrClientNotFound     = errors.New("client not found")
	ErrWorkflowNotFound   = errors.New("workflow not found")
)

// BackendError is returned for any failed backend call: transport failures
// wrap the underlying error, non-2xx responses carry the status code. Every
// backend operation checks status — a 500 is never mistaken for success.
type BackendError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *BackendError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("backend %s: unexpected status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("backend %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// Unauthorized reports whether the backend rejected the call as 401/403.
func (e *BackendError) Unauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}
