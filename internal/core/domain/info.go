package domain

// SystemInfo is the backend's integration/demo-mode status.
type SystemInfo struct {
	Service      string            `json:"service"`
	Version      string            `json:"version"`
	DemoMode     bool              `json:"demo_mode"`
	Integrations map[string]string `json:"integrations,omitempty"`
}
