// Package metrics defines and registers all custom Prometheus metrics for
// the ClinicOS console. It is the single source of truth for metric names,
// labels, and help strings. Metrics self-register with the default registry
// via promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinicos_console"

// ── Backend client metrics ────────────────────────────────────────────────────

// BackendRequestsTotal counts calls to the ClinicOS backend.
// Labels:
//   - op: the logical operation (e.g. "clients", "run_workflow", "login")
//   - outcome: "ok", "status" (non-2xx), or "transport" (network failure)
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of requests issued to the ClinicOS backend.",
	},
	[]string{"op", "outcome"},
)

// BackendRequestDuration measures backend call latency per operation.
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of ClinicOS backend requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts console login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of console login attempts, by result.",
	},
	[]string{"result"},
)

// ActiveSessionsCreated counts sessions minted after successful logins.
var ActiveSessionsCreated = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_created_total",
		Help:      "Total number of console sessions created.",
	},
)

// ── Automation metrics ────────────────────────────────────────────────────────

// WorkflowRunsTotal counts workflow executions triggered from the console.
// Labels:
//   - workflow: the workflow id (e.g. "birthday")
//   - status: the backend-reported run status, or "error" when the call failed
var WorkflowRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "workflow_runs_total",
		Help:      "Total number of workflow runs triggered from the console.",
	},
	[]string{"workflow", "status"},
)

// CopyGenerationsTotal counts AI copy generations triggered from the console.
// Label:
//   - copy_type: "reengagement", "birthday", or "promotion"
var CopyGenerationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "copy_generations_total",
		Help:      "Total number of marketing copy generations, by copy type.",
	},
	[]string{"copy_type"},
)
