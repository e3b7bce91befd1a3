package domain

import "time"

// Activity item types.
const (
	ActivityWorkflow       = "workflow"
	ActivitySync           = "sync"
	ActivityClassification = "classification"
	ActivityLogin          = "login"
	ActivityLogout         = "logout"
	ActivitySchedule       = "schedule"
	ActivityCopy           = "copy"
)

// Activity statuses.
const (
	ActivitySuccess = "success"
	ActivityPending = "pending"
	ActivityError   = "error"
)

// ActivityItem is one entry in the backend activity feed. Ordering is
// server-determined.
type ActivityItem struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	UserID      string    `json:"user_id,omitempty"`
}

// AuditEntry records a console-initiated action (login, run, schedule,
// classify, copy generation) in the console's own trail. The backend feed
// stays the source of truth for server-side activity; the trail only covers
// what this console did.
type AuditEntry struct {
	ID          string    `json:"id" bson:"_id"`
	Type        string    `json:"type" bson:"type"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Status      string    `json:"status" bson:"status"`
	Actor       string    `json:"actor,omitempty" bson:"actor,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
