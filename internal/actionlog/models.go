package actionlog

import "time"

// Action is an immutable-once-written record of a user action on the site.
//
// Person edit history lives in the person document's own version list; that is
// no help for queries like "what has this user been doing lately". Action rows
// make that kind of query easy and are the input to the needs-review report.
//
// Invariants:
// - Rows are never deleted.
// - The only permitted mutation after insert is the note column.
//
// Storage recommendation (Postgres):
// - Table logged_actions, INSERT plus note-only UPDATE.
// - Index on created_at for the trailing-window queries.

type Action struct {
	ID string `json:"id" db:"id"`

	// Type indicates the kind of action taken.
	Type ActionType `json:"type" db:"type"`

	// UserID is the acting user (optional; anonymous and system actions allowed).
	UserID string `json:"user_id,omitempty" db:"user_id"`

	// Subject identifiers (optional, depending on the action type).
	PersonID string `json:"person_id,omitempty" db:"person_id"`
	PostID   string `json:"post_id,omitempty" db:"post_id"`

	// NewVersionID identifies the person-document version this edit produced.
	NewVersionID string `json:"new_version_id,omitempty" db:"new_version_id"`

	// Source is the editor-supplied citation for where the information came from.
	Source string `json:"source,omitempty" db:"source"`

	// Note is a free-text annotation; the only field updated after insert.
	Note string `json:"note,omitempty" db:"note"`

	// IPAddress should capture the original client IP when available.
	IPAddress string `json:"ip_address,omitempty" db:"ip_address"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type ActionType string

const (
	ActionTypePersonCreate     ActionType = "person-create"
	ActionTypePersonUpdate     ActionType = "person-update"
	ActionTypePersonMerge      ActionType = "person-merge"
	ActionTypePersonRevert     ActionType = "person-revert"
	ActionTypePhotoUpload      ActionType = "photo-upload"
	ActionTypeCandidacySet     ActionType = "candidacy-set"
	ActionTypeCandidacyRemoved ActionType = "candidacy-removed"
)

// DefaultReviewWindow is the trailing window of actions the moderation queue
// looks at when no explicit window is configured.
const DefaultReviewWindow = 5 * 24 * time.Hour
