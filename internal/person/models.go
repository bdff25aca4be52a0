package person

import "time"

// Redirect maps an old person ID to a new one. One is written whenever two
// person entries are merged and the losing entry is deleted, so old links and
// bookmarks keep resolving.
//
// Created on merge; immutable thereafter.
type Redirect struct {
	ID          string    `json:"id" db:"id"`
	OldPersonID string    `json:"old_person_id" db:"old_person_id"`
	NewPersonID string    `json:"new_person_id" db:"new_person_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
