package account

import "time"

// User is a site account. Person data lives elsewhere; this record only
// carries what authentication and the action log need.
type User struct {
	ID       string `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Email    string `json:"email,omitempty" db:"email"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TermsAgreement is the one-to-one companion of a User tracking whether the
// account holder has accepted the contribution terms.
//
// Lifecycle invariant: provisioned exactly once, inside the same transaction
// that creates the user, with Agreed false. Updates to the user never create
// another one.
type TermsAgreement struct {
	UserID   string     `json:"user_id" db:"user_id"`
	Agreed   bool       `json:"agreed" db:"agreed"`
	AgreedAt *time.Time `json:"agreed_at,omitempty" db:"agreed_at"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
