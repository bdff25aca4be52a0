package account

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Repository is the persistence contract for accounts.
//
// CreateUserWithAgreement must be atomic: either both rows land or neither.

type Repository interface {
	CreateUserWithAgreement(ctx context.Context, u User, ta TermsAgreement) error
	FindUserByUsername(ctx context.Context, username string) (User, bool, error)
	UpdateUserEmail(ctx context.Context, userID, email string, updatedAt time.Time) error

	GetAgreement(ctx context.Context, userID string) (TermsAgreement, error)
	SetAgreement(ctx context.Context, userID string, agreed bool, at time.Time) error
}

var (
	ErrInvalidArgument = errors.New("account: invalid argument")
	ErrAlreadyExists   = errors.New("account: already exists")
	ErrNotFound        = errors.New("account: not found")
)

// Service manages site accounts and their terms agreements.
type Service struct {
	repo  Repository
	clock func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, clock: time.Now}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// Register creates a user and provisions its terms-agreement companion in one
// step. Provisioning is an explicit part of account creation, not a hook: the
// agreement row is written in the same transaction as the user row, with its
// flag false, and never again afterwards.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (User, TermsAgreement, error) {
	if s.repo == nil {
		return User{}, TermsAgreement{}, errors.New("account: repository not configured")
	}
	if req.Username == "" {
		return User{}, TermsAgreement{}, ErrInvalidArgument
	}

	now := s.clock().UTC()
	u := User{
		ID:        uuid.NewString(),
		Username:  req.Username,
		Email:     req.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	ta := TermsAgreement{
		UserID:    u.ID,
		Agreed:    false,
		CreatedAt: now,
	}

	if err := s.repo.CreateUserWithAgreement(ctx, u, ta); err != nil {
		return User{}, TermsAgreement{}, err
	}
	return u, ta, nil
}

// UpdateEmail changes a user's email. Deliberately does not touch the
// terms-agreement companion.
func (s *Service) UpdateEmail(ctx context.Context, userID, email string) error {
	if s.repo == nil {
		return errors.New("account: repository not configured")
	}
	if userID == "" {
		return ErrInvalidArgument
	}
	return s.repo.UpdateUserEmail(ctx, userID, email, s.clock().UTC())
}

// AcceptTerms flips the agreement flag and stamps the acceptance time.
func (s *Service) AcceptTerms(ctx context.Context, userID string) error {
	if s.repo == nil {
		return errors.New("account: repository not configured")
	}
	if userID == "" {
		return ErrInvalidArgument
	}
	return s.repo.SetAgreement(ctx, userID, true, s.clock().UTC())
}

// TermsAgreement returns the companion record for a user.
func (s *Service) TermsAgreement(ctx context.Context, userID string) (TermsAgreement, error) {
	if s.repo == nil {
		return TermsAgreement{}, errors.New("account: repository not configured")
	}
	if userID == "" {
		return TermsAgreement{}, ErrInvalidArgument
	}
	return s.repo.GetAgreement(ctx, userID)
}

// WithClock overrides the service clock; for tests.
func (s *Service) WithClock(clock func() time.Time) *Service {
	s.clock = clock
	return s
}
