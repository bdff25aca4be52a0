package person

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Repository is the persistence contract for person redirects.
// Redirects are insert-only.

type Repository interface {
	Insert(ctx context.Context, r Redirect) error
	FindByOldID(ctx context.Context, oldPersonID string) (Redirect, bool, error)
}

var (
	ErrInvalidRedirect = errors.New("person: invalid redirect")
	ErrNotFound        = errors.New("person: not found")
)

// maxRedirectHops caps chain resolution so a miswritten cycle cannot spin.
const maxRedirectHops = 10

// Service records and resolves person redirects.
type Service struct {
	repo  Repository
	clock func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, clock: time.Now}
}

// RecordMerge writes the redirect left behind when oldPersonID was merged
// into newPersonID.
func (s *Service) RecordMerge(ctx context.Context, oldPersonID, newPersonID string) (Redirect, error) {
	if s.repo == nil {
		return Redirect{}, errors.New("person: repository not configured")
	}
	if oldPersonID == "" || newPersonID == "" || oldPersonID == newPersonID {
		return Redirect{}, ErrInvalidRedirect
	}

	r := Redirect{
		ID:          uuid.NewString(),
		OldPersonID: oldPersonID,
		NewPersonID: newPersonID,
		CreatedAt:   s.clock().UTC(),
	}
	if err := s.repo.Insert(ctx, r); err != nil {
		return Redirect{}, err
	}
	return r, nil
}

// Resolve follows redirects from personID to the surviving person ID.
// Chains (A merged into B, B merged into C) are followed up to a hop cap;
// an unredirected ID resolves to itself.
func (s *Service) Resolve(ctx context.Context, personID string) (string, error) {
	if s.repo == nil {
		return "", errors.New("person: repository not configured")
	}
	if personID == "" {
		return "", ErrInvalidRedirect
	}

	current := personID
	for i := 0; i < maxRedirectHops; i++ {
		r, ok, err := s.repo.FindByOldID(ctx, current)
		if err != nil {
			return "", err
		}
		if !ok {
			return current, nil
		}
		current = r.NewPersonID
	}
	return "", errors.New("person: redirect chain too long")
}

// WithClock overrides the service clock; for tests.
func (s *Service) WithClock(clock func() time.Time) *Service {
	s.clock = clock
	return s
}
