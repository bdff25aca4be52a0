package actionlog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Repository is the persistence contract for action records.
//
// Append-only apart from UpdateNote, which touches the note column and
// updated_at and nothing else.

type Repository interface {
	Append(ctx context.Context, a Action) error
	UpdateNote(ctx context.Context, id, note string, updatedAt time.Time) error
	ListSince(ctx context.Context, since time.Time) ([]Action, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]Action, error)
}

var (
	ErrInvalidAction = errors.New("actionlog: invalid action")
	ErrNotFound      = errors.New("actionlog: not found")
)

// Service records and queries user actions.
type Service struct {
	repo  Repository
	clock func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, clock: time.Now}
}

// Record appends a new action. ID and CreatedAt are filled in when absent.
func (s *Service) Record(ctx context.Context, a Action) (Action, error) {
	if s.repo == nil {
		return Action{}, errors.New("actionlog: repository not configured")
	}
	if a.Type == "" {
		return Action{}, ErrInvalidAction
	}

	now := s.clock().UTC()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = a.CreatedAt
	}
	if err := s.repo.Append(ctx, a); err != nil {
		return Action{}, err
	}
	return a, nil
}

// AnnotateNote updates the note on an existing action. This is the only
// mutation the action log permits.
func (s *Service) AnnotateNote(ctx context.Context, id, note string) error {
	if s.repo == nil {
		return errors.New("actionlog: repository not configured")
	}
	if id == "" {
		return ErrInvalidAction
	}
	return s.repo.UpdateNote(ctx, id, note, s.clock().UTC())
}

// ListRecent returns actions created within the trailing window ending now.
// A zero window falls back to DefaultReviewWindow.
func (s *Service) ListRecent(ctx context.Context, window time.Duration) ([]Action, error) {
	if s.repo == nil {
		return nil, errors.New("actionlog: repository not configured")
	}
	if window <= 0 {
		window = DefaultReviewWindow
	}
	since := s.clock().UTC().Add(-window)
	return s.repo.ListSince(ctx, since)
}

// ListByUser returns the most recent actions by one user.
func (s *Service) ListByUser(ctx context.Context, userID string, limit int) ([]Action, error) {
	if s.repo == nil {
		return nil, errors.New("actionlog: repository not configured")
	}
	if userID == "" {
		return nil, ErrInvalidAction
	}
	if limit <= 0 {
		limit = 50
	}
	return s.repo.ListByUser(ctx, userID, limit)
}

// WithClock overrides the service clock; for tests.
func (s *Service) WithClock(clock func() time.Time) *Service {
	s.clock = clock
	return s
}
