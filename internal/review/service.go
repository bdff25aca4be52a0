package review

import (
	"context"
	"errors"
	"time"

	"candidate-platform/internal/actionlog"
)

// ActionSource supplies the recent-action window the report runs over.
// *actionlog.Service satisfies it.
type ActionSource interface {
	ListRecent(ctx context.Context, window time.Duration) ([]actionlog.Action, error)
}

// Service produces the needs-review report: recent actions joined with the
// reasons each one warrants a moderator's attention.
type Service struct {
	actions ActionSource
	agg     *Aggregator
	window  time.Duration
}

func NewService(actions ActionSource, agg *Aggregator, window time.Duration) *Service {
	if window <= 0 {
		window = actionlog.DefaultReviewWindow
	}
	return &Service{actions: actions, agg: agg, window: window}
}

// Entry is one flagged action with its accumulated reasons.
type Entry struct {
	Action  actionlog.Action `json:"action"`
	Reasons []string         `json:"reasons"`
}

// NeedsReview aggregates reasons over actions created within the configured
// trailing window. The result's key set is a subset of the window's action
// IDs; an ID is present iff at least one reason function flagged it.
func (s *Service) NeedsReview(ctx context.Context) (map[string][]string, error) {
	if s.actions == nil {
		return nil, errors.New("review: action source not configured")
	}
	if s.agg == nil {
		return nil, ErrNotConfigured
	}

	recent, err := s.actions.ListRecent(ctx, s.window)
	if err != nil {
		return nil, err
	}
	return s.agg.Aggregate(ctx, recent)
}

// Report returns the flagged actions themselves alongside their reasons,
// ordered as the underlying window listing orders them.
func (s *Service) Report(ctx context.Context) ([]Entry, error) {
	if s.actions == nil {
		return nil, errors.New("review: action source not configured")
	}
	if s.agg == nil {
		return nil, ErrNotConfigured
	}

	recent, err := s.actions.ListRecent(ctx, s.window)
	if err != nil {
		return nil, err
	}
	reasons, err := s.agg.Aggregate(ctx, recent)
	if err != nil {
		return nil, err
	}

	out := make([]Entry, 0, len(reasons))
	for _, a := range recent {
		if rs, ok := reasons[a.ID]; ok {
			out = append(out, Entry{Action: a, Reasons: rs})
		}
	}
	return out, nil
}
