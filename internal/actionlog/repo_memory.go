package actionlog

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is a simple in-memory repository useful for tests.
// It is not intended for production use.

type MemoryRepo struct {
	mu      sync.Mutex
	actions []Action
}

func NewMemoryRepo() *MemoryRepo { return &MemoryRepo{} }

func (r *MemoryRepo) Append(ctx context.Context, a Action) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, a)
	return nil
}

func (r *MemoryRepo) UpdateNote(ctx context.Context, id, note string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.actions {
		if r.actions[i].ID == id {
			r.actions[i].Note = note
			r.actions[i].UpdatedAt = updatedAt
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryRepo) ListSince(ctx context.Context, since time.Time) ([]Action, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Action, 0)
	for _, a := range r.actions {
		if a.CreatedAt.Before(since) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit int) ([]Action, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Action, 0)
	for i := len(r.actions) - 1; i >= 0 && len(out) < limit; i-- {
		if r.actions[i].UserID == userID {
			out = append(out, r.actions[i])
		}
	}
	return out, nil
}

func (r *MemoryRepo) Actions() []Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Action, len(r.actions))
	copy(out, r.actions)
	return out
}
