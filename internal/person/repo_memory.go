package person

import (
	"context"
	"sync"
)

// MemoryRepo is a simple in-memory redirect repository useful for tests.

type MemoryRepo struct {
	mu        sync.Mutex
	redirects []Redirect
}

func NewMemoryRepo() *MemoryRepo { return &MemoryRepo{} }

func (r *MemoryRepo) Insert(ctx context.Context, red Redirect) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.redirects = append(r.redirects, red)
	return nil
}

func (r *MemoryRepo) FindByOldID(ctx context.Context, oldPersonID string) (Redirect, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, red := range r.redirects {
		if red.OldPersonID == oldPersonID {
			return red, true, nil
		}
	}
	return Redirect{}, false, nil
}

func (r *MemoryRepo) Redirects() []Redirect {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Redirect, len(r.redirects))
	copy(out, r.redirects)
	return out
}
