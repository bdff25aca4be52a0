package account

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is a simple in-memory account repository useful for tests.

type MemoryRepo struct {
	mu         sync.Mutex
	users      map[string]User           // by id
	agreements map[string]TermsAgreement // by user id
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:      map[string]User{},
		agreements: map[string]TermsAgreement{},
	}
}

func (r *MemoryRepo) CreateUserWithAgreement(ctx context.Context, u User, ta TermsAgreement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return ErrAlreadyExists
		}
	}
	r.users[u.ID] = u
	// At-most-once: never replace an existing companion.
	if _, ok := r.agreements[ta.UserID]; !ok {
		r.agreements[ta.UserID] = ta
	}
	return nil
}

func (r *MemoryRepo) FindUserByUsername(ctx context.Context, username string) (User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, true, nil
		}
	}
	return User{}, false, nil
}

func (r *MemoryRepo) UpdateUserEmail(ctx context.Context, userID, email string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return ErrNotFound
	}
	u.Email = email
	u.UpdatedAt = updatedAt
	r.users[userID] = u
	return nil
}

func (r *MemoryRepo) GetAgreement(ctx context.Context, userID string) (TermsAgreement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ta, ok := r.agreements[userID]
	if !ok {
		return TermsAgreement{}, ErrNotFound
	}
	return ta, nil
}

func (r *MemoryRepo) SetAgreement(ctx context.Context, userID string, agreed bool, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ta, ok := r.agreements[userID]
	if !ok {
		return ErrNotFound
	}
	ta.Agreed = agreed
	if agreed {
		ta.AgreedAt = &at
	} else {
		ta.AgreedAt = nil
	}
	r.agreements[userID] = ta
	return nil
}

// AgreementCount reports how many companion rows exist; for tests.
func (r *MemoryRepo) AgreementCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.agreements)
}
