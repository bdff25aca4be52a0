package account

import (
	"context"
	"testing"
	"time"
)

func TestRegister_ProvisionsExactlyOneAgreement(t *testing.T) {
	repo := NewMemoryRepo()
	now := time.Unix(1700000000, 0).UTC()
	svc := NewService(repo).WithClock(func() time.Time { return now })

	u, ta, err := svc.Register(context.Background(), RegisterRequest{Username: "jquser", Email: "jq@example.org"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.ID == "" {
		t.Fatalf("expected generated user id")
	}
	if ta.UserID != u.ID {
		t.Fatalf("expected companion keyed by user id")
	}
	if ta.Agreed {
		t.Fatalf("expected agreement flag false on provisioning")
	}
	if repo.AgreementCount() != 1 {
		t.Fatalf("expected exactly 1 agreement, got %d", repo.AgreementCount())
	}
}

func TestRegister_UpdateDoesNotReprovision(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	u, _, err := svc.Register(context.Background(), RegisterRequest{Username: "jquser"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.AcceptTerms(context.Background(), u.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if err := svc.UpdateEmail(context.Background(), u.ID, "new@example.org"); err != nil {
		t.Fatalf("update: %v", err)
	}

	if repo.AgreementCount() != 1 {
		t.Fatalf("expected still exactly 1 agreement, got %d", repo.AgreementCount())
	}
	ta, err := svc.TermsAgreement(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !ta.Agreed || ta.AgreedAt == nil {
		t.Fatalf("expected acceptance preserved across user update: %+v", ta)
	}
}

func TestRegister_RejectsDuplicateUsername(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	if _, _, err := svc.Register(context.Background(), RegisterRequest{Username: "dup"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), RegisterRequest{Username: "dup"}); err != ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if repo.AgreementCount() != 1 {
		t.Fatalf("expected no agreement for the failed registration")
	}
}

func TestAcceptTerms_StampsTime(t *testing.T) {
	repo := NewMemoryRepo()
	now := time.Unix(1700000000, 0).UTC()
	svc := NewService(repo).WithClock(func() time.Time { return now })

	u, _, err := svc.Register(context.Background(), RegisterRequest{Username: "jquser"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	accepted := now.Add(time.Hour)
	svc.WithClock(func() time.Time { return accepted })
	if err := svc.AcceptTerms(context.Background(), u.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	ta, err := svc.TermsAgreement(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !ta.Agreed || ta.AgreedAt == nil || !ta.AgreedAt.Equal(accepted) {
		t.Fatalf("unexpected agreement state: %+v", ta)
	}
}
