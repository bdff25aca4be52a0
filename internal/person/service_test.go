package person

import (
	"context"
	"testing"
)

func TestRecordMerge_Validates(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if _, err := svc.RecordMerge(context.Background(), "", "p2"); err != ErrInvalidRedirect {
		t.Fatalf("expected ErrInvalidRedirect, got %v", err)
	}
	if _, err := svc.RecordMerge(context.Background(), "p1", "p1"); err != ErrInvalidRedirect {
		t.Fatalf("expected self-redirect rejected, got %v", err)
	}
}

func TestResolve_FollowsChain(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	if _, err := svc.RecordMerge(context.Background(), "p1", "p2"); err != nil {
		t.Fatalf("merge: %v", err)
	}
	if _, err := svc.RecordMerge(context.Background(), "p2", "p3"); err != nil {
		t.Fatalf("merge: %v", err)
	}

	got, err := svc.Resolve(context.Background(), "p1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "p3" {
		t.Fatalf("expected p3, got %q", got)
	}

	// An unredirected ID resolves to itself.
	got, err = svc.Resolve(context.Background(), "p9")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "p9" {
		t.Fatalf("expected identity resolution, got %q", got)
	}
}

func TestResolve_StopsOnCycle(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	_ = repo.Insert(context.Background(), Redirect{ID: "r1", OldPersonID: "p1", NewPersonID: "p2"})
	_ = repo.Insert(context.Background(), Redirect{ID: "r2", OldPersonID: "p2", NewPersonID: "p1"})

	if _, err := svc.Resolve(context.Background(), "p1"); err == nil {
		t.Fatalf("expected error for redirect cycle")
	}
}
