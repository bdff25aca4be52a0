package review

import (
	"context"
	"testing"
	"time"

	"candidate-platform/internal/actionlog"
)

func TestNeedsReview_WindowExcludesOldActions(t *testing.T) {
	repo := actionlog.NewMemoryRepo()
	now := time.Unix(1700000000, 0).UTC()
	actions := actionlog.NewService(repo).WithClock(func() time.Time { return now })

	_ = repo.Append(context.Background(), actionlog.Action{
		ID: "old", Type: actionlog.ActionTypePersonUpdate, UserID: "u1",
		CreatedAt: now.Add(-6 * 24 * time.Hour),
	})
	_ = repo.Append(context.Background(), actionlog.Action{
		ID: "fresh", Type: actionlog.ActionTypePersonUpdate, UserID: "u2",
		CreatedAt: now.Add(-1 * 24 * time.Hour),
	})

	// Both actions lack a source; only the one inside the 5-day window may appear.
	svc := NewService(actions, NewAggregator(NoSourceGiven()), 0)

	got, err := svc.NeedsReview(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 flagged action, got %+v", got)
	}
	if _, ok := got["fresh"]; !ok {
		t.Fatalf("expected the 1-day-old action, got %+v", got)
	}
}

func TestNeedsReview_OutputKeysSubsetOfWindow(t *testing.T) {
	repo := actionlog.NewMemoryRepo()
	now := time.Unix(1700000000, 0).UTC()
	actions := actionlog.NewService(repo).WithClock(func() time.Time { return now })

	_ = repo.Append(context.Background(), actionlog.Action{
		ID: "a1", Type: actionlog.ActionTypePersonUpdate, UserID: "u1",
		Source: "somewhere", CreatedAt: now.Add(-time.Hour),
	})

	svc := NewService(actions, NewAggregator(DefaultReasonFuncs(nil)...), 0)
	got, err := svc.NeedsReview(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for id := range got {
		if id != "a1" {
			t.Fatalf("flagged id %q not in the input window", id)
		}
	}
}

func TestReport_JoinsActionsWithReasons(t *testing.T) {
	repo := actionlog.NewMemoryRepo()
	now := time.Unix(1700000000, 0).UTC()
	actions := actionlog.NewService(repo).WithClock(func() time.Time { return now })

	_ = repo.Append(context.Background(), actionlog.Action{
		ID: "a1", Type: actionlog.ActionTypePersonUpdate, UserID: "u1",
		IPAddress: "10.0.0.9", CreatedAt: now.Add(-time.Hour),
	})

	svc := NewService(actions, NewAggregator(DefaultReasonFuncs([]string{"10.0.0.9"})...), 0)
	entries, err := svc.Report(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Action.ID != "a1" {
		t.Fatalf("unexpected action: %+v", e.Action)
	}
	// no source, first edit, flagged IP, in wiring order
	want := []string{
		"no source given for edit",
		"user's first edit in the review window",
		"edit from flagged IP address",
	}
	if len(e.Reasons) != len(want) {
		t.Fatalf("unexpected reasons: %+v", e.Reasons)
	}
	for i := range want {
		if e.Reasons[i] != want[i] {
			t.Fatalf("reason %d: got %q, want %q", i, e.Reasons[i], want[i])
		}
	}
}
