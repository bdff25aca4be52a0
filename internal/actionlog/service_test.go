package actionlog

import (
	"context"
	"testing"
	"time"
)

func TestService_RecordRequiresType(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	if _, err := svc.Record(context.Background(), Action{UserID: "u"}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestService_RecordFillsDefaults(t *testing.T) {
	repo := NewMemoryRepo()
	now := time.Unix(1700000000, 0).UTC()
	svc := NewService(repo).WithClock(func() time.Time { return now })

	a, err := svc.Record(context.Background(), Action{Type: ActionTypePersonUpdate, UserID: "u", IPAddress: "1.2.3.4"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.ID == "" {
		t.Fatalf("expected generated id")
	}
	if !a.CreatedAt.Equal(now) || !a.UpdatedAt.Equal(now) {
		t.Fatalf("expected clock timestamps, got %v / %v", a.CreatedAt, a.UpdatedAt)
	}

	got := repo.Actions()
	if len(got) != 1 {
		t.Fatalf("expected 1 action")
	}
	if got[0].IPAddress != "1.2.3.4" {
		t.Fatalf("expected ip captured")
	}
}

func TestService_AnnotateNoteOnlyTouchesNote(t *testing.T) {
	repo := NewMemoryRepo()
	now := time.Unix(1700000000, 0).UTC()
	svc := NewService(repo).WithClock(func() time.Time { return now })

	a, err := svc.Record(context.Background(), Action{Type: ActionTypePersonUpdate, UserID: "u", Source: "official site"})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	later := now.Add(time.Hour)
	svc.WithClock(func() time.Time { return later })
	if err := svc.AnnotateNote(context.Background(), a.ID, "checked by moderator"); err != nil {
		t.Fatalf("annotate: %v", err)
	}

	got := repo.Actions()[0]
	if got.Note != "checked by moderator" {
		t.Fatalf("expected note updated, got %q", got.Note)
	}
	if got.Source != "official site" || got.UserID != "u" {
		t.Fatalf("expected other fields untouched: %+v", got)
	}
	if !got.UpdatedAt.Equal(later) || !got.CreatedAt.Equal(now) {
		t.Fatalf("expected only updated_at to move: %+v", got)
	}
}

func TestService_AnnotateNoteUnknownID(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	if err := svc.AnnotateNote(context.Background(), "missing", "x"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_ListRecentWindow(t *testing.T) {
	repo := NewMemoryRepo()
	now := time.Unix(1700000000, 0).UTC()
	svc := NewService(repo).WithClock(func() time.Time { return now })

	old := Action{ID: "old", Type: ActionTypePersonUpdate, CreatedAt: now.Add(-6 * 24 * time.Hour)}
	fresh := Action{ID: "fresh", Type: ActionTypePersonUpdate, CreatedAt: now.Add(-1 * 24 * time.Hour)}
	_ = repo.Append(context.Background(), old)
	_ = repo.Append(context.Background(), fresh)

	// Default window is 5 days.
	got, err := svc.ListRecent(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].ID != "fresh" {
		t.Fatalf("expected only the 1-day-old action, got %+v", got)
	}
}
