package review

import (
	"context"
	"testing"
	"time"

	"candidate-platform/internal/actionlog"
)

func TestNoSourceGiven(t *testing.T) {
	actions := []actionlog.Action{
		{ID: "a1", Type: actionlog.ActionTypePersonUpdate, Source: ""},
		{ID: "a2", Type: actionlog.ActionTypePersonUpdate, Source: "official site"},
		{ID: "a3", Type: actionlog.ActionTypePhotoUpload, Source: ""},
	}

	got, err := NoSourceGiven()(context.Background(), actions)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || len(got["a1"]) != 1 {
		t.Fatalf("expected only the sourceless edit flagged, got %+v", got)
	}
}

func TestFlaggedIPAddress(t *testing.T) {
	actions := []actionlog.Action{
		{ID: "a1", Type: actionlog.ActionTypePersonUpdate, IPAddress: "10.0.0.1"},
		{ID: "a2", Type: actionlog.ActionTypePersonUpdate, IPAddress: "10.0.0.2"},
		{ID: "a3", Type: actionlog.ActionTypePersonUpdate},
	}

	got, err := FlaggedIPAddress([]string{"10.0.0.2"})(context.Background(), actions)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || len(got["a2"]) != 1 {
		t.Fatalf("expected only the flagged address, got %+v", got)
	}
}

func TestFirstEditInWindow(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	actions := []actionlog.Action{
		{ID: "a1", UserID: "u1", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "a2", UserID: "u1", CreatedAt: now.Add(-1 * time.Hour)},
		{ID: "a3", UserID: "u2", CreatedAt: now},
		{ID: "a4", CreatedAt: now}, // anonymous, skipped
	}

	got, err := FirstEditInWindow()(context.Background(), actions)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected one flag per user, got %+v", got)
	}
	if _, ok := got["a1"]; !ok {
		t.Fatalf("expected u1's earliest action flagged, got %+v", got)
	}
	if _, ok := got["a3"]; !ok {
		t.Fatalf("expected u2's only action flagged, got %+v", got)
	}
}
