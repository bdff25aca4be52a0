package review

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"candidate-platform/internal/actionlog"
)

func staticReasons(m map[string][]string) ReasonFunc {
	return func(ctx context.Context, actions []actionlog.Action) (map[string][]string, error) {
		return m, nil
	}
}

func TestAggregate_ConcatenatesSharedKeysInOrder(t *testing.T) {
	a := staticReasons(map[string][]string{"rec1": {"missing source"}})
	b := staticReasons(map[string][]string{"rec1": {"no note"}, "rec2": {"flagged IP"}})

	got, err := NewAggregator(a, b).Aggregate(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := map[string][]string{
		"rec1": {"missing source", "no note"},
		"rec2": {"flagged IP"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected merge: %+v", got)
	}
}

func TestAggregate_UnflaggedKeysAbsent(t *testing.T) {
	fn := staticReasons(map[string][]string{"rec1": {"missing source"}})
	actions := []actionlog.Action{{ID: "rec1"}, {ID: "rec2"}, {ID: "rec3"}}

	got, err := NewAggregator(fn).Aggregate(context.Background(), actions)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected only flagged keys, got %+v", got)
	}
	if _, ok := got["rec2"]; ok {
		t.Fatalf("rec2 was never flagged")
	}
}

func TestAggregate_EmptyMapIsIdentity(t *testing.T) {
	orig := map[string][]string{"rec1": {"a", "b"}, "rec2": {"c"}}

	got, err := NewAggregator(staticReasons(orig), staticReasons(map[string][]string{})).
		Aggregate(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(got, orig) {
		t.Fatalf("merging an empty map changed the result: %+v", got)
	}
}

func TestAggregate_NoFunctionsYieldsEmptyMap(t *testing.T) {
	got, err := NewAggregator().Aggregate(context.Background(), []actionlog.Action{{ID: "x"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty map, got %+v", got)
	}
}

func TestAggregate_FailingFunctionAbortsWhole(t *testing.T) {
	boom := errors.New("reason function broke")
	failing := func(ctx context.Context, actions []actionlog.Action) (map[string][]string, error) {
		return nil, boom
	}
	ok := staticReasons(map[string][]string{"rec1": {"missing source"}})

	got, err := NewAggregator(ok, failing).Aggregate(context.Background(), nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected the function's error, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected no partial result, got %+v", got)
	}
}

func TestMergeReasons_DoesNotMutateInputs(t *testing.T) {
	a := map[string][]string{"k": {"one"}}
	b := map[string][]string{"k": {"two"}}

	_ = mergeReasons(a, b)
	if len(a["k"]) != 1 || len(b["k"]) != 1 {
		t.Fatalf("inputs were mutated: %+v %+v", a, b)
	}
}
