package review

import (
	"context"
	"errors"

	"candidate-platform/internal/actionlog"
)

// ReasonFunc inspects a collection of actions and reports which of them
// warrant human review and why, keyed by action ID.
//
// Implementations must be read-only: they may not mutate the collection.
type ReasonFunc func(ctx context.Context, actions []actionlog.Action) (map[string][]string, error)

// Aggregator runs an explicitly ordered list of reason functions and merges
// their verdicts into one map. The list is fixed at construction; there is no
// global registry.
type Aggregator struct {
	fns []ReasonFunc
}

func NewAggregator(fns ...ReasonFunc) *Aggregator {
	return &Aggregator{fns: fns}
}

var ErrNotConfigured = errors.New("review: aggregator not configured")

// Aggregate invokes every reason function against the full collection, in
// list order, and merges the results. For an action flagged by several
// functions, reasons from earlier functions precede reasons from later ones.
// Actions flagged by no function are absent from the result.
//
// A reason-function error aborts the whole aggregation; partial results are
// discarded rather than returned.
func (g *Aggregator) Aggregate(ctx context.Context, actions []actionlog.Action) (map[string][]string, error) {
	if g == nil {
		return nil, ErrNotConfigured
	}

	merged := map[string][]string{}
	for _, fn := range g.fns {
		found, err := fn(ctx, actions)
		if err != nil {
			return nil, err
		}
		merged = mergeReasons(merged, found)
	}
	return merged, nil
}

// mergeReasons combines two reason maps. For each key present in either map
// the merged value is a's list followed by b's list. Neither input is mutated.
func mergeReasons(a, b map[string][]string) map[string][]string {
	out := make(map[string][]string, len(a)+len(b))
	for k, v := range a {
		out[k] = append(out[k], v...)
	}
	for k, v := range b {
		out[k] = append(out[k], v...)
	}
	return out
}
