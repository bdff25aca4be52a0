package review

import (
	"context"

	"candidate-platform/internal/actionlog"
)

// Built-in reason functions. Wiring picks these explicitly; nothing here
// registers itself anywhere.

// editTypes are the action kinds that change a person's biographical data and
// therefore need a source.
var editTypes = map[actionlog.ActionType]bool{
	actionlog.ActionTypePersonCreate:     true,
	actionlog.ActionTypePersonUpdate:     true,
	actionlog.ActionTypeCandidacySet:     true,
	actionlog.ActionTypeCandidacyRemoved: true,
}

// NoSourceGiven flags biographical edits submitted without a source citation.
func NoSourceGiven() ReasonFunc {
	return func(ctx context.Context, actions []actionlog.Action) (map[string][]string, error) {
		out := map[string][]string{}
		for _, a := range actions {
			if editTypes[a.Type] && a.Source == "" {
				out[a.ID] = append(out[a.ID], "no source given for edit")
			}
		}
		return out, nil
	}
}

// FlaggedIPAddress flags actions originating from any of the given addresses.
func FlaggedIPAddress(ips []string) ReasonFunc {
	flagged := make(map[string]bool, len(ips))
	for _, ip := range ips {
		flagged[ip] = true
	}
	return func(ctx context.Context, actions []actionlog.Action) (map[string][]string, error) {
		out := map[string][]string{}
		for _, a := range actions {
			if a.IPAddress != "" && flagged[a.IPAddress] {
				out[a.ID] = append(out[a.ID], "edit from flagged IP address")
			}
		}
		return out, nil
	}
}

// FirstEditInWindow flags each user's earliest action in the collection, so
// moderators see new contributors' first edits. Anonymous actions are skipped.
func FirstEditInWindow() ReasonFunc {
	return func(ctx context.Context, actions []actionlog.Action) (map[string][]string, error) {
		earliest := map[string]actionlog.Action{}
		for _, a := range actions {
			if a.UserID == "" {
				continue
			}
			cur, ok := earliest[a.UserID]
			if !ok || a.CreatedAt.Before(cur.CreatedAt) {
				earliest[a.UserID] = a
			}
		}
		out := map[string][]string{}
		for _, a := range earliest {
			out[a.ID] = append(out[a.ID], "user's first edit in the review window")
		}
		return out, nil
	}
}

// DefaultReasonFuncs is the list production wiring uses, in review order.
func DefaultReasonFuncs(flaggedIPs []string) []ReasonFunc {
	return []ReasonFunc{
		NoSourceGiven(),
		FirstEditInWindow(),
		FlaggedIPAddress(flaggedIPs),
	}
}
