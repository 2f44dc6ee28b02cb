// Package workflow implements the publishing and moderation engine:
// one entry point per user-initiated action, each composing the
// authorization guard with the lifecycle rules inside a single
// database transaction.  Every expected failure is a typed outcome
// from this file; handlers translate them to transport responses and
// nothing below this boundary ever reaches a caller as a raw error.
package workflow

import (
	"errors"
	"fmt"
)

// ErrUnauthorized means the guard denied the transition.  The wrapped
// message carries the predicate name for logs; callers must surface
// only a generic rejection so an unauthorized actor cannot probe
// which fact failed or whether the resource exists.
var ErrUnauthorized = errors.New("unauthorized")

// ErrNotFound means a referenced resource id did not resolve.
var ErrNotFound = errors.New("not found")

// ErrStaleState means a conditional transition's precondition no
// longer held: someone else acted first.  The losing caller gets this
// instead of a silently doubled write.
var ErrStaleState = errors.New("stale state")

// ErrInvariant marks a state only reachable by a bug, such as a
// pending venue request pointing at a venue row that does not exist.
// The enclosing transaction aborts rather than partially commit.
var ErrInvariant = errors.New("invariant violation")

// ValidationError reports a malformed or missing field.  It is
// returned before any write reaches the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s %s", e.Field, e.Reason)
}

func invalid(field, reason string) error { return &ValidationError{Field: field, Reason: reason} }

// denied wraps ErrUnauthorized with the predicate that refused.
func denied(predicate string) error { return fmt.Errorf("%s: %w", predicate, ErrUnauthorized) }
