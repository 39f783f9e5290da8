package reactive

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Sentinel error kinds, per spec.md §7.
var (
	// ErrCycleDetected: a Computed depends on itself directly or
	// transitively, batchIteration exceeded the runaway-write limit,
	// or _start was called on an already-RUNNING effect.
	ErrCycleDetected = errors.New("reactive: cycle detected")

	// ErrMutationInComputed: a signal write was attempted while a
	// Computed was the active context.
	ErrMutationInComputed = errors.New("reactive: signal written from inside a computed")

	// ErrEarlyReturnInEffect: the effect closure panicked instead of
	// returning; the panic is recovered and the start/end pairing is
	// still completed before this error is returned.
	ErrEarlyReturnInEffect = errors.New("reactive: effect exited without releasing its finalizer")

	// ErrOutOfOrderEffect: the effect end-finalizer ran while the
	// active context was not the effect that produced it.
	ErrOutOfOrderEffect = errors.New("reactive: effect finalizer invoked out of order")
)

// UserError wraps any error returned by a user-supplied computed or
// effect closure so callers can tell it apart from
// the engine's own sentinel errors with errors.As.
type UserError struct {
	Err error
}

func (e *UserError) Error() string { return fmt.Sprintf("reactive: user closure error: %s", e.Err) }
func (e *UserError) Unwrap() error { return e.Err }

func wrapUserError(err error) error {
	if err == nil {
		return nil
	}
	return &UserError{Err: err}
}

// debugLabel produces a short, stable identifier for a node, used
// only to make ErrCycleDetected messages legible. Grounded on
// pkg/flimsy's xxhash.Sum64String symbol-id idiom — a real counter
// would work too, but a content hash needs no shared mutable state.
func debugLabel(ptr any) string {
	return fmt.Sprintf("%08x", xxhash.Sum64String(fmt.Sprintf("%p", ptr))&0xffffffff)
}

func cycleError(kind string, ptr any) error {
	return fmt.Errorf("%w: %s %s", ErrCycleDetected, kind, debugLabel(ptr))
}
