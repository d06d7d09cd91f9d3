package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/coursewell/coursewell/internal/store"
)

// Error kinds surfaced to the transport layer. Dispatch and the history
// operations wrap every failure in exactly one of these so callers can
// branch with errors.Is.
var (
	// ErrNotFound means the lesson (or a step it references) does not exist.
	ErrNotFound = errors.New("not found")

	// ErrMalformed means the request is rejected before any mutation:
	// missing field, or an empty answer to a pending question.
	ErrMalformed = errors.New("malformed request")

	// ErrConflict means a concurrent mutation won the race. The session
	// was not changed by this request; reload and resubmit.
	ErrConflict = errors.New("conflict")

	// ErrGatewayTimeout means the tutor call did not complete in time.
	// Nothing was persisted; retrying the identical request is safe.
	ErrGatewayTimeout = errors.New("tutor gateway timeout")

	// ErrGatewayFailure means the tutor call failed. Nothing was persisted.
	ErrGatewayFailure = errors.New("tutor gateway failure")

	// ErrNotAvailable means there is nothing to undo. Benign.
	ErrNotAvailable = errors.New("nothing to undo")
)

// gatewayError classifies a failed tutor call. The session is still at
// its pre-request state when this is returned.
func gatewayError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrGatewayTimeout, err)
	}
	return fmt.Errorf("%w: %w", ErrGatewayFailure, err)
}

// saveError maps store failures from a conditional save.
func saveError(err error) error {
	if errors.Is(err, store.ErrConflict) {
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}
	return err
}
