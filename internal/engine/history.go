package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/coursewell/coursewell/internal/store"
)

// Reset replaces the session with a fresh one: pointer at 0, empty
// history, no pending question. Idempotent; resetting a session that
// was never persisted is a no-op.
func (e *Engine) Reset(ctx context.Context, learnerID, lessonID string) error {
	if learnerID == "" || lessonID == "" {
		return fmt.Errorf("%w: missing learner or lesson id", ErrMalformed)
	}
	if _, err := e.lessons.Get(ctx, lessonID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return err
	}

	sess, err := e.sessions.Load(ctx, learnerID, lessonID)
	if err != nil {
		return err
	}
	if sess.Version == 0 {
		return nil
	}
	if err := e.sessions.Save(ctx, sess.Fresh()); err != nil {
		return saveError(err)
	}
	return nil
}

// DeleteLastTurn undoes the most recent round exactly: history is
// truncated to its pre-round length and the pointer and pending
// question are restored from the round's checkpoint. Returns
// ErrNotAvailable when there is no round to undo.
func (e *Engine) DeleteLastTurn(ctx context.Context, learnerID, lessonID string) error {
	if learnerID == "" || lessonID == "" {
		return fmt.Errorf("%w: missing learner or lesson id", ErrMalformed)
	}

	sess, err := e.sessions.Load(ctx, learnerID, lessonID)
	if err != nil {
		return err
	}
	if sess.Version == 0 || len(sess.Checkpoints) == 0 {
		return ErrNotAvailable
	}

	cp := sess.Checkpoints[len(sess.Checkpoints)-1]
	if cp.HistoryLen > len(sess.History) {
		// Checkpoint does not describe this history; refuse rather
		// than truncate to a guess.
		return ErrNotAvailable
	}

	sess.History = sess.History[:cp.HistoryLen]
	sess.CurrentStep = cp.StepIndex
	sess.PendingQuestion = nil
	if cp.PendingQuestion != nil {
		v := *cp.PendingQuestion
		sess.PendingQuestion = &v
	}
	sess.Checkpoints = sess.Checkpoints[:len(sess.Checkpoints)-1]

	if err := e.sessions.Save(ctx, sess); err != nil {
		return saveError(err)
	}
	return nil
}
