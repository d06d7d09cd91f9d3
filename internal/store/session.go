package store

import (
	"context"
	"fmt"

	"github.com/coursewell/coursewell/ent"
	"github.com/coursewell/coursewell/ent/chatsession"
	entschema "github.com/coursewell/coursewell/ent/schema"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Load(ctx context.Context, learnerID, lessonID string) (*Session, error) {
	row, err := r.client.ChatSession.Query().
		Where(
			chatsession.LearnerID(learnerID),
			chatsession.LessonID(lessonID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &Session{LearnerID: learnerID, LessonID: lessonID}, nil
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	return entSessionToSession(row), nil
}

func (r *sessionRepo) Save(ctx context.Context, s *Session) error {
	history := turnsToRecords(s.History)
	checkpoints := checkpointsToRecords(s.Checkpoints)

	if s.Version == 0 {
		created, err := r.client.ChatSession.Create().
			SetLearnerID(s.LearnerID).
			SetLessonID(s.LessonID).
			SetCurrentStep(s.CurrentStep).
			SetNillablePendingQuestion(s.PendingQuestion).
			SetHistory(history).
			SetCheckpoints(checkpoints).
			SetVersion(1).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				// Another writer created the row first.
				return fmt.Errorf("create session: %w", ErrConflict)
			}
			return fmt.Errorf("create session: %w", err)
		}
		s.Version = created.Version
		return nil
	}

	upd := r.client.ChatSession.Update().
		Where(
			chatsession.LearnerID(s.LearnerID),
			chatsession.LessonID(s.LessonID),
			chatsession.Version(s.Version),
		).
		SetCurrentStep(s.CurrentStep).
		SetHistory(history).
		SetCheckpoints(checkpoints).
		SetVersion(s.Version + 1)
	if s.PendingQuestion != nil {
		upd.SetPendingQuestion(*s.PendingQuestion)
	} else {
		upd.ClearPendingQuestion()
	}
	n, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("update session: %w", ErrConflict)
	}
	s.Version++
	return nil
}

func (r *sessionRepo) Exists(ctx context.Context, learnerID, lessonID string) (bool, error) {
	exists, err := r.client.ChatSession.Query().
		Where(
			chatsession.LearnerID(learnerID),
			chatsession.LessonID(lessonID),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("session exists: %w", err)
	}
	return exists, nil
}

func entSessionToSession(row *ent.ChatSession) *Session {
	s := &Session{
		LearnerID:       row.LearnerID,
		LessonID:        row.LessonID,
		CurrentStep:     row.CurrentStep,
		PendingQuestion: row.PendingQuestion,
		Version:         row.Version,
	}
	for _, t := range row.History {
		s.History = append(s.History, Turn{Role: t.Role, Text: t.Text, CreatedAt: t.CreatedAt})
	}
	for _, c := range row.Checkpoints {
		s.Checkpoints = append(s.Checkpoints, Checkpoint{
			StepIndex:       c.StepIndex,
			PendingQuestion: c.PendingQuestion,
			HistoryLen:      c.HistoryLen,
		})
	}
	return s
}

func turnsToRecords(turns []Turn) []entschema.Turn {
	out := make([]entschema.Turn, len(turns))
	for i, t := range turns {
		out[i] = entschema.Turn{Role: t.Role, Text: t.Text, CreatedAt: t.CreatedAt}
	}
	return out
}

func checkpointsToRecords(cps []Checkpoint) []entschema.Checkpoint {
	out := make([]entschema.Checkpoint, len(cps))
	for i, c := range cps {
		out[i] = entschema.Checkpoint{
			StepIndex:       c.StepIndex,
			PendingQuestion: c.PendingQuestion,
			HistoryLen:      c.HistoryLen,
		}
	}
	return out
}
