package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/coursewell/coursewell/internal/progress"
	"github.com/coursewell/coursewell/internal/script"
	"github.com/coursewell/coursewell/internal/store"
	"github.com/coursewell/coursewell/internal/tutor"
)

// checkpointLimit bounds the trailing undo log kept per session.
const checkpointLimit = 20

const (
	correctFeedback   = "Correct! Great job."
	incorrectFallback = "Not quite. Have another look at the material and keep going."
	lessonEndText     = "Congratulations! You have completed this chapter."
)

// Engine is the lesson session state machine. It owns all session
// mutation: dispatching turns, resetting, and undoing rounds. Every
// mutating path is serialized per (learner, lesson) key by the store's
// version-conditional save.
type Engine struct {
	sessions   store.SessionRepo
	lessons    store.LessonRepo
	gateway    tutor.Gateway
	completion progress.Completion
	logger     *zap.Logger
}

// New creates an Engine. A nil logger disables engine logging.
func New(sessions store.SessionRepo, lessons store.LessonRepo, gateway tutor.Gateway, completion progress.Completion, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		sessions:   sessions,
		lessons:    lessons,
		gateway:    gateway,
		completion: completion,
		logger:     logger,
	}
}

// Dispatch runs one request through the state machine. The session is
// persisted at most once, and only after any tutor call has succeeded;
// a failed dispatch leaves the session exactly at its pre-request
// state, so retrying the identical request is safe.
func (e *Engine) Dispatch(ctx context.Context, req Request) (*Response, error) {
	if req.LearnerID == "" {
		return nil, fmt.Errorf("%w: missing learner id", ErrMalformed)
	}
	if req.LessonID == "" {
		return nil, fmt.Errorf("%w: missing lesson id", ErrMalformed)
	}

	lesson, err := e.lessons.Get(ctx, req.LessonID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, err
	}

	sess, err := e.sessions.Load(ctx, req.LearnerID, req.LessonID)
	if err != nil {
		return nil, err
	}
	reconcile(sess, lesson.Script)

	switch req.Kind {
	case Qna:
		return e.dispatchQna(ctx, lesson, sess, req)
	case LessonFlow:
		if sess.PendingQuestion != nil {
			return e.dispatchAnswer(ctx, lesson, sess, req)
		}
		return e.dispatchAdvance(ctx, lesson, sess)
	default:
		return nil, fmt.Errorf("%w: unknown request kind %q", ErrMalformed, req.Kind)
	}
}

// reconcile guards a session captured against an older revision of the
// lesson: stale pointers land on END, and a pending question that no
// longer points at a question step is dropped.
func reconcile(sess *store.Session, sc *script.Script) {
	sess.CurrentStep = sc.Clamp(sess.CurrentStep)
	if sess.PendingQuestion == nil {
		return
	}
	step, err := sc.StepAt(*sess.PendingQuestion)
	if err != nil || !step.IsQuestion() || *sess.PendingQuestion != sess.CurrentStep {
		sess.PendingQuestion = nil
	}
}

// dispatchQna answers a side question. The lesson pointer and pending
// question are never touched; only history grows.
func (e *Engine) dispatchQna(ctx context.Context, lesson *store.Lesson, sess *store.Session, req Request) (*Response, error) {
	question := trimmedInput(req.Input)
	if question == "" {
		return nil, fmt.Errorf("%w: question text required", ErrMalformed)
	}

	cp := checkpointOf(sess)
	lessonContext := strings.Join(lesson.Script.ContentBefore(sess.CurrentStep), "\n")

	answer, err := e.gateway.AnswerQuestion(ctx, lessonContext, question, sess.History)
	if err != nil {
		return nil, gatewayError(err)
	}

	appendTurn(sess, store.RoleLearner, question)
	appendTurn(sess, store.RoleTutor, answer)
	pushCheckpoint(sess, cp)

	if err := e.persist(ctx, sess, lesson.Script); err != nil {
		return nil, err
	}
	return &Response{Kind: QnaAnswered, TutorText: answer}, nil
}

// dispatchAdvance handles LESSON_FLOW with no pending question: deliver
// the current step and move on.
func (e *Engine) dispatchAdvance(ctx context.Context, lesson *store.Lesson, sess *store.Session) (*Response, error) {
	step, err := lesson.Script.StepAt(sess.CurrentStep)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	if step.Kind == script.KindEnd {
		// Repeat arrival at END is a read-only round.
		summary, err := e.completion.RecordLessonComplete(ctx, sess.LearnerID, lesson)
		if err != nil {
			return nil, err
		}
		return &Response{
			Kind:           LessonEnded,
			TutorText:      lessonEndText,
			NextChapterURL: summary.NextChapterURL,
			CertificateURL: summary.CertificateURL,
		}, nil
	}

	cp := checkpointOf(sess)
	resp := &Response{Kind: Delivering}

	switch step.Kind {
	case script.KindContent:
		text, err := e.gateway.DeliverContent(ctx, step.Text, sess.History)
		if err != nil {
			return nil, gatewayError(err)
		}
		appendTurn(sess, store.RoleTutor, text)
		resp.TutorText = text
		sess.CurrentStep++

	case script.KindMedia:
		if step.AltText == "" || step.MediaURL == "" {
			// Incomplete media step: skip silently, no turn, no tutor call.
			sess.CurrentStep++
		} else {
			text, err := e.gateway.DescribeMedia(ctx, step.AltText, sess.History)
			if err != nil {
				return nil, gatewayError(err)
			}
			appendTurn(sess, store.RoleTutor, text)
			resp.TutorText = text
			resp.MediaURL = step.MediaURL
			sess.CurrentStep++
		}

	case script.KindQuestionMCQ, script.KindQuestionSA:
		// A question step became current without being emitted yet
		// (lesson opens with a question, or pointer reconciliation).
		emitQuestion(sess, resp, step)

	default:
		return nil, fmt.Errorf("unhandled step kind %q at index %d", step.Kind, step.Index)
	}

	if resp.Question == nil {
		if err := e.postDelivery(ctx, lesson, sess, resp); err != nil {
			return nil, err
		}
	}

	pushCheckpoint(sess, cp)
	if err := e.persist(ctx, sess, lesson.Script); err != nil {
		return nil, err
	}
	e.logger.Debug("dispatched advance",
		zap.String("lesson_id", lesson.ID),
		zap.Int("step", sess.CurrentStep),
		zap.String("kind", string(resp.Kind)))
	return resp, nil
}

// dispatchAnswer handles LESSON_FLOW while a question is pending: grade
// the answer, record feedback, and always advance. Progression is
// formative; a wrong answer gets a hint instead of a locked pointer.
func (e *Engine) dispatchAnswer(ctx context.Context, lesson *store.Lesson, sess *store.Session, req Request) (*Response, error) {
	answer := trimmedInput(req.Input)
	if answer == "" {
		return nil, fmt.Errorf("%w: empty answer to a pending question", ErrMalformed)
	}

	qStep, err := lesson.Script.StepAt(*sess.PendingQuestion)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	cp := checkpointOf(sess)

	var feedback string
	switch qStep.Kind {
	case script.KindQuestionMCQ:
		if strings.EqualFold(answer, qStep.CorrectKey) {
			feedback = correctFeedback
		} else {
			lessonContext := strings.Join(lesson.Script.ContentBefore(qStep.Index), "\n")
			hint, err := e.gateway.Hint(ctx, lessonContext)
			if err != nil {
				return nil, gatewayError(err)
			}
			feedback = hint
		}

	case script.KindQuestionSA:
		grade, err := e.gateway.GradeShortAnswer(ctx, qStep.Keywords, answer)
		if err != nil {
			return nil, gatewayError(err)
		}
		feedback = grade.Feedback
		if feedback == "" {
			if grade.Correct {
				feedback = correctFeedback
			} else {
				feedback = incorrectFallback
			}
		}

	default:
		return nil, fmt.Errorf("pending question points at non-question step %d", qStep.Index)
	}

	appendTurn(sess, store.RoleLearner, answer)
	appendTurn(sess, store.RoleTutor, feedback)
	sess.PendingQuestion = nil
	sess.CurrentStep++

	resp := &Response{Kind: Delivering, Feedback: feedback}
	if err := e.postDelivery(ctx, lesson, sess, resp); err != nil {
		return nil, err
	}

	pushCheckpoint(sess, cp)
	if err := e.persist(ctx, sess, lesson.Script); err != nil {
		return nil, err
	}
	return resp, nil
}

// postDelivery inspects the step the pointer now addresses and finishes
// the round: signal an auto-continue, emit the next question, or close
// out the lesson.
func (e *Engine) postDelivery(ctx context.Context, lesson *store.Lesson, sess *store.Session, resp *Response) error {
	next, err := lesson.Script.StepAt(sess.CurrentStep)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	switch next.Kind {
	case script.KindContent, script.KindMedia:
		resp.AutoContinue = true

	case script.KindQuestionMCQ, script.KindQuestionSA:
		emitQuestion(sess, resp, next)

	case script.KindEnd:
		summary, err := e.completion.RecordLessonComplete(ctx, sess.LearnerID, lesson)
		if err != nil {
			return err
		}
		appendTurn(sess, store.RoleTutor, lessonEndText)
		if resp.TutorText == "" {
			resp.TutorText = lessonEndText
		} else {
			resp.TutorText += "\n\n" + lessonEndText
		}
		resp.Kind = LessonEnded
		resp.NextChapterURL = summary.NextChapterURL
		resp.CertificateURL = summary.CertificateURL
	}
	return nil
}

// emitQuestion marks the question step as pending and attaches its
// payload. The question text joins the history so side questions and
// undo see the full transcript.
func emitQuestion(sess *store.Session, resp *Response, step script.Step) {
	idx := step.Index
	sess.PendingQuestion = &idx
	appendTurn(sess, store.RoleTutor, step.Question)
	resp.Kind = AwaitingAnswer
	resp.Question = &Question{
		Type:     step.Kind,
		Question: step.Question,
		Options:  step.Options,
	}
}

// persist checks the session invariant and saves.
func (e *Engine) persist(ctx context.Context, sess *store.Session, sc *script.Script) error {
	if err := checkInvariants(sess, sc); err != nil {
		return err
	}
	if err := e.sessions.Save(ctx, sess); err != nil {
		return saveError(err)
	}
	return nil
}

// checkInvariants verifies pending_question consistency before every
// persisted write.
func checkInvariants(sess *store.Session, sc *script.Script) error {
	if sess.PendingQuestion == nil {
		return nil
	}
	if *sess.PendingQuestion != sess.CurrentStep {
		return fmt.Errorf("pending question %d does not match current step %d", *sess.PendingQuestion, sess.CurrentStep)
	}
	step, err := sc.StepAt(*sess.PendingQuestion)
	if err != nil {
		return fmt.Errorf("pending question out of range: %w", err)
	}
	if !step.IsQuestion() {
		return fmt.Errorf("pending question points at %s step %d", step.Kind, step.Index)
	}
	return nil
}

func trimmedInput(in *string) string {
	if in == nil {
		return ""
	}
	return strings.TrimSpace(*in)
}

func appendTurn(sess *store.Session, role, text string) {
	sess.History = append(sess.History, store.Turn{
		Role:      role,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})
}

func checkpointOf(sess *store.Session) store.Checkpoint {
	cp := store.Checkpoint{
		StepIndex:  sess.CurrentStep,
		HistoryLen: len(sess.History),
	}
	if sess.PendingQuestion != nil {
		v := *sess.PendingQuestion
		cp.PendingQuestion = &v
	}
	return cp
}

func pushCheckpoint(sess *store.Session, cp store.Checkpoint) {
	sess.Checkpoints = append(sess.Checkpoints, cp)
	if n := len(sess.Checkpoints); n > checkpointLimit {
		sess.Checkpoints = sess.Checkpoints[n-checkpointLimit:]
	}
}
