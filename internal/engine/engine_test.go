package engine

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/coursewell/coursewell/internal/progress"
	"github.com/coursewell/coursewell/internal/script"
	"github.com/coursewell/coursewell/internal/store"
	"github.com/coursewell/coursewell/internal/tutor"
)

// fakeGateway is a deterministic tutor.Gateway that records its calls.
type fakeGateway struct {
	err      error
	hintText string
	grade    *tutor.Grade
	onCall   func()

	contentCalls []string
	mediaCalls   []string
	hintContexts []string
	gradeAnswers []string
	qnaCalls     []qnaCall
}

type qnaCall struct {
	Context  string
	Question string
}

func (g *fakeGateway) DeliverContent(_ context.Context, text string, _ []store.Turn) (string, error) {
	if g.onCall != nil {
		g.onCall()
	}
	if g.err != nil {
		return "", g.err
	}
	g.contentCalls = append(g.contentCalls, text)
	return "tutor says: " + text, nil
}

func (g *fakeGateway) DescribeMedia(_ context.Context, altText string, _ []store.Turn) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	g.mediaCalls = append(g.mediaCalls, altText)
	return "look at: " + altText, nil
}

func (g *fakeGateway) Hint(_ context.Context, lessonContext string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	g.hintContexts = append(g.hintContexts, lessonContext)
	if g.hintText != "" {
		return g.hintText, nil
	}
	return "here is a hint", nil
}

func (g *fakeGateway) GradeShortAnswer(_ context.Context, _ []string, answer string) (*tutor.Grade, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.gradeAnswers = append(g.gradeAnswers, answer)
	if g.grade != nil {
		return g.grade, nil
	}
	return &tutor.Grade{Correct: true, Feedback: "Nice work."}, nil
}

func (g *fakeGateway) AnswerQuestion(_ context.Context, lessonContext, question string, _ []store.Turn) (string, error) {
	if g.onCall != nil {
		g.onCall()
	}
	if g.err != nil {
		return "", g.err
	}
	g.qnaCalls = append(g.qnaCalls, qnaCall{Context: lessonContext, Question: question})
	return "answer: " + question, nil
}

func (g *fakeGateway) callCount() int {
	return len(g.contentCalls) + len(g.mediaCalls) + len(g.hintContexts) + len(g.gradeAnswers) + len(g.qnaCalls)
}

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func putLesson(t *testing.T, s *store.Store, id, courseID string, chapter int, steps []script.Step) {
	t.Helper()
	sc, err := script.New(steps)
	if err != nil {
		t.Fatalf("build script: %v", err)
	}
	err = s.LessonRepo().Put(context.Background(), &store.Lesson{
		ID: id, CourseID: courseID, Title: "Ch", Chapter: chapter,
		RawScript: "raw", Script: sc,
	})
	if err != nil {
		t.Fatalf("put lesson: %v", err)
	}
}

// newTestEngine wires an engine over a single-chapter course whose
// lesson "lesson-1" has the given steps.
func newTestEngine(t *testing.T, steps []script.Step) (*Engine, *fakeGateway, *store.Store) {
	t.Helper()
	s := openTestStore(t)
	putLesson(t, s, "lesson-1", "course-1", 1, steps)
	gw := &fakeGateway{}
	eng := New(s.SessionRepo(), s.LessonRepo(), gw,
		progress.NewTracker(s.EnrollmentRepo(), s.LessonRepo()), zap.NewNop())
	return eng, gw, s
}

func mcqLessonSteps() []script.Step {
	return []script.Step{
		{Kind: script.KindContent, Text: "Two plus two."},
		{Kind: script.KindQuestionMCQ, Question: "What is 2+2?",
			Options:    []script.Option{{Key: "A", Text: "2"}, {Key: "B", Text: "4"}},
			CorrectKey: "B"},
		{Kind: script.KindEnd},
	}
}

func strPtr(s string) *string { return &s }

func loadSession(t *testing.T, s *store.Store) *store.Session {
	t.Helper()
	sess, err := s.SessionRepo().Load(context.Background(), "learner-1", "lesson-1")
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	return sess
}

func dispatch(t *testing.T, eng *Engine, kind RequestKind, input *string) *Response {
	t.Helper()
	resp, err := eng.Dispatch(context.Background(), Request{
		LearnerID: "learner-1", LessonID: "lesson-1", Kind: kind, Input: input,
	})
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	return resp
}

func TestDispatchContentThenQuestion(t *testing.T) {
	eng, gw, s := newTestEngine(t, mcqLessonSteps())

	resp := dispatch(t, eng, LessonFlow, nil)
	if resp.Kind != AwaitingAnswer {
		t.Fatalf("kind = %s, want AwaitingAnswer", resp.Kind)
	}
	if resp.TutorText != "tutor says: Two plus two." {
		t.Errorf("tutor text = %q", resp.TutorText)
	}
	if resp.Question == nil || resp.Question.Type != script.KindQuestionMCQ {
		t.Fatalf("question = %+v", resp.Question)
	}
	if len(resp.Question.Options) != 2 || resp.Question.Options[1].Key != "B" {
		t.Errorf("options = %+v", resp.Question.Options)
	}
	if len(gw.contentCalls) != 1 {
		t.Errorf("content calls = %d, want 1", len(gw.contentCalls))
	}

	sess := loadSession(t, s)
	if sess.CurrentStep != 1 {
		t.Errorf("pointer = %d, want 1", sess.CurrentStep)
	}
	if sess.PendingQuestion == nil || *sess.PendingQuestion != 1 {
		t.Errorf("pending = %v, want 1", sess.PendingQuestion)
	}
	// Content turn plus question turn.
	if len(sess.History) != 2 {
		t.Errorf("history = %d turns, want 2", len(sess.History))
	}
}

func TestDispatchCorrectAnswerEndsLesson(t *testing.T) {
	eng, _, s := newTestEngine(t, mcqLessonSteps())
	dispatch(t, eng, LessonFlow, nil)

	resp := dispatch(t, eng, LessonFlow, strPtr("B"))
	if resp.Kind != LessonEnded {
		t.Fatalf("kind = %s, want LessonEnded", resp.Kind)
	}
	if resp.Feedback != "Correct! Great job." {
		t.Errorf("feedback = %q", resp.Feedback)
	}
	if resp.CertificateURL == "" {
		t.Error("single-chapter course should resolve a certificate")
	}

	sess := loadSession(t, s)
	if sess.CurrentStep != 2 {
		t.Errorf("pointer = %d, want 2", sess.CurrentStep)
	}
	if sess.PendingQuestion != nil {
		t.Errorf("pending = %v, want nil", sess.PendingQuestion)
	}
}

func TestDispatchAnswerIsCaseInsensitive(t *testing.T) {
	eng, gw, _ := newTestEngine(t, mcqLessonSteps())
	dispatch(t, eng, LessonFlow, nil)

	resp := dispatch(t, eng, LessonFlow, strPtr(" b "))
	if resp.Feedback != "Correct! Great job." {
		t.Errorf("feedback = %q", resp.Feedback)
	}
	if len(gw.hintContexts) != 0 {
		t.Error("correct answer must not request a hint")
	}
}

func TestDispatchWrongAnswerStillAdvances(t *testing.T) {
	eng, gw, s := newTestEngine(t, mcqLessonSteps())
	dispatch(t, eng, LessonFlow, nil)

	gw.hintText = "Count your fingers."
	resp := dispatch(t, eng, LessonFlow, strPtr("A"))
	if resp.Feedback != "Count your fingers." {
		t.Errorf("feedback = %q", resp.Feedback)
	}
	if resp.Kind != LessonEnded {
		t.Errorf("kind = %s, want LessonEnded (formative progression)", resp.Kind)
	}
	if len(gw.hintContexts) != 1 || gw.hintContexts[0] != "Two plus two." {
		t.Errorf("hint contexts = %v", gw.hintContexts)
	}

	sess := loadSession(t, s)
	if sess.CurrentStep != 2 || sess.PendingQuestion != nil {
		t.Errorf("session = step %d pending %v", sess.CurrentStep, sess.PendingQuestion)
	}
}

func TestDispatchEmptyAnswerRejected(t *testing.T) {
	eng, gw, s := newTestEngine(t, mcqLessonSteps())
	dispatch(t, eng, LessonFlow, nil)
	before := loadSession(t, s)
	calls := gw.callCount()

	for _, input := range []*string{nil, strPtr(""), strPtr("   ")} {
		_, err := eng.Dispatch(context.Background(), Request{
			LearnerID: "learner-1", LessonID: "lesson-1", Kind: LessonFlow, Input: input,
		})
		if !errors.Is(err, ErrMalformed) {
			t.Fatalf("dispatch(%v) = %v, want ErrMalformed", input, err)
		}
	}

	if gw.callCount() != calls {
		t.Error("rejected answers must not reach the gateway")
	}
	after := loadSession(t, s)
	if after.CurrentStep != before.CurrentStep || len(after.History) != len(before.History) {
		t.Error("rejected answers must not mutate the session")
	}
	if after.PendingQuestion == nil || *after.PendingQuestion != 1 {
		t.Errorf("pending = %v, want 1", after.PendingQuestion)
	}
}

func TestDispatchShortAnswerGrading(t *testing.T) {
	steps := []script.Step{
		{Kind: script.KindContent, Text: "Plants use light."},
		{Kind: script.KindQuestionSA, Question: "How do plants eat?",
			Keywords: []string{"light", "energy"}},
		{Kind: script.KindEnd},
	}
	eng, gw, _ := newTestEngine(t, steps)
	dispatch(t, eng, LessonFlow, nil)

	gw.grade = &tutor.Grade{Correct: false, Feedback: "You are missing the light part."}
	resp := dispatch(t, eng, LessonFlow, strPtr("they just grow"))
	if resp.Feedback != "You are missing the light part." {
		t.Errorf("feedback = %q", resp.Feedback)
	}
	if resp.Kind != LessonEnded {
		t.Errorf("kind = %s, want LessonEnded", resp.Kind)
	}
	if len(gw.gradeAnswers) != 1 || gw.gradeAnswers[0] != "they just grow" {
		t.Errorf("grade answers = %v", gw.gradeAnswers)
	}
}

func TestDispatchShortAnswerFallbackFeedback(t *testing.T) {
	steps := []script.Step{
		{Kind: script.KindQuestionSA, Question: "Why?", Keywords: []string{"because"}},
		{Kind: script.KindEnd},
	}
	eng, gw, _ := newTestEngine(t, steps)
	dispatch(t, eng, LessonFlow, nil)

	gw.grade = &tutor.Grade{Correct: true}
	resp := dispatch(t, eng, LessonFlow, strPtr("because"))
	if resp.Feedback != "Correct! Great job." {
		t.Errorf("feedback = %q", resp.Feedback)
	}
}

func TestDispatchAutoContinue(t *testing.T) {
	steps := []script.Step{
		{Kind: script.KindContent, Text: "First."},
		{Kind: script.KindContent, Text: "Second."},
		{Kind: script.KindEnd},
	}
	eng, _, _ := newTestEngine(t, steps)

	resp := dispatch(t, eng, LessonFlow, nil)
	if resp.Kind != Delivering || !resp.AutoContinue {
		t.Fatalf("resp = %+v, want Delivering with auto-continue", resp)
	}

	resp = dispatch(t, eng, LessonFlow, strPtr("Continue"))
	if resp.Kind != LessonEnded {
		t.Errorf("kind = %s, want LessonEnded", resp.Kind)
	}
	if resp.TutorText == "" {
		t.Error("final content delivery should carry tutor text")
	}
}

func TestDispatchBareAdvanceAppendsNoLearnerTurn(t *testing.T) {
	steps := []script.Step{
		{Kind: script.KindContent, Text: "First."},
		{Kind: script.KindContent, Text: "Second."},
		{Kind: script.KindEnd},
	}
	eng, _, s := newTestEngine(t, steps)

	dispatch(t, eng, LessonFlow, strPtr("Continue"))
	sess := loadSession(t, s)
	for _, turn := range sess.History {
		if turn.Role == store.RoleLearner {
			t.Fatalf("bare advance recorded a learner turn: %+v", turn)
		}
	}
}

func TestDispatchMediaDelivery(t *testing.T) {
	steps := []script.Step{
		{Kind: script.KindMedia, AltText: "A leaf", MediaURL: "/static/leaf.png"},
		{Kind: script.KindEnd},
	}
	eng, gw, _ := newTestEngine(t, steps)

	resp := dispatch(t, eng, LessonFlow, nil)
	if resp.MediaURL != "/static/leaf.png" {
		t.Errorf("media url = %q", resp.MediaURL)
	}
	if resp.TutorText != "look at: A leaf" {
		t.Errorf("tutor text = %q", resp.TutorText)
	}
	if len(gw.mediaCalls) != 1 {
		t.Errorf("media calls = %d, want 1", len(gw.mediaCalls))
	}
}

func TestDispatchIncompleteMediaSkipped(t *testing.T) {
	steps := []script.Step{
		{Kind: script.KindMedia, AltText: "missing url"},
		{Kind: script.KindContent, Text: "After media."},
		{Kind: script.KindEnd},
	}
	eng, gw, s := newTestEngine(t, steps)

	resp := dispatch(t, eng, LessonFlow, nil)
	if resp.Kind != Delivering || !resp.AutoContinue {
		t.Fatalf("resp = %+v, want silent skip with auto-continue", resp)
	}
	if resp.TutorText != "" || resp.MediaURL != "" {
		t.Errorf("skip should carry no payload, got %+v", resp)
	}
	if gw.callCount() != 0 {
		t.Error("skip must not call the gateway")
	}
	sess := loadSession(t, s)
	if sess.CurrentStep != 1 || len(sess.History) != 0 {
		t.Errorf("session = step %d, %d turns", sess.CurrentStep, len(sess.History))
	}
}

func TestQnaLeavesLessonStateUntouched(t *testing.T) {
	eng, gw, s := newTestEngine(t, mcqLessonSteps())

	// QNA before anything is pending.
	resp := dispatch(t, eng, Qna, strPtr("What will we learn?"))
	if resp.Kind != QnaAnswered {
		t.Fatalf("kind = %s, want QnaAnswered", resp.Kind)
	}
	sess := loadSession(t, s)
	if sess.CurrentStep != 0 || sess.PendingQuestion != nil {
		t.Errorf("qna moved lesson state: step %d pending %v", sess.CurrentStep, sess.PendingQuestion)
	}
	if len(sess.History) != 2 {
		t.Errorf("history = %d turns, want 2", len(sess.History))
	}

	// QNA while a question is pending.
	dispatch(t, eng, LessonFlow, nil)
	before := loadSession(t, s)
	resp = dispatch(t, eng, Qna, strPtr("Can you repeat that?"))
	if resp.Kind != QnaAnswered {
		t.Fatalf("kind = %s, want QnaAnswered", resp.Kind)
	}
	after := loadSession(t, s)
	if after.CurrentStep != before.CurrentStep {
		t.Errorf("pointer changed: %d -> %d", before.CurrentStep, after.CurrentStep)
	}
	if after.PendingQuestion == nil || *after.PendingQuestion != *before.PendingQuestion {
		t.Errorf("pending changed: %v -> %v", before.PendingQuestion, after.PendingQuestion)
	}
	if len(after.History) != len(before.History)+2 {
		t.Errorf("history = %d turns, want %d", len(after.History), len(before.History)+2)
	}

	// The context handed to the gateway is the content covered so far.
	last := gw.qnaCalls[len(gw.qnaCalls)-1]
	if last.Context != "Two plus two." {
		t.Errorf("qna context = %q", last.Context)
	}
}

func TestQnaRequiresQuestionText(t *testing.T) {
	eng, gw, _ := newTestEngine(t, mcqLessonSteps())
	_, err := eng.Dispatch(context.Background(), Request{
		LearnerID: "learner-1", LessonID: "lesson-1", Kind: Qna, Input: nil,
	})
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
	if gw.callCount() != 0 {
		t.Error("rejected qna must not reach the gateway")
	}
}

func TestDispatchRepeatAtEndIsReadOnly(t *testing.T) {
	eng, _, s := newTestEngine(t, mcqLessonSteps())
	dispatch(t, eng, LessonFlow, nil)
	dispatch(t, eng, LessonFlow, strPtr("B"))
	before := loadSession(t, s)

	resp := dispatch(t, eng, LessonFlow, nil)
	if resp.Kind != LessonEnded {
		t.Fatalf("kind = %s, want LessonEnded", resp.Kind)
	}
	after := loadSession(t, s)
	if len(after.History) != len(before.History) {
		t.Error("repeat at END must not append turns")
	}
	if len(after.Checkpoints) != len(before.Checkpoints) {
		t.Error("repeat at END must not record a checkpoint")
	}
	if after.Version != before.Version {
		t.Error("repeat at END must not write the session")
	}
}

func TestDispatchUnknownLesson(t *testing.T) {
	eng, _, _ := newTestEngine(t, mcqLessonSteps())
	_, err := eng.Dispatch(context.Background(), Request{
		LearnerID: "learner-1", LessonID: "nope", Kind: LessonFlow,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDispatchMissingLearner(t *testing.T) {
	eng, _, _ := newTestEngine(t, mcqLessonSteps())
	_, err := eng.Dispatch(context.Background(), Request{
		LessonID: "lesson-1", Kind: LessonFlow,
	})
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
}

func TestDispatchGatewayFailureLeavesSessionUntouched(t *testing.T) {
	eng, gw, s := newTestEngine(t, mcqLessonSteps())

	gw.err = errors.New("model exploded")
	_, err := eng.Dispatch(context.Background(), Request{
		LearnerID: "learner-1", LessonID: "lesson-1", Kind: LessonFlow,
	})
	if !errors.Is(err, ErrGatewayFailure) {
		t.Fatalf("err = %v, want ErrGatewayFailure", err)
	}

	sess := loadSession(t, s)
	if sess.Version != 0 {
		t.Error("failed dispatch must not persist a session")
	}

	// Retry after the gateway recovers.
	gw.err = nil
	resp := dispatch(t, eng, LessonFlow, nil)
	if resp.Kind != AwaitingAnswer {
		t.Errorf("retry kind = %s, want AwaitingAnswer", resp.Kind)
	}
}

func TestDispatchGatewayTimeout(t *testing.T) {
	eng, gw, _ := newTestEngine(t, mcqLessonSteps())
	gw.err = context.DeadlineExceeded
	_, err := eng.Dispatch(context.Background(), Request{
		LearnerID: "learner-1", LessonID: "lesson-1", Kind: LessonFlow,
	})
	if !errors.Is(err, ErrGatewayTimeout) {
		t.Fatalf("err = %v, want ErrGatewayTimeout", err)
	}
}

func TestDispatchConflictOnConcurrentWrite(t *testing.T) {
	eng, gw, s := newTestEngine(t, mcqLessonSteps())
	dispatch(t, eng, LessonFlow, nil)

	// While the gateway call is in flight, another writer commits.
	repo := s.SessionRepo()
	raced := false
	gw.onCall = func() {
		if raced {
			return
		}
		raced = true
		other, err := repo.Load(context.Background(), "learner-1", "lesson-1")
		if err != nil {
			t.Fatalf("racing load: %v", err)
		}
		if err := repo.Save(context.Background(), other); err != nil {
			t.Fatalf("racing save: %v", err)
		}
	}

	_, err := eng.Dispatch(context.Background(), Request{
		LearnerID: "learner-1", LessonID: "lesson-1", Kind: Qna, Input: strPtr("What?"),
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}

func TestDispatchStalePointerClampsToEnd(t *testing.T) {
	eng, _, s := newTestEngine(t, mcqLessonSteps())
	sess := loadSession(t, s)
	sess.CurrentStep = 99
	if err := s.SessionRepo().Save(context.Background(), sess); err != nil {
		t.Fatalf("save stale session: %v", err)
	}

	resp := dispatch(t, eng, LessonFlow, nil)
	if resp.Kind != LessonEnded {
		t.Errorf("kind = %s, want LessonEnded for clamped pointer", resp.Kind)
	}
}

func TestResetReproducesFirstTurn(t *testing.T) {
	eng, _, s := newTestEngine(t, mcqLessonSteps())

	first := dispatch(t, eng, LessonFlow, nil)
	dispatch(t, eng, LessonFlow, strPtr("B"))

	if err := eng.Reset(context.Background(), "learner-1", "lesson-1"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	sess := loadSession(t, s)
	if sess.CurrentStep != 0 || sess.PendingQuestion != nil || len(sess.History) != 0 {
		t.Fatalf("reset session = %+v, want empty", sess)
	}

	again := dispatch(t, eng, LessonFlow, nil)
	if again.Kind != first.Kind || again.TutorText != first.TutorText {
		t.Errorf("post-reset first turn = %+v, want %+v", again, first)
	}

	// Resetting twice yields the same empty state.
	if err := eng.Reset(context.Background(), "learner-1", "lesson-1"); err != nil {
		t.Fatalf("second reset: %v", err)
	}
	if err := eng.Reset(context.Background(), "learner-1", "lesson-1"); err != nil {
		t.Fatalf("third reset: %v", err)
	}
}

func TestResetUnknownLesson(t *testing.T) {
	eng, _, _ := newTestEngine(t, mcqLessonSteps())
	err := eng.Reset(context.Background(), "learner-1", "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestResetNeverStartedSession(t *testing.T) {
	eng, _, s := newTestEngine(t, mcqLessonSteps())
	if err := eng.Reset(context.Background(), "learner-1", "lesson-1"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	exists, err := s.SessionRepo().Exists(context.Background(), "learner-1", "lesson-1")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Error("resetting an unstarted session should not create a record")
	}
}

func TestDeleteLastTurnUndoesOneRound(t *testing.T) {
	eng, _, s := newTestEngine(t, mcqLessonSteps())
	dispatch(t, eng, LessonFlow, nil)
	before := loadSession(t, s)

	dispatch(t, eng, LessonFlow, strPtr("B"))

	if err := eng.DeleteLastTurn(context.Background(), "learner-1", "lesson-1"); err != nil {
		t.Fatalf("delete last turn: %v", err)
	}

	after := loadSession(t, s)
	if after.CurrentStep != before.CurrentStep {
		t.Errorf("pointer = %d, want %d", after.CurrentStep, before.CurrentStep)
	}
	if after.PendingQuestion == nil || *after.PendingQuestion != *before.PendingQuestion {
		t.Errorf("pending = %v, want %v", after.PendingQuestion, before.PendingQuestion)
	}
	if len(after.History) != len(before.History) {
		t.Errorf("history = %d turns, want %d", len(after.History), len(before.History))
	}

	// The question is pending again; answering works a second time.
	resp := dispatch(t, eng, LessonFlow, strPtr("B"))
	if resp.Kind != LessonEnded {
		t.Errorf("re-answer kind = %s, want LessonEnded", resp.Kind)
	}
}

func TestDeleteLastTurnUndoesQnaRound(t *testing.T) {
	eng, _, s := newTestEngine(t, mcqLessonSteps())
	dispatch(t, eng, LessonFlow, nil)
	before := loadSession(t, s)

	dispatch(t, eng, Qna, strPtr("Why?"))
	if err := eng.DeleteLastTurn(context.Background(), "learner-1", "lesson-1"); err != nil {
		t.Fatalf("delete last turn: %v", err)
	}

	after := loadSession(t, s)
	if len(after.History) != len(before.History) {
		t.Errorf("history = %d turns, want %d", len(after.History), len(before.History))
	}
	if after.PendingQuestion == nil || *after.PendingQuestion != 1 {
		t.Errorf("pending = %v, want 1", after.PendingQuestion)
	}
}

func TestDeleteLastTurnNothingToUndo(t *testing.T) {
	eng, _, _ := newTestEngine(t, mcqLessonSteps())

	err := eng.DeleteLastTurn(context.Background(), "learner-1", "lesson-1")
	if !errors.Is(err, ErrNotAvailable) {
		t.Fatalf("err = %v, want ErrNotAvailable", err)
	}

	// Exhaust the undo log back to the start.
	dispatch(t, eng, LessonFlow, nil)
	if err := eng.DeleteLastTurn(context.Background(), "learner-1", "lesson-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	err = eng.DeleteLastTurn(context.Background(), "learner-1", "lesson-1")
	if !errors.Is(err, ErrNotAvailable) {
		t.Fatalf("err after exhausting = %v, want ErrNotAvailable", err)
	}
}

func TestCheckpointLogIsBounded(t *testing.T) {
	steps := []script.Step{{Kind: script.KindContent, Text: "loop"}}
	for i := 0; i < checkpointLimit; i++ {
		steps = append(steps, script.Step{Kind: script.KindContent, Text: "more"})
	}
	steps = append(steps, script.Step{Kind: script.KindEnd})
	eng, _, s := newTestEngine(t, steps)

	for i := 0; i < checkpointLimit+1; i++ {
		dispatch(t, eng, LessonFlow, nil)
	}
	sess := loadSession(t, s)
	if len(sess.Checkpoints) != checkpointLimit {
		t.Errorf("checkpoints = %d, want %d", len(sess.Checkpoints), checkpointLimit)
	}
}

func TestNextChapterResolution(t *testing.T) {
	s := openTestStore(t)
	putLesson(t, s, "lesson-1", "course-1", 1, mcqLessonSteps())
	putLesson(t, s, "lesson-2", "course-1", 2, mcqLessonSteps())
	gw := &fakeGateway{}
	eng := New(s.SessionRepo(), s.LessonRepo(), gw,
		progress.NewTracker(s.EnrollmentRepo(), s.LessonRepo()), nil)

	dispatch(t, eng, LessonFlow, nil)
	resp := dispatch(t, eng, LessonFlow, strPtr("B"))
	if resp.Kind != LessonEnded {
		t.Fatalf("kind = %s", resp.Kind)
	}
	if resp.NextChapterURL != "/course/course-1/2" {
		t.Errorf("next chapter url = %q", resp.NextChapterURL)
	}
	if resp.CertificateURL != "" {
		t.Errorf("certificate url = %q, want empty", resp.CertificateURL)
	}
}
