package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coursewell/coursewell/internal/script"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testScript(t *testing.T) *script.Script {
	t.Helper()
	sc, err := script.New([]script.Step{
		{Kind: script.KindContent, Text: "Photosynthesis converts light into energy."},
		{Kind: script.KindQuestionMCQ, Question: "What do plants absorb?",
			Options:    []script.Option{{Key: "A", Text: "Light"}, {Key: "B", Text: "Sound"}},
			CorrectKey: "A"},
		{Kind: script.KindEnd},
	})
	if err != nil {
		t.Fatalf("build test script: %v", err)
	}
	return sc
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionLoadFresh(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	sess, err := repo.Load(ctx, "learner-1", "lesson-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if sess.Version != 0 {
		t.Errorf("fresh session version = %d, want 0", sess.Version)
	}
	if sess.CurrentStep != 0 || len(sess.History) != 0 {
		t.Error("fresh session should be empty")
	}

	exists, err := repo.Exists(ctx, "learner-1", "lesson-1")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Error("unsaved session should not exist")
	}
}

func TestSessionSaveRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	pq := 1
	sess := &Session{
		LearnerID:       "learner-1",
		LessonID:        "lesson-1",
		CurrentStep:     2,
		PendingQuestion: &pq,
		History: []Turn{
			{Role: RoleTutor, Text: "Welcome!", CreatedAt: time.Now().UTC().Truncate(time.Second)},
			{Role: RoleLearner, Text: "Hi", CreatedAt: time.Now().UTC().Truncate(time.Second)},
		},
		Checkpoints: []Checkpoint{{StepIndex: 0, HistoryLen: 0}},
	}
	if err := repo.Save(ctx, sess); err != nil {
		t.Fatalf("save: %v", err)
	}
	if sess.Version != 1 {
		t.Errorf("version after first save = %d, want 1", sess.Version)
	}

	got, err := repo.Load(ctx, "learner-1", "lesson-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.CurrentStep != 2 {
		t.Errorf("current step = %d, want 2", got.CurrentStep)
	}
	if got.PendingQuestion == nil || *got.PendingQuestion != 1 {
		t.Errorf("pending question = %v, want 1", got.PendingQuestion)
	}
	if len(got.History) != 2 || got.History[0].Role != RoleTutor {
		t.Errorf("history = %+v", got.History)
	}
	if len(got.Checkpoints) != 1 {
		t.Errorf("checkpoints = %+v", got.Checkpoints)
	}
	if got.Version != 1 {
		t.Errorf("loaded version = %d, want 1", got.Version)
	}
}

func TestSessionSaveConflict(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	first := &Session{LearnerID: "learner-1", LessonID: "lesson-1"}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("save first: %v", err)
	}

	// Two readers load the same version, both try to save.
	a, _ := repo.Load(ctx, "learner-1", "lesson-1")
	b, _ := repo.Load(ctx, "learner-1", "lesson-1")

	a.CurrentStep = 1
	if err := repo.Save(ctx, a); err != nil {
		t.Fatalf("save a: %v", err)
	}

	b.CurrentStep = 2
	err := repo.Save(ctx, b)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("save b = %v, want ErrConflict", err)
	}

	got, _ := repo.Load(ctx, "learner-1", "lesson-1")
	if got.CurrentStep != 1 {
		t.Errorf("current step = %d, want 1 (a's write)", got.CurrentStep)
	}
}

func TestSessionCreateConflict(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	a := &Session{LearnerID: "learner-1", LessonID: "lesson-1"}
	b := &Session{LearnerID: "learner-1", LessonID: "lesson-1"}

	if err := repo.Save(ctx, a); err != nil {
		t.Fatalf("save a: %v", err)
	}
	err := repo.Save(ctx, b)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("save b = %v, want ErrConflict", err)
	}
}

func TestSessionFreshKeepsVersion(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	sess := &Session{LearnerID: "learner-1", LessonID: "lesson-1", CurrentStep: 3}
	if err := repo.Save(ctx, sess); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, _ := repo.Load(ctx, "learner-1", "lesson-1")
	reset := loaded.Fresh()
	if reset.Version != loaded.Version {
		t.Fatalf("fresh version = %d, want %d", reset.Version, loaded.Version)
	}
	if err := repo.Save(ctx, reset); err != nil {
		t.Fatalf("save reset: %v", err)
	}

	got, _ := repo.Load(ctx, "learner-1", "lesson-1")
	if got.CurrentStep != 0 || len(got.History) != 0 {
		t.Errorf("reset session = %+v, want empty", got)
	}
}

func TestLessonPutGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.LessonRepo()
	ctx := context.Background()

	l := &Lesson{
		ID:        "lesson-1",
		CourseID:  "course-1",
		Title:     "Photosynthesis",
		Chapter:   1,
		RawScript: "# Photosynthesis\n...",
		Script:    testScript(t),
	}
	if err := repo.Put(ctx, l); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := repo.Get(ctx, "lesson-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Photosynthesis" || got.Chapter != 1 {
		t.Errorf("lesson = %+v", got)
	}
	if got.Script.Len() != 3 {
		t.Errorf("script len = %d, want 3", got.Script.Len())
	}
	step, err := got.Script.StepAt(1)
	if err != nil {
		t.Fatalf("step at 1: %v", err)
	}
	if step.Kind != script.KindQuestionMCQ || step.CorrectKey != "A" {
		t.Errorf("step 1 = %+v", step)
	}
	if len(step.Options) != 2 || step.Options[0].Key != "A" {
		t.Errorf("options = %+v", step.Options)
	}
}

func TestLessonGetMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.LessonRepo().Get(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("get = %v, want ErrNotFound", err)
	}
}

func TestLessonPutReplaces(t *testing.T) {
	s := openTestStore(t)
	repo := s.LessonRepo()
	ctx := context.Background()

	l := &Lesson{ID: "lesson-1", CourseID: "course-1", Title: "v1", Chapter: 1,
		RawScript: "v1", Script: testScript(t)}
	if err := repo.Put(ctx, l); err != nil {
		t.Fatalf("put v1: %v", err)
	}
	l.Title = "v2"
	if err := repo.Put(ctx, l); err != nil {
		t.Fatalf("put v2: %v", err)
	}

	got, _ := repo.Get(ctx, "lesson-1")
	if got.Title != "v2" {
		t.Errorf("title = %q, want v2", got.Title)
	}
	n, _ := repo.ChapterCount(ctx, "course-1")
	if n != 1 {
		t.Errorf("chapter count = %d, want 1", n)
	}
}

func TestLessonChapterNumbering(t *testing.T) {
	s := openTestStore(t)
	repo := s.LessonRepo()
	ctx := context.Background()

	next, err := repo.NextChapterNumber(ctx, "course-1")
	if err != nil {
		t.Fatalf("next (empty): %v", err)
	}
	if next != 1 {
		t.Errorf("next chapter in empty course = %d, want 1", next)
	}

	for i := 1; i <= 2; i++ {
		l := &Lesson{ID: "lesson-" + string(rune('0'+i)), CourseID: "course-1",
			Title: "Ch", Chapter: i, RawScript: "x", Script: testScript(t)}
		if err := repo.Put(ctx, l); err != nil {
			t.Fatalf("put chapter %d: %v", i, err)
		}
	}

	next, _ = repo.NextChapterNumber(ctx, "course-1")
	if next != 3 {
		t.Errorf("next chapter = %d, want 3", next)
	}

	got, err := repo.ByChapter(ctx, "course-1", 2)
	if err != nil {
		t.Fatalf("by chapter: %v", err)
	}
	if got.ID != "lesson-2" {
		t.Errorf("chapter 2 lesson = %s", got.ID)
	}

	if _, err := repo.ByChapter(ctx, "course-1", 9); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing chapter = %v, want ErrNotFound", err)
	}
}

func TestCourseEnsureIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.CourseRepo()
	ctx := context.Background()

	c := &Course{ID: "course-1", Title: "Biology", Published: true}
	if err := repo.Ensure(ctx, c); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if err := repo.Ensure(ctx, c); err != nil {
		t.Fatalf("ensure again: %v", err)
	}

	got, err := repo.Get(ctx, "course-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Biology" || !got.Published {
		t.Errorf("course = %+v", got)
	}
}

func TestEnrollmentRecordCompletion(t *testing.T) {
	s := openTestStore(t)
	repo := s.EnrollmentRepo()
	ctx := context.Background()

	// Completing chapter 1 of 3 creates the enrollment.
	e, err := repo.RecordCompletion(ctx, "learner-1", "course-1", 1, 3)
	if err != nil {
		t.Fatalf("record 1: %v", err)
	}
	if e.LastCompletedChapter != 1 || e.CompletedAt != nil {
		t.Errorf("enrollment = %+v", e)
	}

	// Repeating an earlier chapter never moves progress backwards.
	e, err = repo.RecordCompletion(ctx, "learner-1", "course-1", 1, 3)
	if err != nil {
		t.Fatalf("record 1 again: %v", err)
	}
	if e.LastCompletedChapter != 1 {
		t.Errorf("last completed = %d, want 1", e.LastCompletedChapter)
	}

	e, err = repo.RecordCompletion(ctx, "learner-1", "course-1", 3, 3)
	if err != nil {
		t.Fatalf("record 3: %v", err)
	}
	if e.LastCompletedChapter != 3 {
		t.Errorf("last completed = %d, want 3", e.LastCompletedChapter)
	}
	if e.CompletedAt == nil {
		t.Error("completing the last chapter should stamp CompletedAt")
	}

	e, err = repo.RecordCompletion(ctx, "learner-1", "course-1", 2, 3)
	if err != nil {
		t.Fatalf("record 2 after 3: %v", err)
	}
	if e.LastCompletedChapter != 3 {
		t.Errorf("last completed = %d, want 3 (no backwards)", e.LastCompletedChapter)
	}
}

func TestEnrollmentGetMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.EnrollmentRepo().Get(context.Background(), "learner-1", "course-1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("get = %v, want ErrNotFound", err)
	}
}

func TestEventAppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock-model",
			Purpose:      "tutor",
			InputTokens:  10,
			OutputTokens: 20,
			LatencyMs:    5,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	rows, err := s.Client().LLMRequestEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("events = %d, want 3", len(rows))
	}
	// Sequence numbers are globally monotonic.
	seen := map[int64]bool{}
	for _, r := range rows {
		if seen[r.Sequence] {
			t.Errorf("duplicate sequence %d", r.Sequence)
		}
		seen[r.Sequence] = true
	}
}
