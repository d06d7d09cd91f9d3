package store

import (
	"context"
	"errors"
	"time"

	"github.com/coursewell/coursewell/internal/llm"
	"github.com/coursewell/coursewell/internal/script"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a conditional save loses a concurrent
// read-modify-write race. Callers should reload and retry or reject.
var ErrConflict = errors.New("version conflict")

// Turn roles.
const (
	RoleLearner = "learner"
	RoleTutor   = "tutor"
)

// Turn is one utterance in a session's history.
type Turn struct {
	Role      string
	Text      string
	CreatedAt time.Time
}

// Checkpoint is the pre-transition (pointer, pending question, history
// length) snapshot recorded by a dispatch round, enabling exact undo.
type Checkpoint struct {
	StepIndex       int
	PendingQuestion *int
	HistoryLen      int
}

// Session is the mutable conversation state for one (learner, lesson)
// pair. Version 0 means the session has never been persisted.
type Session struct {
	LearnerID       string
	LessonID        string
	CurrentStep     int
	PendingQuestion *int
	History         []Turn
	Checkpoints     []Checkpoint
	Version         int64
}

// Fresh returns an empty session for the given pair, ready to persist.
// The returned session keeps the version of the record it replaces so a
// conditional save still detects concurrent writers.
func (s *Session) Fresh() *Session {
	return &Session{
		LearnerID: s.LearnerID,
		LessonID:  s.LessonID,
		Version:   s.Version,
	}
}

// SessionRepo persists chat sessions. Save is a conditional full
// replace: it succeeds only when the stored version still matches the
// loaded one, returning ErrConflict otherwise. This is the per-key
// serialization mechanism for the whole engine.
type SessionRepo interface {
	// Load returns the session for the pair, or a fresh unsaved one
	// (Version 0) when none exists yet.
	Load(ctx context.Context, learnerID, lessonID string) (*Session, error)

	// Save atomically replaces the stored record, guarded by version.
	// On success the session's Version is bumped in place.
	Save(ctx context.Context, s *Session) error

	// Exists reports whether a persisted session exists for the pair.
	Exists(ctx context.Context, learnerID, lessonID string) (bool, error)
}

// Lesson is one published chapter with its compiled script.
type Lesson struct {
	ID        string
	CourseID  string
	Title     string
	Chapter   int
	RawScript string
	Script    *script.Script
}

// LessonRepo provides read access for the engine and write access for
// the authoring pipeline (compile command).
type LessonRepo interface {
	// Get returns the lesson by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Lesson, error)

	// Put creates or fully replaces a lesson.
	Put(ctx context.Context, l *Lesson) error

	// NextChapterNumber returns 1 + the highest chapter number in the
	// course (1 for an empty course).
	NextChapterNumber(ctx context.Context, courseID string) (int, error)

	// ByChapter returns the course's lesson at the given chapter
	// number, or ErrNotFound.
	ByChapter(ctx context.Context, courseID string, chapter int) (*Lesson, error)

	// ChapterCount returns the number of lessons in the course.
	ChapterCount(ctx context.Context, courseID string) (int, error)
}

// Course is the minimal course record the engine needs.
type Course struct {
	ID        string
	Title     string
	Published bool
}

// CourseRepo manages course records for the authoring commands.
type CourseRepo interface {
	// Get returns the course by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Course, error)

	// Ensure creates the course if it does not exist yet.
	Ensure(ctx context.Context, c *Course) error
}

// Enrollment tracks a learner's progress through a course.
type Enrollment struct {
	LearnerID            string
	CourseID             string
	LastCompletedChapter int
	CompletedAt          *time.Time
}

// EnrollmentRepo records course progress for end-of-lesson actions.
type EnrollmentRepo interface {
	// Get returns the enrollment, or ErrNotFound.
	Get(ctx context.Context, learnerID, courseID string) (*Enrollment, error)

	// RecordCompletion marks chapter as completed for the learner,
	// creating the enrollment when needed. Progress never moves
	// backwards. When the completed chapter is the course's last,
	// CompletedAt is stamped. Returns the updated enrollment.
	RecordCompletion(ctx context.Context, learnerID, courseID string, chapter, totalChapters int) (*Enrollment, error)
}

// LLMRequestEventData captures a single LLM API call. Defined in the
// llm package so the logging decorator does not import the store.
type LLMRequestEventData = llm.LLMRequestEventData

// EventRepo provides append access to domain events.
type EventRepo = llm.EventRepo
