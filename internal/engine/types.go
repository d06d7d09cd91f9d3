package engine

import "github.com/coursewell/coursewell/internal/script"

// RequestKind routes a dispatch between advancing the lesson and
// answering a side question.
type RequestKind string

const (
	// LessonFlow advances the lesson or answers a pending question.
	LessonFlow RequestKind = "LESSON_FLOW"

	// Qna asks the tutor a free-form question without touching the
	// lesson pointer.
	Qna RequestKind = "QNA"
)

// Request is one dispatch against a (learner, lesson) session.
type Request struct {
	LearnerID string
	LessonID  string
	Kind      RequestKind

	// Input is the learner's text. Nil, empty, and "Continue" are bare
	// advances when no question is pending; while a question is pending
	// the input is the literal answer.
	Input *string
}

// ResponseKind tags what a dispatch produced, so the client renders the
// next interaction without sniffing field presence.
type ResponseKind string

const (
	// Delivering carries a content or media turn; when AutoContinue is
	// set the client should immediately issue the next bare advance.
	Delivering ResponseKind = "DELIVERING"

	// AwaitingAnswer carries a question; the session will not advance
	// until it is answered.
	AwaitingAnswer ResponseKind = "AWAITING_ANSWER"

	// QnaAnswered carries the tutor's answer to a side question.
	QnaAnswered ResponseKind = "QNA_ANSWERED"

	// LessonEnded marks the terminal step, with the follow-up actions.
	LessonEnded ResponseKind = "LESSON_ENDED"
)

// Question is the payload the client needs to render a pending
// question. The correct key never leaves the engine.
type Question struct {
	Type     script.Kind
	Question string
	Options  []script.Option
}

// Response is the tagged result of one dispatch.
type Response struct {
	Kind ResponseKind

	// TutorText is the delivered content, media call-out, QNA answer,
	// or end-of-lesson message.
	TutorText string

	// Feedback is the grading feedback for an answered question.
	Feedback string

	// MediaURL accompanies a delivered MEDIA step.
	MediaURL string

	// Question is set when Kind is AwaitingAnswer.
	Question *Question

	// AutoContinue signals that the next step is content and should be
	// pulled without learner input.
	AutoContinue bool

	// End-of-lesson actions, at most one set.
	NextChapterURL string
	CertificateURL string
}
