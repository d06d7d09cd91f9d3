package tutor

import (
	"context"

	"github.com/coursewell/coursewell/internal/store"
)

// Gateway is the opaque boundary to the tutoring model. Each method is
// one generation call; the dispatcher treats the wording as a black box
// and only relies on the structural contract (a string back, or a grade).
type Gateway interface {
	// DeliverContent rephrases authored lesson text into a
	// conversational tutor turn, keeping strictly to the text.
	DeliverContent(ctx context.Context, text string, history []store.Turn) (string, error)

	// DescribeMedia produces a short turn calling the learner's
	// attention to an image that was just shown, from its alt text.
	DescribeMedia(ctx context.Context, altText string, history []store.Turn) (string, error)

	// Hint produces a Socratic hint for a learner who answered
	// incorrectly, grounded only in the given lesson context.
	Hint(ctx context.Context, lessonContext string) (string, error)

	// GradeShortAnswer judges a free-text answer against the required
	// keywords and returns a verdict with feedback for the learner.
	GradeShortAnswer(ctx context.Context, keywords []string, answer string) (*Grade, error)

	// AnswerQuestion answers a learner's side question using only the
	// given lesson context, declining questions it cannot cover.
	AnswerQuestion(ctx context.Context, lessonContext, question string, history []store.Turn) (string, error)
}

// Grade is the outcome of grading a short answer. Correct does not gate
// progression; it only selects the tone of the recorded feedback.
type Grade struct {
	Correct  bool
	Feedback string
}
