package script

import (
	"fmt"
	"strings"
)

// Kind identifies what a lesson step asks of the learner.
type Kind string

const (
	KindContent     Kind = "CONTENT"
	KindMedia       Kind = "MEDIA"
	KindQuestionMCQ Kind = "QUESTION_MCQ"
	KindQuestionSA  Kind = "QUESTION_SA"
	KindEnd         Kind = "END"
)

// Option is one answer choice of a multiple-choice question.
// Options are kept as a slice to preserve authored order.
type Option struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// Step is one authored unit of a lesson. Steps are immutable once a
// lesson is published; the engine consumes them read-only.
type Step struct {
	Index int  `json:"index"`
	Kind  Kind `json:"kind"`

	// CONTENT
	Text string `json:"text,omitempty"`

	// MEDIA
	AltText  string `json:"alt_text,omitempty"`
	MediaURL string `json:"media_url,omitempty"`

	// QUESTION_MCQ / QUESTION_SA
	Question   string   `json:"question,omitempty"`
	Options    []Option `json:"options,omitempty"`
	CorrectKey string   `json:"correct_key,omitempty"`
	Keywords   []string `json:"keywords,omitempty"`
}

// IsQuestion reports whether the step awaits a learner answer.
func (s Step) IsQuestion() bool {
	return s.Kind == KindQuestionMCQ || s.Kind == KindQuestionSA
}

// ErrStepNotFound is returned by StepAt for an index outside the script.
type ErrStepNotFound struct {
	Index int
	Len   int
}

func (e *ErrStepNotFound) Error() string {
	return fmt.Sprintf("no step at index %d (script has %d steps)", e.Index, e.Len)
}

// Script is the ordered, immutable step sequence of one lesson.
// A valid script ends with exactly one END step.
type Script struct {
	steps []Step
}

// New builds a Script from steps, re-stamping indices to sequence
// position and validating the END invariant.
func New(steps []Step) (*Script, error) {
	copied := make([]Step, len(steps))
	copy(copied, steps)
	for i := range copied {
		copied[i].Index = i
	}
	s := &Script{steps: copied}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Script) validate() error {
	if len(s.steps) == 0 {
		return fmt.Errorf("script has no steps")
	}
	for i, st := range s.steps {
		if st.Kind == KindEnd && i != len(s.steps)-1 {
			return fmt.Errorf("END step at index %d is not terminal", i)
		}
	}
	if last := s.steps[len(s.steps)-1]; last.Kind != KindEnd {
		return fmt.Errorf("script does not end with an END step (got %s)", last.Kind)
	}
	return nil
}

// Len returns the number of steps including the terminal END.
func (s *Script) Len() int {
	return len(s.steps)
}

// StepAt returns the step at index, or ErrStepNotFound when index is
// out of range (negative or beyond END).
func (s *Script) StepAt(index int) (Step, error) {
	if index < 0 || index >= len(s.steps) {
		return Step{}, &ErrStepNotFound{Index: index, Len: len(s.steps)}
	}
	return s.steps[index], nil
}

// EndIndex returns the index of the terminal END step.
func (s *Script) EndIndex() int {
	return len(s.steps) - 1
}

// Clamp guards a step pointer captured against an older revision of
// this lesson. Pointers beyond the current script land on END; negative
// pointers restart at 0.
func (s *Script) Clamp(index int) int {
	if index < 0 {
		return 0
	}
	if index > s.EndIndex() {
		return s.EndIndex()
	}
	return index
}

// Steps returns a copy of the full step sequence.
func (s *Script) Steps() []Step {
	out := make([]Step, len(s.steps))
	copy(out, s.steps)
	return out
}

// ContentBefore concatenates the text of all CONTENT steps with index
// strictly below bound. This is the context window handed to the tutor
// for side questions: only material already covered.
func (s *Script) ContentBefore(bound int) []string {
	var out []string
	for _, st := range s.steps {
		if st.Index >= bound {
			break
		}
		if st.Kind == KindContent && st.Text != "" {
			out = append(out, st.Text)
		}
	}
	return out
}

// OptionByKey looks up an MCQ option by its key, case-insensitively.
func (s Step) OptionByKey(key string) (Option, bool) {
	for _, o := range s.Options {
		if strings.EqualFold(o.Key, key) {
			return o, true
		}
	}
	return Option{}, false
}
