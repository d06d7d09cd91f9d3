package script

import (
	"errors"
	"testing"
)

func sampleSteps() []Step {
	return []Step{
		{Kind: KindContent, Text: "Plants make food from sunlight."},
		{Kind: KindMedia, AltText: "A leaf in the sun", MediaURL: "https://example.com/leaf.png"},
		{Kind: KindContent, Text: "This process is called photosynthesis."},
		{
			Kind:       KindQuestionMCQ,
			Question:   "What do plants use to make food?",
			Options:    []Option{{Key: "A", Text: "Moonlight"}, {Key: "B", Text: "Sunlight"}},
			CorrectKey: "B",
		},
		{Kind: KindEnd},
	}
}

func TestNewRestampsIndices(t *testing.T) {
	steps := sampleSteps()
	// Authored indices are untrusted input.
	steps[0].Index = 99
	steps[2].Index = -3

	s, err := New(steps)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	for i, st := range s.Steps() {
		if st.Index != i {
			t.Errorf("step %d has index %d", i, st.Index)
		}
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name  string
		steps []Step
	}{
		{"empty", nil},
		{"missing END", []Step{{Kind: KindContent, Text: "hi"}}},
		{"END not terminal", []Step{{Kind: KindEnd}, {Kind: KindContent, Text: "hi"}, {Kind: KindEnd}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.steps); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestStepAt(t *testing.T) {
	s, err := New(sampleSteps())
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	step, err := s.StepAt(3)
	if err != nil {
		t.Fatalf("step at 3: %v", err)
	}
	if step.Kind != KindQuestionMCQ {
		t.Errorf("kind = %s", step.Kind)
	}

	for _, idx := range []int{-1, s.Len()} {
		_, err := s.StepAt(idx)
		var notFound *ErrStepNotFound
		if !errors.As(err, &notFound) {
			t.Errorf("StepAt(%d) = %v, want ErrStepNotFound", idx, err)
		}
	}
}

func TestClamp(t *testing.T) {
	s, err := New(sampleSteps())
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if got := s.Clamp(-5); got != 0 {
		t.Errorf("Clamp(-5) = %d", got)
	}
	if got := s.Clamp(2); got != 2 {
		t.Errorf("Clamp(2) = %d", got)
	}
	if got := s.Clamp(100); got != s.EndIndex() {
		t.Errorf("Clamp(100) = %d, want %d", got, s.EndIndex())
	}
}

func TestContentBefore(t *testing.T) {
	s, err := New(sampleSteps())
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if got := s.ContentBefore(0); len(got) != 0 {
		t.Errorf("ContentBefore(0) = %v", got)
	}

	// MEDIA at index 1 must not appear in the context window.
	got := s.ContentBefore(3)
	want := []string{"Plants make food from sunlight.", "This process is called photosynthesis."}
	if len(got) != len(want) {
		t.Fatalf("ContentBefore(3) = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ContentBefore(3)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestOptionByKey(t *testing.T) {
	step := sampleSteps()[3]

	if _, ok := step.OptionByKey("b"); !ok {
		t.Error("lookup should be case-insensitive")
	}
	if _, ok := step.OptionByKey("Z"); ok {
		t.Error("unknown key should not match")
	}
}

func TestIsQuestion(t *testing.T) {
	if !(Step{Kind: KindQuestionMCQ}).IsQuestion() {
		t.Error("MCQ is a question")
	}
	if !(Step{Kind: KindQuestionSA}).IsQuestion() {
		t.Error("short answer is a question")
	}
	if (Step{Kind: KindContent}).IsQuestion() {
		t.Error("CONTENT is not a question")
	}
	if (Step{Kind: KindEnd}).IsQuestion() {
		t.Error("END is not a question")
	}
}
