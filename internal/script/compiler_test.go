package script

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/coursewell/coursewell/internal/llm"
)

func compiledJSON(t *testing.T, steps []compiledStep) []byte {
	t.Helper()
	raw, err := json.Marshal(compiledSteps{Steps: steps})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return raw
}

func TestCompileBuildsScript(t *testing.T) {
	raw := compiledJSON(t, []compiledStep{
		{Type: "CONTENT", Text: "Water boils at 100C."},
		{Type: "MEDIA", AltText: "A boiling kettle"},
		{
			Type:          "QUESTION_MCQ",
			Question:      "At what temperature does water boil?",
			Options:       []compiledOpt{{Key: "a", Text: "50C"}, {Key: "b", Text: "100C"}},
			CorrectAnswer: "b",
		},
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	c := NewCompiler(mock, DefaultConfig())

	s, err := c.Compile(context.Background(), "Water boils at 100C. [IMAGE: alt=\"A boiling kettle\"] ...")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	// Terminal END is appended by the compiler.
	if s.Len() != 4 {
		t.Fatalf("len = %d, want 4", s.Len())
	}
	last, _ := s.StepAt(3)
	if last.Kind != KindEnd {
		t.Errorf("last step = %s, want END", last.Kind)
	}

	mcq, _ := s.StepAt(2)
	if mcq.CorrectKey != "B" {
		t.Errorf("correct key = %q, want upper-cased B", mcq.CorrectKey)
	}
	if mcq.Options[0].Key != "A" || mcq.Options[1].Key != "B" {
		t.Errorf("option keys = %q, %q", mcq.Options[0].Key, mcq.Options[1].Key)
	}
}

func TestCompileRequestShape(t *testing.T) {
	raw := compiledJSON(t, []compiledStep{{Type: "CONTENT", Text: "hi"}})
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	c := NewCompiler(mock, DefaultConfig())

	if _, err := c.Compile(context.Background(), "hi"); err != nil {
		t.Fatalf("compile: %v", err)
	}

	req := mock.LastCall()
	if req.Schema == nil || req.Schema.Name != "lesson-steps" {
		t.Errorf("schema = %+v", req.Schema)
	}
	if req.System == "" {
		t.Error("system prompt not set")
	}
	if len(req.Messages) != 1 || req.Messages[0].Content != "hi" {
		t.Errorf("messages = %+v", req.Messages)
	}
}

func TestCompileEmptyInput(t *testing.T) {
	c := NewCompiler(llm.NewMockProvider(), DefaultConfig())
	if _, err := c.Compile(context.Background(), "   \n "); err == nil {
		t.Error("expected error for blank script")
	}
}

func TestCompileKeywordsAsCommaString(t *testing.T) {
	raw := compiledJSON(t, []compiledStep{
		{
			Type:     "QUESTION_SA",
			Question: "Why do leaves look green?",
			Keywords: json.RawMessage(`"chlorophyll, reflects green , absorbs red"`),
		},
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	c := NewCompiler(mock, DefaultConfig())

	s, err := c.Compile(context.Background(), "leaves")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	sa, _ := s.StepAt(0)
	want := []string{"chlorophyll", "reflects green", "absorbs red"}
	if len(sa.Keywords) != len(want) {
		t.Fatalf("keywords = %v", sa.Keywords)
	}
	for i := range want {
		if sa.Keywords[i] != want[i] {
			t.Errorf("keyword %d = %q, want %q", i, sa.Keywords[i], want[i])
		}
	}
}

func TestCompileRejectsInvalidSteps(t *testing.T) {
	tests := []struct {
		name string
		step compiledStep
	}{
		{"empty content", compiledStep{Type: "CONTENT", Text: "  "}},
		{"unknown type", compiledStep{Type: "QUIZ"}},
		{"MCQ one option", compiledStep{
			Type: "QUESTION_MCQ", Question: "?",
			Options: []compiledOpt{{Key: "A", Text: "x"}}, CorrectAnswer: "A",
		}},
		{"MCQ bad correct key", compiledStep{
			Type: "QUESTION_MCQ", Question: "?",
			Options:       []compiledOpt{{Key: "A", Text: "x"}, {Key: "B", Text: "y"}},
			CorrectAnswer: "C",
		}},
		{"SA no keywords", compiledStep{Type: "QUESTION_SA", Question: "?"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{
				Content: compiledJSON(t, []compiledStep{tt.step}),
			})
			c := NewCompiler(mock, DefaultConfig())
			if _, err := c.Compile(context.Background(), "x"); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestCompileNoSteps(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: []byte(`{"steps":[]}`)})
	c := NewCompiler(mock, DefaultConfig())
	if _, err := c.Compile(context.Background(), "x"); err == nil {
		t.Error("expected error for empty step list")
	}
}
