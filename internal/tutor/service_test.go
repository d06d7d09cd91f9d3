package tutor

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/coursewell/coursewell/internal/llm"
	"github.com/coursewell/coursewell/internal/store"
)

func TestDeliverContentCarriesHistory(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("Plants are amazing!")})
	svc := NewService(mock, DefaultConfig())

	history := []store.Turn{
		{Role: store.RoleTutor, Text: "Welcome to the lesson."},
		{Role: store.RoleLearner, Text: "Continue"},
	}
	text, err := svc.DeliverContent(context.Background(), "Plants absorb light.", history)
	if err != nil {
		t.Fatalf("deliver content: %v", err)
	}
	if text != "Plants are amazing!" {
		t.Errorf("text = %q", text)
	}

	req := mock.LastCall()
	if req.System != contentSystemPrompt {
		t.Errorf("system prompt = %q", req.System)
	}
	if len(req.Messages) != 3 {
		t.Fatalf("messages = %d, want history(2) + prompt(1)", len(req.Messages))
	}
	if req.Messages[0].Role != llm.RoleAssistant || req.Messages[1].Role != llm.RoleUser {
		t.Errorf("history roles = %s, %s", req.Messages[0].Role, req.Messages[1].Role)
	}
	if !strings.Contains(req.Messages[2].Content, "Plants absorb light.") {
		t.Errorf("user message missing lesson text: %q", req.Messages[2].Content)
	}
}

func TestGradeShortAnswer(t *testing.T) {
	tests := []struct {
		name     string
		canned   string
		wantPass bool
	}{
		{"correct", `{"verdict":"CORRECT","feedback":"Nice, you named both parts."}`, true},
		{"incorrect", `{"verdict":"INCORRECT","feedback":"You are missing the light part."}`, false},
		{"case insensitive verdict", `{"verdict":"correct","feedback":"ok"}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.canned)})
			svc := NewService(mock, DefaultConfig())

			grade, err := svc.GradeShortAnswer(context.Background(), []string{"light", "energy"}, "plants use light")
			if err != nil {
				t.Fatalf("grade: %v", err)
			}
			if grade.Correct != tt.wantPass {
				t.Errorf("correct = %v, want %v", grade.Correct, tt.wantPass)
			}
			if grade.Feedback == "" {
				t.Error("feedback should not be empty")
			}

			req := mock.LastCall()
			if req.Schema == nil || req.Schema.Name != "short-answer-grade" {
				t.Errorf("schema = %+v, want short-answer-grade", req.Schema)
			}
			if !strings.Contains(req.Messages[0].Content, "light, energy") {
				t.Errorf("grader message missing keywords: %q", req.Messages[0].Content)
			}
		})
	}
}

func TestGradeShortAnswerBadJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("not json")})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.GradeShortAnswer(context.Background(), []string{"x"}, "y"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestAnswerQuestionUsesContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("Chlorophyll absorbs it.")})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.AnswerQuestion(context.Background(), "Plants absorb light.", "What absorbs the light?", nil)
	if err != nil {
		t.Fatalf("answer question: %v", err)
	}

	req := mock.LastCall()
	if req.System != qnaSystemPrompt {
		t.Errorf("system prompt = %q", req.System)
	}
	msg := req.Messages[len(req.Messages)-1].Content
	if !strings.Contains(msg, "Plants absorb light.") || !strings.Contains(msg, "What absorbs the light?") {
		t.Errorf("qna message = %q", msg)
	}
}

func TestAnswerQuestionEmptyContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("I can only answer about covered material.")})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.AnswerQuestion(context.Background(), "", "What is quantum gravity?", nil); err != nil {
		t.Fatalf("answer question: %v", err)
	}
	msg := mock.LastCall().Messages[0].Content
	if !strings.Contains(msg, "No context available yet.") {
		t.Errorf("empty context placeholder missing: %q", msg)
	}
}

func TestHintFallbackContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("Think about what plants take in.")})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Hint(context.Background(), "  "); err != nil {
		t.Fatalf("hint: %v", err)
	}
	msg := mock.LastCall().Messages[0].Content
	if !strings.Contains(msg, "Let's review.") {
		t.Errorf("blank context placeholder missing: %q", msg)
	}
}

func TestGatewayErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue -> provider unavailable
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.DeliverContent(context.Background(), "text", nil); err == nil {
		t.Fatal("expected provider error")
	}
}
