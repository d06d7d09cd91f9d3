package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/coursewell/coursewell/internal/llm"
	"github.com/coursewell/coursewell/internal/store"
)

// Service implements Gateway on an llm.Provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a tutor gateway backed by the given provider.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

func (s *Service) DeliverContent(ctx context.Context, text string, history []store.Turn) (string, error) {
	resp, err := s.generate(ctx, "tutor", contentSystemPrompt, history, buildContentUserMessage(text), nil)
	if err != nil {
		return "", fmt.Errorf("deliver content: %w", err)
	}
	return resp.Text(), nil
}

func (s *Service) DescribeMedia(ctx context.Context, altText string, history []store.Turn) (string, error) {
	resp, err := s.generate(ctx, "tutor", mediaSystemPrompt, history, buildMediaUserMessage(altText), nil)
	if err != nil {
		return "", fmt.Errorf("describe media: %w", err)
	}
	return resp.Text(), nil
}

func (s *Service) Hint(ctx context.Context, lessonContext string) (string, error) {
	resp, err := s.generate(ctx, "tutor", hintSystemPrompt, nil, buildHintUserMessage(lessonContext), nil)
	if err != nil {
		return "", fmt.Errorf("hint: %w", err)
	}
	return resp.Text(), nil
}

type gradeOutput struct {
	Verdict  string `json:"verdict"`
	Feedback string `json:"feedback"`
}

func (s *Service) GradeShortAnswer(ctx context.Context, keywords []string, answer string) (*Grade, error) {
	resp, err := s.generate(ctx, "grade", graderSystemPrompt, nil, buildGraderUserMessage(keywords, answer), GradeSchema)
	if err != nil {
		return nil, fmt.Errorf("grade short answer: %w", err)
	}

	var out gradeOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse grade response: %w", err)
	}
	return &Grade{
		Correct:  strings.EqualFold(out.Verdict, "CORRECT"),
		Feedback: out.Feedback,
	}, nil
}

func (s *Service) AnswerQuestion(ctx context.Context, lessonContext, question string, history []store.Turn) (string, error) {
	resp, err := s.generate(ctx, "qna", qnaSystemPrompt, history, buildQnaUserMessage(lessonContext, question), nil)
	if err != nil {
		return "", fmt.Errorf("answer question: %w", err)
	}
	return resp.Text(), nil
}

func (s *Service) generate(ctx context.Context, purpose, system string, history []store.Turn, userMsg string, schema *llm.Schema) (*llm.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()
	ctx = llm.WithPurpose(ctx, purpose)

	messages := historyToMessages(history)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: userMsg})

	return s.provider.Generate(ctx, llm.Request{
		System:      system,
		Messages:    messages,
		Schema:      schema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
}

// historyToMessages maps session turns onto provider roles so the model
// keeps its conversational register across a lesson.
func historyToMessages(history []store.Turn) []llm.Message {
	msgs := make([]llm.Message, 0, len(history)+1)
	for _, t := range history {
		role := llm.RoleAssistant
		if t.Role == store.RoleLearner {
			role = llm.RoleUser
		}
		msgs = append(msgs, llm.Message{Role: role, Content: t.Text})
	}
	return msgs
}
