package llm

import (
	"context"
	"errors"
	"testing"
)

// captureEventRepo records appended events for inspection.
type captureEventRepo struct {
	events []LLMRequestEventData
	err    error
}

func (c *captureEventRepo) AppendLLMRequest(_ context.Context, data LLMRequestEventData) error {
	c.events = append(c.events, data)
	return c.err
}

func TestLoggingRecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: []byte(`"hello"`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 7},
	})
	repo := &captureEventRepo{}
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "tutor")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if !ev.Success {
		t.Error("expected success event")
	}
	if ev.Purpose != "tutor" {
		t.Errorf("purpose = %q", ev.Purpose)
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 7 {
		t.Errorf("tokens = %d/%d", ev.InputTokens, ev.OutputTokens)
	}
	if ev.Model != "mock" {
		t.Errorf("model = %q", ev.Model)
	}
}

func TestLoggingRecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: errors.New("boom")})
	repo := &captureEventRepo{}
	p := WithLogging(mock, repo)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Error("expected failure event")
	}
	if ev.ErrorMessage == "" {
		t.Error("expected error message to be recorded")
	}
	if ev.Purpose != "unknown" {
		t.Errorf("purpose = %q, want unknown without WithPurpose", ev.Purpose)
	}
}

func TestLoggingErrorDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: []byte(`"ok"`)})
	repo := &captureEventRepo{err: errors.New("db down")}
	p := WithLogging(mock, repo)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("generate should not fail on logging errors: %v", err)
	}
	if resp.Text() != `"ok"` {
		t.Errorf("text = %q", resp.Text())
	}
}
