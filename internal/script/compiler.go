package script

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/coursewell/coursewell/internal/llm"
)

// Config holds script compilation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for script compilation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0,
	}
}

// Compiler converts an authored lesson script into an ordered Step
// sequence. The heavy lifting (recognizing text runs, [IMAGE: alt="…"]
// tags and question blocks) is delegated to the LLM with a strict
// output schema; the compiler normalizes and validates the result.
type Compiler struct {
	provider llm.Provider
	cfg      Config
}

// NewCompiler creates a script compiler backed by the given provider.
func NewCompiler(provider llm.Provider, cfg Config) *Compiler {
	return &Compiler{provider: provider, cfg: cfg}
}

type compiledSteps struct {
	Steps []compiledStep `json:"steps"`
}

type compiledStep struct {
	Type          string         `json:"type"`
	Text          string         `json:"text,omitempty"`
	AltText       string         `json:"alt_text,omitempty"`
	Question      string         `json:"question,omitempty"`
	Options       []compiledOpt  `json:"options,omitempty"`
	CorrectAnswer string         `json:"correct_answer,omitempty"`
	Keywords      json.RawMessage `json:"keywords,omitempty"`
}

type compiledOpt struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// Compile parses raw authored markup into a validated Script.
// The terminal END step is appended here; authors never write it.
func (c *Compiler) Compile(ctx context.Context, raw string) (*Script, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("empty lesson script")
	}

	ctx = llm.WithPurpose(ctx, "script-compile")

	req := llm.Request{
		System: parserSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: raw},
		},
		Schema:      StepsSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("script compilation: %w", err)
	}

	var out compiledSteps
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse compiler response: %w", err)
	}
	if len(out.Steps) == 0 {
		return nil, fmt.Errorf("compiler produced no steps")
	}

	steps := make([]Step, 0, len(out.Steps)+1)
	for i, cs := range out.Steps {
		step, err := normalizeStep(cs)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		steps = append(steps, step)
	}
	steps = append(steps, Step{Kind: KindEnd})

	return New(steps)
}

func normalizeStep(cs compiledStep) (Step, error) {
	switch Kind(cs.Type) {
	case KindContent:
		if strings.TrimSpace(cs.Text) == "" {
			return Step{}, fmt.Errorf("CONTENT step with empty text")
		}
		return Step{Kind: KindContent, Text: cs.Text}, nil

	case KindMedia:
		return Step{Kind: KindMedia, AltText: cs.AltText}, nil

	case KindQuestionMCQ:
		if cs.Question == "" {
			return Step{}, fmt.Errorf("MCQ step with empty question")
		}
		if len(cs.Options) < 2 {
			return Step{}, fmt.Errorf("MCQ step needs at least 2 options, got %d", len(cs.Options))
		}
		opts := make([]Option, len(cs.Options))
		for i, o := range cs.Options {
			opts[i] = Option{Key: strings.ToUpper(strings.TrimSpace(o.Key)), Text: o.Text}
		}
		correct := strings.ToUpper(strings.TrimSpace(cs.CorrectAnswer))
		step := Step{Kind: KindQuestionMCQ, Question: cs.Question, Options: opts, CorrectKey: correct}
		if _, ok := step.OptionByKey(correct); !ok {
			return Step{}, fmt.Errorf("MCQ correct answer %q is not an option key", cs.CorrectAnswer)
		}
		return step, nil

	case KindQuestionSA:
		if cs.Question == "" {
			return Step{}, fmt.Errorf("short-answer step with empty question")
		}
		kw, err := normalizeKeywords(cs.Keywords)
		if err != nil {
			return Step{}, err
		}
		if len(kw) == 0 {
			return Step{}, fmt.Errorf("short-answer step with no keywords")
		}
		return Step{Kind: KindQuestionSA, Question: cs.Question, Keywords: kw}, nil

	default:
		return Step{}, fmt.Errorf("unknown step type %q", cs.Type)
	}
}

// normalizeKeywords accepts either a JSON array of strings or a single
// comma-separated string. Models occasionally emit the latter.
func normalizeKeywords(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return trimNonEmpty(list), nil
	}

	var joined string
	if err := json.Unmarshal(raw, &joined); err == nil {
		return trimNonEmpty(strings.Split(joined, ",")), nil
	}

	return nil, fmt.Errorf("keywords are neither a string array nor a string: %s", raw)
}

func trimNonEmpty(in []string) []string {
	var out []string
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
