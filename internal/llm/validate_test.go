package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func stepsTestSchema() *Schema {
	return &Schema{
		Name:        "test-steps",
		Description: "A test step list",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"steps": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"kind": map[string]any{"type": "string", "enum": []any{"CONTENT", "MEDIA"}},
							"text": map[string]any{"type": "string"},
						},
						"required": []any{"kind"},
					},
				},
			},
			"required": []any{"steps"},
		},
	}
}

func TestValidateResponseValid(t *testing.T) {
	raw := json.RawMessage(`{"steps":[{"kind":"CONTENT","text":"hello"}]}`)
	if err := validateResponse(stepsTestSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponseValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"steps":[{"kind":"MEDIA"}]}`)
	if err := validateResponse(stepsTestSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponseMissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"steps":[{"text":"no kind"}]}`)
	err := validateResponse(stepsTestSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}
}

func TestValidateResponseInvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"steps":[{"kind":"DANCE"}]}`)
	err := validateResponse(stepsTestSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}
}

func TestValidateResponseMalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(stepsTestSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponseSchemaCached(t *testing.T) {
	raw := json.RawMessage(`{"steps":[]}`)
	schema := stepsTestSchema()
	for i := 0; i < 3; i++ {
		if err := validateResponse(schema, raw); err != nil {
			t.Fatalf("pass %d: %v", i, err)
		}
	}
	if _, ok := schemaCache.Load(schema.Name); !ok {
		t.Fatal("compiled schema should be cached by name")
	}
}
