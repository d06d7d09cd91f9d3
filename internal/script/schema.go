package script

import "github.com/coursewell/coursewell/internal/llm"

// StepsSchema defines the JSON schema for compiled lesson steps.
var StepsSchema = &llm.Schema{
	Name:        "lesson-steps",
	Description: "An ordered sequence of lesson steps parsed from an authored script",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"steps": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type": "string",
							"enum": []any{"CONTENT", "MEDIA", "QUESTION_MCQ", "QUESTION_SA"},
						},
						"text": map[string]any{
							"type":        "string",
							"description": "Explanatory text (CONTENT only)",
						},
						"alt_text": map[string]any{
							"type":        "string",
							"description": "Image description (MEDIA only)",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "Question text (QUESTION_MCQ and QUESTION_SA)",
						},
						"options": map[string]any{
							"type":        "array",
							"description": "Answer choices in authored order (QUESTION_MCQ only)",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"key":  map[string]any{"type": "string"},
									"text": map[string]any{"type": "string"},
								},
								"required":             []any{"key", "text"},
								"additionalProperties": false,
							},
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "Key of the correct option (QUESTION_MCQ only)",
						},
						"keywords": map[string]any{
							"type":        "array",
							"description": "Key concepts a correct answer must contain (QUESTION_SA only)",
							"items":       map[string]any{"type": "string"},
						},
					},
					"required": []any{"type"},
				},
			},
		},
		"required":             []any{"steps"},
		"additionalProperties": false,
	},
}
