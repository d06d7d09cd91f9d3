package tutor

import "github.com/coursewell/coursewell/internal/llm"

// GradeSchema defines the JSON schema for short-answer grading.
var GradeSchema = &llm.Schema{
	Name:        "short-answer-grade",
	Description: "Verdict and learner-facing feedback for a graded short answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"verdict": map[string]any{
				"type": "string",
				"enum": []any{"CORRECT", "INCORRECT"},
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One or two sentences of feedback addressed to the student",
			},
		},
		"required":             []any{"verdict", "feedback"},
		"additionalProperties": false,
	},
}
