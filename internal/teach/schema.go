package teach

import "github.com/abhisek/languify/internal/llm"

// CritiqueSchema defines the JSON schema for the rating and teaching payload.
var CritiqueSchema = &llm.Schema{
	Name:        "translation-critique",
	Description: "Rating of a Spanish translation with a short lesson and practice drills",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"rating": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"score": map[string]any{
						"type":        "integer",
						"description": "Translation quality from 0 to 100",
					},
					"reasons": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "1-3 short reasons for the score (2-5 words each)",
					},
				},
				"required":             []any{"score", "reasons"},
				"additionalProperties": false,
			},
			"teaching": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"explanation": map[string]any{
						"type":        "string",
						"description": "1-2 sentences on how the Spanish sentence is built",
					},
					"miniLesson": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"title": map[string]any{"type": "string"},
								"tip":   map[string]any{"type": "string"},
							},
							"required":             []any{"title", "tip"},
							"additionalProperties": false,
						},
						"description": "2-3 focused tips",
					},
					"drills": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"type": map[string]any{
									"type": "string",
									"enum": []any{DrillFillBlank, DrillTranslate, DrillReorder},
								},
								"prompt": map[string]any{"type": "string"},
								"answer": map[string]any{"type": "string"},
							},
							"required":             []any{"type", "prompt", "answer"},
							"additionalProperties": false,
						},
						"description": "1-3 short practice drills",
					},
				},
				"required":             []any{"explanation", "miniLesson", "drills"},
				"additionalProperties": false,
			},
		},
		"required":             []any{"rating", "teaching"},
		"additionalProperties": false,
	},
}
