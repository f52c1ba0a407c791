package lessons

import "github.com/abhisek/languify/internal/llm"

// AnnotationSchema defines the JSON schema for annotating a translation with
// vocabulary, structure clues and example sentences.
var AnnotationSchema = &llm.Schema{
	Name:        "lesson-annotation",
	Description: "Vocabulary, grammar notes and example sentences for an English to Spanish translation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"vocabulary": map[string]any{
				"type":        "array",
				"description": "Key words of the sentence, in the order they appear in the Spanish translation",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"english": map[string]any{
							"type":        "string",
							"description": "English word or short phrase",
						},
						"spanish": map[string]any{
							"type":        "string",
							"description": "Spanish word exactly as it is written in the translation",
						},
						"notes": map[string]any{
							"type":        "string",
							"description": "Short usage note (2-6 words)",
						},
					},
					"required":             []any{"english", "spanish", "notes"},
					"additionalProperties": false,
				},
			},
			"structureClues": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 short grammar notes about the Spanish sentence structure",
			},
			"examples": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "3 similar Spanish example sentences",
			},
		},
		"required":             []any{"vocabulary", "structureClues", "examples"},
		"additionalProperties": false,
	},
}
