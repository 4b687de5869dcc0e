package model

// bundleSchema defines the JSON schema a model bundle must satisfy before
// its artifacts are used. Validated at load time; a non-conforming bundle
// is a startup ConfigError.
var bundleSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"schema_version": map[string]any{
			"type":        "string",
			"pattern":     `^v\d+\.\d+\.\d+$`,
			"description": "Semantic version of the bundle layout",
		},
		"scaler": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"mean": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "number"},
					"minItems": 1,
				},
				"scale": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "number"},
					"minItems": 1,
				},
			},
			"required":             []any{"mean", "scale"},
			"additionalProperties": false,
		},
		"model": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"weights": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "number"},
					"minItems": 1,
				},
				"intercept": map[string]any{"type": "number"},
			},
			"required":             []any{"weights", "intercept"},
			"additionalProperties": false,
		},
	},
	"required":             []any{"schema_version", "scaler", "model"},
	"additionalProperties": false,
}
