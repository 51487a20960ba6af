package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// buildFactorsSchema returns the JSON-Schema (draft 2020-12 subset) that a
// factors override file must satisfy. Every key is optional; present keys
// replace the corresponding default wholesale.
func buildFactorsSchema() map[string]any {
	rate := func(max float64) map[string]any {
		return map[string]any{"type": "number", "minimum": 0.0, "maximum": max}
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"categoryEmissionFactors": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "number", "minimum": 0.0},
			},
			"storeSustainabilityRatings": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"store":  map[string]any{"type": "string", "minLength": 1},
						"rating": map[string]any{"type": "number", "minimum": 1.0, "maximum": 5.0},
					},
					"required": []string{"store", "rating"},
				},
			},
			"defaultStoreRating":    map[string]any{"type": "number", "minimum": 1.0, "maximum": 5.0},
			"organicDiscountFactor": rate(1),
			"packagingRate":         rate(1),
			"transportRate":         rate(1),
			"milesPerKgCO2e":        map[string]any{"type": "number", "exclusiveMinimum": 0.0},
			"kgCO2ePerTreeYear":     map[string]any{"type": "number", "exclusiveMinimum": 0.0},
			"ecoScoreAvgCap":        map[string]any{"type": "number", "exclusiveMinimum": 0.0},
			"gradeThresholds": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"upperBoundAvgEmission": map[string]any{"type": "number", "exclusiveMinimum": 0.0},
						"gradeLabel":            map[string]any{"type": "string", "minLength": 1},
					},
					"required": []string{"gradeLabel"},
				},
			},
			"tierRanges": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"name":  map[string]any{"type": "string", "minLength": 1},
						"min":   map[string]any{"type": "number", "minimum": 0.0, "maximum": 100.0},
						"max":   map[string]any{"type": "number", "minimum": 0.0, "maximum": 100.0},
						"color": map[string]any{"type": "string"},
					},
					"required": []string{"name", "min", "max"},
				},
			},
		},
	}
}

// validateAgainstSchema validates data against schemaMap.
func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("factors.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("factors.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("factors file does not match schema: %w", err)
	}
	return nil
}
