package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = JSONSchema{
	Type: "object",
	Properties: map[string]Property{
		"sessionId": {Type: "string", MinLength: Int(1)},
		"status":    {Type: "string", Enum: []string{"applied", "interview"}},
		"score":     {Type: "integer", Minimum: Float(0), Maximum: Float(100)},
		"skills":    {Type: "array", Items: &Property{Type: "string"}, MaxItems: Int(3)},
	},
	Required: []string{"sessionId"},
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name       string
		input      map[string]interface{}
		wantValid  bool
		wantFields []string
	}{
		{
			name:      "valid with extra process variables",
			input:     map[string]interface{}{"sessionId": "s1", "status": "applied", "score": 40.0, "other": true},
			wantValid: true,
		},
		{
			name:       "missing required",
			input:      map[string]interface{}{},
			wantFields: []string{"sessionId"},
		},
		{
			name:       "bad enum and range",
			input:      map[string]interface{}{"sessionId": "s1", "status": "hired", "score": 140.0},
			wantFields: []string{"score", "status"},
		},
		{
			name:       "non string array item",
			input:      map[string]interface{}{"sessionId": "s1", "skills": []interface{}{"Excel", 3.0}},
			wantFields: []string{"skills.1"},
		},
		{
			name:       "too many items",
			input:      map[string]interface{}{"sessionId": "s1", "skills": []interface{}{"a", "b", "c", "d"}},
			wantFields: []string{"skills"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateInput(tt.input, testSchema)
			assert.Equal(t, tt.wantValid, res.Valid, res.Summary())
			for _, f := range tt.wantFields {
				assert.True(t, res.HasErrors(f), "expected error on %s, got %v", f, res.GetErrorMessages())
			}
		})
	}
}

type sample struct {
	Name   string `validate:"required"`
	Rating int    `validate:"min=1,max=5"`
	Mode   string `validate:"oneof=Remote Hybrid On-site"`
}

func TestStruct(t *testing.T) {
	require.NoError(t, Struct(sample{Name: "x", Rating: 3, Mode: "Hybrid"}))

	err := Struct(sample{Rating: 9, Mode: "Office"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sample.Name: failed required")
	assert.Contains(t, err.Error(), "sample.Rating: failed max=5")
	assert.Contains(t, err.Error(), "sample.Mode: failed oneof=Remote Hybrid On-site")
}
