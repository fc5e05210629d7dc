package applytoemployer

import "placement-workers/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"sessionId", "employerId"},
		Properties: map[string]validation.Property{
			"sessionId":  {Type: "string", MinLength: validation.Int(1)},
			"employerId": {Type: "string", MinLength: validation.Int(1)},
		},
	}
}
