package togglepreptask

import "placement-workers/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"sessionId", "taskId"},
		Properties: map[string]validation.Property{
			"sessionId": {Type: "string", MinLength: validation.Int(1)},
			"taskId":    {Type: "string", MinLength: validation.Int(1)},
		},
	}
}
