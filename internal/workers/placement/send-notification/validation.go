package sendnotification

import "placement-workers/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"sessionId", "applicationId"},
		Properties: map[string]validation.Property{
			"sessionId":     {Type: "string", MinLength: validation.Int(1)},
			"applicationId": {Type: "string", MinLength: validation.Int(1)},
		},
	}
}
