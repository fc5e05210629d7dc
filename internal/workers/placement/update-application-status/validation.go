package updateapplicationstatus

import "placement-workers/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"sessionId", "applicationId", "status"},
		Properties: map[string]validation.Property{
			"sessionId":     {Type: "string", MinLength: validation.Int(1)},
			"applicationId": {Type: "string", MinLength: validation.Int(1)},
			"status": {
				Type:        "string",
				Description: "applied, interview, selected, rejected or interested (any case)",
			},
		},
	}
}
