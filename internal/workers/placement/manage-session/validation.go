package managesession

import "placement-workers/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"action"},
		Properties: map[string]validation.Property{
			"action":    {Type: "string", Enum: []string{string(ActionStart), string(ActionEnd), string(ActionUpdateSkills)}},
			"sessionId": {Type: "string", MaxLength: validation.Int(128)},
			"skills":    {Type: "array", Items: &validation.Property{Type: "string"}, MaxItems: validation.Int(50)},
		},
	}
}
