package respondchat

import "placement-workers/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"message"},
		Properties: map[string]validation.Property{
			"message": {
				Type:      "string",
				MaxLength: validation.Int(2000),
			},
		},
	}
}
