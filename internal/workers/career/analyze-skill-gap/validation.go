package analyzeskillgap

import "placement-workers/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"employerId"},
		Properties: map[string]validation.Property{
			"employerId": {
				Type:        "string",
				Description: "Catalog employer id",
				MinLength:   validation.Int(1),
			},
			"skills": {
				Type:     "array",
				MaxItems: validation.Int(100),
				Items:    &validation.Property{Type: "string"},
			},
			"sessionId": {
				Type:        "string",
				Description: "Session whose profile skills are used when skills is empty",
			},
		},
	}
}
