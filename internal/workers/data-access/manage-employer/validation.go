package manageemployer

import "placement-workers/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"action"},
		Properties: map[string]validation.Property{
			"action": {Type: "string", Enum: []string{string(ActionAdd), string(ActionRemove)}},
			"employer": {
				Type:     "object",
				Required: []string{"name", "role"},
				Properties: map[string]validation.Property{
					"name":     {Type: "string", MinLength: validation.Int(1)},
					"role":     {Type: "string", MinLength: validation.Int(1)},
					"deadline": {Type: "string"},
					"type":     {Type: "string"},
				},
			},
			"employerId": {Type: "string"},
		},
	}
}
