package queryelasticsearch

import "placement-workers/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"keywords": {Type: "string", MaxLength: validation.Int(200)},
			"type":     {Type: "string"},
			"pagination": {
				Type: "object",
				Properties: map[string]validation.Property{
					"from": {Type: "integer", Minimum: validation.Float(0)},
					"size": {Type: "integer", Minimum: validation.Float(0)},
				},
			},
		},
	}
}
