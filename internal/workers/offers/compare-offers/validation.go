package compareoffers

import "placement-workers/internal/common/validation"

// GetInputSchema checks shape only. Offer count and field ranges are
// enforced by the scorer so they surface as their own error codes.
func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"offers": {
				Type:        "array",
				Description: "Offers to compare",
				Items: &validation.Property{
					Type:     "object",
					Required: []string{"id", "company"},
					Properties: map[string]validation.Property{
						"id":              {Type: "string"},
						"company":         {Type: "string"},
						"ctc":             {Type: "number"},
						"joiningBonus":    {Type: "number"},
						"wfhPolicy":       {Type: "string"},
						"healthInsurance": {Type: "boolean"},
						"relocation":      {Type: "boolean"},
						"growthRating":    {Type: "integer"},
						"wlbRating":       {Type: "integer"},
						"brandRating":     {Type: "integer"},
					},
				},
			},
			"useSeed": {Type: "boolean"},
		},
	}
}
