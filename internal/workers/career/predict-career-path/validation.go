package predictcareerpath

import "placement-workers/internal/common/validation"

func tagList(description string) validation.Property {
	return validation.Property{
		Type:        "array",
		Description: description,
		MaxItems:    validation.Int(50),
		Items:       &validation.Property{Type: "string", MaxLength: validation.Int(100)},
	}
}

// GetInputSchema leaves every list optional; needing a skill or an interest
// is a business rule checked by the scorer.
func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"skills":    tagList("Skill tags, e.g. Financial Modelling"),
			"projects":  tagList("Project or internship keywords"),
			"interests": tagList("Interest tags"),
		},
	}
}
