package analyzeresume

import (
	"placement-workers/internal/common/validation"
	"placement-workers/internal/scoring/resume"
)

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"fileName"},
		Properties: map[string]validation.Property{
			"fileName": {
				Type:        "string",
				Description: "Uploaded resume file name; the content is never read",
				MinLength:   validation.Int(1),
				MaxLength:   validation.Int(255),
			},
			"profile": {
				Type: "string",
				Enum: []string{resume.ProfileStandard, resume.ProfileAlternate},
			},
		},
	}
}
