package querypostgresql

import (
	"placement-workers/internal/common/validation"
)

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"queryType"},
		Properties: map[string]validation.Property{
			"queryType": {
				Type: "string",
				Enum: []string{
					string(QueryTypeEmployerList),
					string(QueryTypeEmployerDetails),
					string(QueryTypeUpcomingDeadlines),
				},
			},
			"employerId": {Type: "string"},
			"filters":    {Type: "object"},
			"asOf":       {Type: "string", Pattern: `^\d{4}-\d{2}-\d{2}$`},
			"limit":      {Type: "integer", Minimum: validation.Float(0), Maximum: validation.Float(100)},
		},
	}
}
