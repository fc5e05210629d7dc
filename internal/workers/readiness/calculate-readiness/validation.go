package calculatereadiness

import "placement-workers/internal/common/validation"

func slider(description string) validation.Property {
	return validation.Property{
		Type:        "integer",
		Description: description,
		Minimum:     validation.Float(0),
		Maximum:     validation.Float(100),
	}
}

func count() validation.Property {
	return validation.Property{Type: "integer", Minimum: validation.Float(0)}
}

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"sessionId":    {Type: "string"},
			"resumeScore":  slider("Self-assessed resume quality"),
			"mockScore":    slider("Mock interview performance"),
			"extraScore":   slider("Leadership and extracurriculars"),
			"skills":       {Type: "array", Items: &validation.Property{Type: "string"}},
			"cgpa":         {Type: "string", Description: "e.g. 8.3/10; unparseable values score as 70"},
			"tasksDone":    count(),
			"tasksTotal":   count(),
			"applications": count(),
		},
	}
}
