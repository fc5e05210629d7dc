package notify

import (
	"fmt"
	"strings"

	"placement-workers/internal/models"
)

var statusTemplates = map[models.ApplicationStatus]models.NotificationTemplate{
	models.StatusApplied: {
		Subject: "Application submitted: {{employerName}}",
		Body:    "Hi {{studentName}}, your application for {{role}} at {{employerName}} was submitted on {{appliedDate}}.",
	},
	models.StatusInterview: {
		Subject: "Interview shortlist: {{employerName}}",
		Body:    "Hi {{studentName}}, you have been shortlisted to interview with {{employerName}} for {{role}}. Check the placement portal for your slot.",
	},
	models.StatusSelected: {
		Subject: "Congratulations! Offer from {{employerName}}",
		Body:    "Hi {{studentName}}, {{employerName}} has selected you for {{role}}. The placement office will share the offer letter shortly.",
	},
	models.StatusRejected: {
		Subject: "Update on your {{employerName}} application",
		Body:    "Hi {{studentName}}, {{employerName}} will not be moving forward with your {{role}} application. Keep going, more companies are on the way.",
	},
	models.StatusInterested: {
		Subject: "Saved: {{employerName}}",
		Body:    "Hi {{studentName}}, {{employerName}} ({{role}}) is on your shortlist. Apply before the deadline.",
	},
}

// Template returns the template for status.
func Template(status models.ApplicationStatus) (models.NotificationTemplate, bool) {
	t, ok := statusTemplates[status]
	return t, ok
}

// Render replaces {{key}} placeholders from data and drops any left unfilled.
func Render(tmpl string, data map[string]interface{}) string {
	result := tmpl
	for k, v := range data {
		value := ""
		if v != nil {
			value = fmt.Sprintf("%v", v)
		}
		result = strings.ReplaceAll(result, "{{"+k+"}}", value)
	}

	for {
		start := strings.Index(result, "{{")
		if start == -1 {
			break
		}
		end := strings.Index(result[start:], "}}")
		if end == -1 {
			break
		}
		result = result[:start] + result[start+end+2:]
	}
	return result
}
