package analyzeskillgap

import "placement-workers/internal/scoring/skillgap"

// Input names the employer to compare against. Skills wins over SessionID;
// when Skills is empty the session profile's skills are used.
type Input struct {
	EmployerID string   `json:"employerId"`
	Skills     []string `json:"skills,omitempty"`
	SessionID  string   `json:"sessionId,omitempty"`
}

type Output struct {
	EmployerID   string `json:"employerId"`
	EmployerName string `json:"employerName"`
	Role         string `json:"role"`
	RoleContext  string `json:"roleContext"`
	skillgap.Report
	GapCount int `json:"gapCount"`
}
