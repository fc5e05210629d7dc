package updateapplicationstatus

import "placement-workers/internal/models"

type Input struct {
	SessionID     string `json:"sessionId"`
	ApplicationID string `json:"applicationId"`
	Status        string `json:"status"`
}

// Output.HighPriority lets the process route interview and selection
// updates to the SMS path.
type Output struct {
	Application    models.Application       `json:"application"`
	PreviousStatus models.ApplicationStatus `json:"previousStatus"`
	Changed        bool                     `json:"changed"`
	HighPriority   bool                     `json:"highPriority"`
}
