package manageemployer

import "placement-workers/internal/models"

type Action string

const (
	ActionAdd    Action = "add"
	ActionRemove Action = "remove"
)

type Input struct {
	Action     Action           `json:"action"`
	Employer   *models.Employer `json:"employer,omitempty"`
	EmployerID string           `json:"employerId,omitempty"`
}

type Output struct {
	Action     Action           `json:"action"`
	EmployerID string           `json:"employerId"`
	Employer   *models.Employer `json:"employer,omitempty"`
	Indexed    bool             `json:"indexed"`
}
