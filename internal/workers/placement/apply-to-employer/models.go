package applytoemployer

import "placement-workers/internal/models"

type Input struct {
	SessionID  string `json:"sessionId"`
	EmployerID string `json:"employerId"`
}

type Output struct {
	Application models.Application `json:"application"`
	Created     bool               `json:"created"`
}
