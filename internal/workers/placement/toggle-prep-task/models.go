package togglepreptask

import "placement-workers/internal/models"

type Input struct {
	SessionID string `json:"sessionId"`
	TaskID    string `json:"taskId"`
}

type Output struct {
	Task      models.PrepTask `json:"task"`
	Completed bool            `json:"completed"`
}
