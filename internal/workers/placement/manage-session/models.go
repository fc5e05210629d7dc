package managesession

import "placement-workers/internal/models"

type Action string

const (
	ActionStart        Action = "start"
	ActionEnd          Action = "end"
	ActionUpdateSkills Action = "update-skills"
)

type Input struct {
	Action    Action   `json:"action"`
	SessionID string   `json:"sessionId,omitempty"`
	Skills    []string `json:"skills,omitempty"`
}

type Output struct {
	SessionID string                 `json:"sessionId"`
	Action    Action                 `json:"action"`
	Profile   *models.StudentProfile `json:"profile,omitempty"`
	Ended     bool                   `json:"ended"`
}
