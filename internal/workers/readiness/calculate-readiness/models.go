package calculatereadiness

import "placement-workers/internal/scoring/readiness"

// Input either names a session, whose profile, checklist and applications
// supply the automatic dimensions, or carries those values directly.
// Slider scores left unset fall back to their defaults.
type Input struct {
	SessionID string `json:"sessionId,omitempty"`

	ResumeScore *int `json:"resumeScore,omitempty"`
	MockScore   *int `json:"mockScore,omitempty"`
	ExtraScore  *int `json:"extraScore,omitempty"`

	Skills       []string `json:"skills,omitempty"`
	CGPA         string   `json:"cgpa,omitempty"`
	TasksDone    int      `json:"tasksDone,omitempty"`
	TasksTotal   int      `json:"tasksTotal,omitempty"`
	Applications int      `json:"applications,omitempty"`
}

type Output struct {
	readiness.Report
}
