package sendnotification

import "placement-workers/internal/notify"

type Input struct {
	SessionID     string `json:"sessionId"`
	ApplicationID string `json:"applicationId"`
}

type Output struct {
	notify.Result
	ApplicationID string `json:"applicationId"`
	HighPriority  bool   `json:"highPriority"`
}
