package getdashboard

import (
	"placement-workers/internal/models"
	"placement-workers/internal/placement"
)

type Input struct {
	SessionID string `json:"sessionId"`
}

type Output struct {
	placement.Dashboard
	Announcements []models.Announcement `json:"announcements"`
	AsOf          string                `json:"asOf"`
}
