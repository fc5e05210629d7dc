package manageannouncement

import "placement-workers/internal/models"

type Action string

const (
	ActionAdd    Action = "add"
	ActionRemove Action = "remove"
)

type Input struct {
	Action         Action `json:"action"`
	Title          string `json:"title,omitempty"`
	Urgent         bool   `json:"urgent,omitempty"`
	AnnouncementID string `json:"announcementId,omitempty"`
}

type Output struct {
	Action         Action               `json:"action"`
	AnnouncementID string               `json:"announcementId"`
	Announcement   *models.Announcement `json:"announcement,omitempty"`
}
