package models

// Announcement is a placement-office notice shown on the dashboard. Seeded
// notices carry a relative Time; ones posted later carry the Date they were
// posted on.
type Announcement struct {
	ID     string `json:"id"`
	Title  string `json:"title" validate:"required"`
	Urgent bool   `json:"urgent"`
	Time   string `json:"time,omitempty"`
	Date   string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
