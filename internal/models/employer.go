package models

import (
	"math"
	"time"
)

// DateLayout is the format of deadlines and applied dates.
const DateLayout = "2006-01-02"

type Employer struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Logo        string `json:"logo"`
	Role        string `json:"role" validate:"required"`
	Package     string `json:"package"`
	Eligibility string `json:"eligibility"`
	Deadline    string `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// DaysUntil is the whole number of days from now to the deadline, rounded up.
// It returns false when the deadline does not parse.
func (e Employer) DaysUntil(now time.Time) (int, bool) {
	d, err := time.ParseInLocation(DateLayout, e.Deadline, now.Location())
	if err != nil {
		return 0, false
	}
	return int(math.Ceil(d.Sub(now).Hours() / 24)), true
}
