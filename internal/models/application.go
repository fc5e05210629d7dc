package models

import "strings"

type ApplicationStatus string

const (
	StatusApplied    ApplicationStatus = "applied"
	StatusInterview  ApplicationStatus = "interview"
	StatusSelected   ApplicationStatus = "selected"
	StatusRejected   ApplicationStatus = "rejected"
	StatusInterested ApplicationStatus = "interested"
)

var statusLabels = map[ApplicationStatus]string{
	StatusApplied:    "Applied",
	StatusInterview:  "Interview",
	StatusSelected:   "Selected",
	StatusRejected:   "Rejected",
	StatusInterested: "Interested",
}

// ParseApplicationStatus accepts any casing and surrounding space.
func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	st := ApplicationStatus(strings.ToLower(strings.TrimSpace(s)))
	_, ok := statusLabels[st]
	return st, ok
}

func (s ApplicationStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

func (s ApplicationStatus) Label() string {
	return statusLabels[s]
}

// Active is false only for employers the student has merely bookmarked.
func (s ApplicationStatus) Active() bool {
	return s != StatusInterested
}

type Application struct {
	ID           string            `json:"id"`
	EmployerID   string            `json:"employerId"`
	EmployerName string            `json:"employerName"`
	Role         string            `json:"role"`
	Status       ApplicationStatus `json:"status"`
	AppliedDate  string            `json:"appliedDate"`
}
