package models

import "time"

// Session is one student's mutable placement state: profile, applications
// and preparation checklist.
type Session struct {
	ID           string         `json:"id"`
	Profile      StudentProfile `json:"profile"`
	Applications []Application  `json:"applications"`
	PrepTasks    []PrepTask     `json:"prepTasks"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

func (s *Session) FindApplication(id string) *Application {
	for i := range s.Applications {
		if s.Applications[i].ID == id {
			return &s.Applications[i]
		}
	}
	return nil
}

func (s *Session) ApplicationForEmployer(employerID string) *Application {
	for i := range s.Applications {
		if s.Applications[i].EmployerID == employerID {
			return &s.Applications[i]
		}
	}
	return nil
}

func (s *Session) FindTask(id string) *PrepTask {
	for i := range s.PrepTasks {
		if s.PrepTasks[i].ID == id {
			return &s.PrepTasks[i]
		}
	}
	return nil
}

// CompletedTasks returns the number of completed tasks and the total.
func (s *Session) CompletedTasks() (done, total int) {
	for _, t := range s.PrepTasks {
		if t.Completed {
			done++
		}
	}
	return done, len(s.PrepTasks)
}

// Clone returns a deep copy.
func (s *Session) Clone() *Session {
	c := *s
	c.Profile.Skills = append([]string(nil), s.Profile.Skills...)
	c.Applications = append([]Application(nil), s.Applications...)
	c.PrepTasks = append([]PrepTask(nil), s.PrepTasks...)
	return &c
}
