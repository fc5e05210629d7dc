package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseApplicationStatus(t *testing.T) {
	st, ok := ParseApplicationStatus(" Interview ")
	assert.True(t, ok)
	assert.Equal(t, StatusInterview, st)
	assert.Equal(t, "Interview", st.Label())

	_, ok = ParseApplicationStatus("hired")
	assert.False(t, ok)

	assert.False(t, StatusInterested.Active())
	assert.True(t, StatusRejected.Active())
}

func TestEmployer_DaysUntil(t *testing.T) {
	now := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		deadline string
		want     int
		ok       bool
	}{
		{"2026-03-05", 4, true}, // 3 days 9 hours rounds up
		{"2026-03-02", 1, true},
		{"2026-03-01", 0, true}, // earlier today
		{"2026-02-20", -9, true},
		{"soon", 0, false},
	}
	for _, tt := range tests {
		got, ok := Employer{Deadline: tt.deadline}.DaysUntil(now)
		assert.Equal(t, tt.ok, ok, tt.deadline)
		assert.Equal(t, tt.want, got, tt.deadline)
	}
}

func TestSession_CloneIsDeep(t *testing.T) {
	s := &Session{
		Profile:      StudentProfile{Skills: []string{"Excel"}},
		Applications: []Application{{ID: "a1", Status: StatusApplied}},
		PrepTasks:    []PrepTask{{ID: "t1"}},
	}
	c := s.Clone()
	c.Profile.Skills[0] = "SQL"
	c.Applications[0].Status = StatusSelected
	c.PrepTasks[0].Completed = true

	assert.Equal(t, "Excel", s.Profile.Skills[0])
	assert.Equal(t, StatusApplied, s.Applications[0].Status)
	assert.False(t, s.PrepTasks[0].Completed)
}

func TestSession_Lookups(t *testing.T) {
	s := &Session{
		Applications: []Application{{ID: "a1", EmployerID: "4"}},
		PrepTasks:    []PrepTask{{ID: "t1", Completed: true}, {ID: "t2"}},
	}
	assert.NotNil(t, s.FindApplication("a1"))
	assert.Nil(t, s.FindApplication("a2"))
	assert.NotNil(t, s.ApplicationForEmployer("4"))
	assert.NotNil(t, s.FindTask("t2"))

	done, total := s.CompletedTasks()
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, total)
}
