// Package catalog stores the employers that recruit on campus.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"placement-workers/internal/common/validation"
	"placement-workers/internal/models"

	"github.com/google/uuid"
)

var (
	ErrEmployerNotFound = errors.New("employer not found")
	ErrInvalidEmployer  = errors.New("invalid employer")
)

type Repository interface {
	List(ctx context.Context, f Filter) ([]models.Employer, error)
	Get(ctx context.Context, id string) (models.Employer, error)
	// Add stores e under a new id and returns the stored employer.
	Add(ctx context.Context, e models.Employer) (models.Employer, error)
	Remove(ctx context.Context, id string) error
}

// Filter narrows List. Search is a case-insensitive substring of name or
// role; Type is an exact, case-insensitive match, with "" and "all" meaning any.
type Filter struct {
	Search string `json:"search,omitempty"`
	Type   string `json:"type,omitempty"`
}

func (f Filter) typeFilter() string {
	t := strings.ToLower(strings.TrimSpace(f.Type))
	if t == "all" {
		return ""
	}
	return t
}

// Matches applies f to a single employer.
func (f Filter) Matches(e models.Employer) bool {
	if q := strings.ToLower(f.Search); q != "" {
		if !strings.Contains(strings.ToLower(e.Name), q) && !strings.Contains(strings.ToLower(e.Role), q) {
			return false
		}
	}
	if t := f.typeFilter(); t != "" && strings.ToLower(e.Type) != t {
		return false
	}
	return true
}

type Deadline struct {
	models.Employer
	DaysLeft int `json:"daysLeft"`
}

// UpcomingDeadlines returns employers whose deadline is still ahead of now,
// soonest first, at most limit of them. limit <= 0 means no limit.
func UpcomingDeadlines(employers []models.Employer, now time.Time, limit int) []Deadline {
	out := make([]Deadline, 0, len(employers))
	for _, e := range employers {
		days, ok := e.DaysUntil(now)
		if !ok || days <= 0 {
			continue
		}
		out = append(out, Deadline{Employer: e, DaysLeft: days})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DaysLeft < out[j].DaysLeft })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// prepare trims the required fields, assigns a fresh id and runs the
// Employer validate tags.
func prepare(e models.Employer) (models.Employer, error) {
	e.Name = strings.TrimSpace(e.Name)
	e.Role = strings.TrimSpace(e.Role)
	e.ID = uuid.NewString()
	if err := validation.Struct(e); err != nil {
		return models.Employer{}, fmt.Errorf("%w: %v", ErrInvalidEmployer, err)
	}
	return e, nil
}
