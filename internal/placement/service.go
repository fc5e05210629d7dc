package placement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"placement-workers/internal/catalog"
	"placement-workers/internal/match"
	"placement-workers/internal/models"
	"placement-workers/internal/scoring/readiness"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus       = errors.New("invalid application status")
	ErrApplicationNotFound = errors.New("application not found")
	ErrTaskNotFound        = errors.New("preparation task not found")
)

// DashboardDeadlines is how many upcoming deadlines the dashboard shows.
const DashboardDeadlines = 4

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// WithClock replaces the clock used for applied dates and timestamps.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// StartSession creates a session seeded with the demo profile, applications
// and preparation checklist. An empty id gets a generated one.
func (s *Service) StartSession(ctx context.Context, id string) (*models.Session, error) {
	if id == "" {
		id = uuid.NewString()
	}
	now := s.now().UTC()
	sess := &models.Session{
		ID:           id,
		Profile:      SeedProfile(),
		Applications: SeedApplications(),
		PrepTasks:    SeedPrepTasks(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *Service) EndSession(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func (s *Service) Session(ctx context.Context, id string) (*models.Session, error) {
	return s.store.Get(ctx, id)
}

// Apply records an application to employer. Applying twice to the same
// employer returns the existing application with created=false.
func (s *Service) Apply(ctx context.Context, id string, employer models.Employer) (app models.Application, created bool, err error) {
	_, err = s.store.Update(ctx, id, func(sess *models.Session) error {
		// Stores may run fn again after a conflicting write.
		app, created = models.Application{}, false
		if existing := sess.ApplicationForEmployer(employer.ID); existing != nil {
			app = *existing
			return nil
		}
		app = models.Application{
			ID:           uuid.NewString(),
			EmployerID:   employer.ID,
			EmployerName: employer.Name,
			Role:         employer.Role,
			Status:       models.StatusApplied,
			AppliedDate:  s.now().Format(models.DateLayout),
		}
		sess.Applications = append(sess.Applications, app)
		sess.UpdatedAt = s.now().UTC()
		created = true
		return nil
	})
	if err != nil {
		return models.Application{}, false, err
	}
	return app, created, nil
}

// UpdateStatus moves an application to status and returns the status it had before.
func (s *Service) UpdateStatus(ctx context.Context, id, appID string, status models.ApplicationStatus) (app models.Application, previous models.ApplicationStatus, err error) {
	if !status.Valid() {
		return models.Application{}, "", fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	_, err = s.store.Update(ctx, id, func(sess *models.Session) error {
		a := sess.FindApplication(appID)
		if a == nil {
			return ErrApplicationNotFound
		}
		previous = a.Status
		a.Status = status
		app = *a
		sess.UpdatedAt = s.now().UTC()
		return nil
	})
	if err != nil {
		return models.Application{}, "", err
	}
	return app, previous, nil
}

func (s *Service) TogglePrepTask(ctx context.Context, id, taskID string) (task models.PrepTask, err error) {
	_, err = s.store.Update(ctx, id, func(sess *models.Session) error {
		t := sess.FindTask(taskID)
		if t == nil {
			return ErrTaskNotFound
		}
		t.Completed = !t.Completed
		task = *t
		sess.UpdatedAt = s.now().UTC()
		return nil
	})
	if err != nil {
		return models.PrepTask{}, err
	}
	return task, nil
}

// UpdateSkills replaces the profile skills, dropping blanks and duplicates.
func (s *Service) UpdateSkills(ctx context.Context, id string, skills []string) (*models.Session, error) {
	return s.store.Update(ctx, id, func(sess *models.Session) error {
		sess.Profile.Skills = match.Clean(skills)
		sess.UpdatedAt = s.now().UTC()
		return nil
	})
}

type Dashboard struct {
	Applications       []models.Application `json:"applications"`
	ActiveApplications int                  `json:"activeApplications"`
	Interviews         int                  `json:"interviews"`
	TasksDone          int                  `json:"tasksDone"`
	TasksTotal         int                  `json:"tasksTotal"`
	Upcoming           []catalog.Deadline   `json:"upcoming"`
}

func (s *Service) Dashboard(ctx context.Context, id string, employers []models.Employer, now time.Time) (Dashboard, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return Dashboard{}, err
	}
	return BuildDashboard(sess, employers, now), nil
}

// BuildDashboard summarises sess. Bookmarked ("interested") applications do
// not count as active.
func BuildDashboard(sess *models.Session, employers []models.Employer, now time.Time) Dashboard {
	d := Dashboard{
		Applications: append([]models.Application{}, sess.Applications...),
		Upcoming:     catalog.UpcomingDeadlines(employers, now, DashboardDeadlines),
	}
	for _, a := range sess.Applications {
		if a.Status.Active() {
			d.ActiveApplications++
		}
		if a.Status == models.StatusInterview {
			d.Interviews++
		}
	}
	d.TasksDone, d.TasksTotal = sess.CompletedTasks()
	return d
}

// ReadinessInputs fills the session-derived readiness inputs. Slider values
// start at their defaults.
func ReadinessInputs(sess *models.Session) readiness.Input {
	done, total := sess.CompletedTasks()
	return readiness.Input{
		ResumeScore:  readiness.DefaultResumeScore,
		MockScore:    readiness.DefaultMockScore,
		ExtraScore:   readiness.DefaultExtraScore,
		Skills:       append([]string(nil), sess.Profile.Skills...),
		CGPA:         sess.Profile.CGPA,
		TasksDone:    done,
		TasksTotal:   total,
		Applications: len(sess.Applications),
	}
}
