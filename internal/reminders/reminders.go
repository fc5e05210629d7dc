// Package reminders publishes a digest of approaching application deadlines
// on a cron schedule.
package reminders

import (
	"context"
	"fmt"
	"time"

	"placement-workers/internal/catalog"
	"placement-workers/internal/common/logger"
	"placement-workers/internal/notify"

	"github.com/robfig/cron/v3"
)

type Publisher interface {
	PublishDigest(ctx context.Context, topicARN string, deadlines []catalog.Deadline) (*notify.Result, error)
}

type Config struct {
	Schedule   string
	WindowDays int
	TopicARN   string
	Timeout    time.Duration
}

type Scheduler struct {
	cfg    Config
	repo   catalog.Repository
	pub    Publisher
	logger logger.Logger
	cron   *cron.Cron
	now    func() time.Time
}

func NewScheduler(cfg Config, repo catalog.Repository, pub Publisher, log logger.Logger) *Scheduler {
	if cfg.Timeout == 0 {
		cfg.Timeout = time.Minute
	}
	return &Scheduler{
		cfg:    cfg,
		repo:   repo,
		pub:    pub,
		logger: log.WithFields(map[string]interface{}{"component": "reminders"}),
		cron:   cron.New(),
		now:    time.Now,
	}
}

// Start registers the digest job and starts the cron loop in the background.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.Schedule, s.run); err != nil {
		return fmt.Errorf("invalid reminder schedule %q: %w", s.cfg.Schedule, err)
	}
	s.cron.Start()
	s.logger.Info("reminder scheduler started", map[string]interface{}{
		"schedule":   s.cfg.Schedule,
		"windowDays": s.cfg.WindowDays,
	})
	return nil
}

// Stop halts scheduling and returns a context that is done once a running
// digest has finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout)
	defer cancel()

	res, err := s.RunOnce(ctx)
	if err != nil {
		s.logger.Error("deadline digest failed", map[string]interface{}{"error": err.Error()})
		return
	}
	s.logger.Info("deadline digest done", map[string]interface{}{
		"status":         res.Status,
		"notificationId": res.NotificationID,
	})
}

// RunOnce publishes every deadline that falls within the window.
func (s *Scheduler) RunOnce(ctx context.Context) (*notify.Result, error) {
	employers, err := s.repo.List(ctx, catalog.Filter{})
	if err != nil {
		return nil, fmt.Errorf("list employers: %w", err)
	}
	return s.pub.PublishDigest(ctx, s.cfg.TopicARN, Within(employers, s.now(), s.cfg.WindowDays))
}
