package camunda

import (
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"go.uber.org/zap"
)

// JobHandler is implemented by every task handler in internal/workers.
type JobHandler interface {
	Handle(client worker.JobClient, job entities.Job)
}

type WorkerOptions struct {
	TaskType      string
	MaxJobsActive int
	Timeout       time.Duration
}

type Worker struct {
	worker   worker.JobWorker
	logger   *zap.Logger
	taskType string
}

// NewWorker opens a job worker for one task type.
func NewWorker(client zbc.Client, opts WorkerOptions, handler JobHandler, logger *zap.Logger) *Worker {
	jw := client.NewJobWorker().
		JobType(opts.TaskType).
		Handler(handler.Handle).
		MaxJobsActive(opts.MaxJobsActive).
		Timeout(opts.Timeout).
		Name(opts.TaskType).
		Open()

	logger.Info("worker started",
		zap.String("taskType", opts.TaskType),
		zap.Int("maxJobsActive", opts.MaxJobsActive),
		zap.Duration("timeout", opts.Timeout),
	)
	return &Worker{worker: jw, logger: logger, taskType: opts.TaskType}
}

func (w *Worker) TaskType() string { return w.taskType }

// Stop closes the job worker and waits for in-flight jobs to drain.
func (w *Worker) Stop() {
	w.logger.Info("stopping worker", zap.String("taskType", w.taskType))
	w.worker.Close()
	w.worker.AwaitClose()
}
