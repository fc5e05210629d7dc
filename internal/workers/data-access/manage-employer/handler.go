package manageemployer

import (
	"context"
	stderrors "errors"
	"time"

	"placement-workers/internal/catalog"
	"placement-workers/internal/common/camunda"
	"placement-workers/internal/common/errors"
	"placement-workers/internal/common/logger"
	"placement-workers/internal/common/metrics"
	"placement-workers/internal/common/observability"
	"placement-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "manage-employer"

// Indexer mirrors catalog changes into the search index.
type Indexer interface {
	IndexEmployer(ctx context.Context, e models.Employer) error
	DeleteEmployer(ctx context.Context, id string) error
}

type Handler struct {
	config  *Config
	catalog catalog.Repository
	index   Indexer
	logger  logger.Logger
	errors  *errors.ErrorHandler
}

// NewHandler wires the worker. index may be nil when search is disabled.
func NewHandler(config *Config, repo catalog.Repository, index Indexer, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{config: config, catalog: repo, index: index, logger: l, errors: errors.NewErrorHandler(l)}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	start := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":             job.Key,
		"processInstanceKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()
	ctx, span := observability.StartSpan(ctx, TaskType)
	defer span.End()

	var input Input
	if err := camunda.DecodeVariables(job, GetInputSchema(), &input); err != nil {
		h.fail(ctx, client, job, err, start)
		return
	}

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.fail(ctx, client, job, err, start)
		return
	}

	h.completeJob(ctx, client, job, output)
	metrics.ObserveJob(TaskType, "", time.Since(start).Seconds())
	observability.RecordJob(ctx, TaskType, "completed", time.Since(start))
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	switch input.Action {
	case ActionAdd:
		if input.Employer == nil {
			return nil, errors.NewValidationFailedError("employer is required for add")
		}
		e, err := h.catalog.Add(ctx, *input.Employer)
		if err != nil {
			if stderrors.Is(err, catalog.ErrInvalidEmployer) {
				return nil, errors.NewValidationFailedError(err.Error())
			}
			return nil, errors.NewDatabaseInsertFailedError(err)
		}
		out := &Output{Action: input.Action, EmployerID: e.ID, Employer: &e}
		if h.index != nil {
			out.Indexed = h.sync(e.ID, h.index.IndexEmployer(ctx, e))
		}
		return out, nil

	case ActionRemove:
		if input.EmployerID == "" {
			return nil, errors.NewValidationFailedError("employerId is required for remove")
		}
		if err := h.catalog.Remove(ctx, input.EmployerID); err != nil {
			if stderrors.Is(err, catalog.ErrEmployerNotFound) {
				return nil, errors.NewEmployerNotFoundError(input.EmployerID)
			}
			return nil, errors.NewQueryExecutionFailedError("employer_remove", err)
		}
		out := &Output{Action: input.Action, EmployerID: input.EmployerID}
		if h.index != nil {
			out.Indexed = h.sync(input.EmployerID, h.index.DeleteEmployer(ctx, input.EmployerID))
		}
		return out, nil
	}

	return nil, errors.NewValidationFailedError("unknown action " + string(input.Action))
}

// sync logs a failed index update. The catalog stays authoritative, so the
// job still completes.
func (h *Handler) sync(employerID string, err error) bool {
	if err == nil {
		return true
	}
	h.logger.Warn("search index out of sync", map[string]interface{}{
		"employerId": employerID,
		"error":      err.Error(),
	})
	return false
}

func (h *Handler) fail(ctx context.Context, client worker.JobClient, job entities.Job, err error, start time.Time) {
	code := string(errors.Normalize(err).Code)
	metrics.ObserveJob(TaskType, code, time.Since(start).Seconds())
	observability.RecordJob(ctx, TaskType, code, time.Since(start))
	h.errors.HandleJobError(ctx, client, job, err)
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if _, err := cmd.Send(ctx); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
