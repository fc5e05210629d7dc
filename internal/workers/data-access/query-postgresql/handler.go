package querypostgresql

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
	"placement-workers/internal/workers/data-access/query-postgresql/queries"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "query-postgresql"

type Handler struct {
	config *Config
	repo   catalog.Repository
	logger logger.Logger
	errors *errors.ErrorHandler
}

func NewHandler(config *Config, repo catalog.Repository, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{config: config, repo: repo, logger: l, errors: errors.NewErrorHandler(l)}
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
	metrics.DatabaseQueryDuration.WithLabelValues(input.QueryType).Observe(float64(output.QueryExecutionTime) / 1000)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	queryType := models.QueryType(input.QueryType)
	if _, exists := queries.Registry[queryType]; !exists {
		return nil, errors.NewInvalidQueryTypeError(input.QueryType)
	}

	params := make(map[string]interface{})
	if input.EmployerID != "" {
		params["employerId"] = input.EmployerID
	}
	if input.Filters != nil {
		params["filters"] = input.Filters
	}
	if input.AsOf != "" {
		params["asOf"] = input.AsOf
	}
	if input.Limit > 0 {
		params["limit"] = input.Limit
	}

	data, rowCount, execTime, err := queries.Execute(ctx, h.repo, queryType, params)
	if err != nil {
		switch {
		case stderrors.Is(err, queries.ErrMissingParam), stderrors.Is(err, queries.ErrInvalidParam):
			return nil, errors.NewValidationFailedError(err.Error())
		case stderrors.Is(err, catalog.ErrEmployerNotFound):
			return nil, errors.NewEmployerNotFoundError(input.EmployerID)
		case ctx.Err() == context.DeadlineExceeded:
			return nil, errors.NewQueryTimeoutError(input.QueryType)
		}
		return nil, errors.NewQueryExecutionFailedError(input.QueryType, err)
	}

	return &Output{
		Data:               data,
		RowCount:           rowCount,
		QueryExecutionTime: execTime,
	}, nil
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
