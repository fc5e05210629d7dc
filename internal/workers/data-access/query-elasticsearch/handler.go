package queryelasticsearch

import (
	"context"
	stderrors "errors"
	"time"

	"placement-workers/internal/common/camunda"
	"placement-workers/internal/common/errors"
	"placement-workers/internal/common/logger"
	"placement-workers/internal/common/metrics"
	"placement-workers/internal/common/observability"
	"placement-workers/internal/search"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "query-elasticsearch"

type Searcher interface {
	Search(ctx context.Context, q search.Query) (*search.Result, error)
	Name() string
}

type Handler struct {
	config *Config
	index  Searcher
	logger logger.Logger
	errors *errors.ErrorHandler
}

func NewHandler(config *Config, index Searcher, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{config: config, index: index, logger: l, errors: errors.NewErrorHandler(l)}
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
	metrics.SearchQueryDuration.WithLabelValues(h.index.Name()).Observe(float64(output.Took) / 1000)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	result, err := h.index.Search(ctx, search.Query{
		Keywords: input.Keywords,
		Type:     input.Type,
		From:     input.Pagination.From,
		Size:     input.Pagination.Size,
	})
	if err != nil {
		switch {
		case ctx.Err() == context.DeadlineExceeded:
			return nil, errors.NewSearchTimeoutError(h.index.Name())
		case stderrors.Is(err, search.ErrIndexNotFound):
			return nil, errors.NewIndexNotFoundError(h.index.Name())
		}
		return nil, errors.NewSearchQueryFailedError(h.index.Name(), err)
	}

	return &Output{
		Data:      result.Employers,
		TotalHits: result.TotalHits,
		MaxScore:  result.MaxScore,
		Took:      result.Took,
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
