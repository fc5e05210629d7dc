package compareoffers

import (
	"context"
	stderrors "errors"
	"time"

	"placement-workers/internal/common/camunda"
	"placement-workers/internal/common/errors"
	"placement-workers/internal/common/logger"
	"placement-workers/internal/common/metrics"
	"placement-workers/internal/common/observability"
	"placement-workers/internal/scoring/offers"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "compare-offers"

type Handler struct {
	config *Config
	logger logger.Logger
	errors *errors.ErrorHandler
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{config: config, logger: l, errors: errors.NewErrorHandler(l)}
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

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	list := input.Offers
	if len(list) == 0 && input.UseSeed {
		list = offers.SeedOffers()
	}

	cmp, err := offers.Compare(list)
	switch {
	case err == nil:
	case stderrors.Is(err, offers.ErrTooManyOffers):
		return nil, errors.NewOfferLimitError(len(list), offers.MaxOffers)
	case stderrors.Is(err, offers.ErrNoOffers), stderrors.Is(err, offers.ErrInvalidOffer):
		return nil, errors.NewValidationFailedError(err.Error())
	default:
		return nil, errors.NewInternalError(err)
	}

	for _, s := range cmp.Ranked {
		metrics.ScoreValue.WithLabelValues("offer").Observe(float64(s.Score))
	}

	return &Output{
		Ranked:     cmp.Ranked,
		Winners:    cmp.Winners,
		TopOfferID: cmp.Top.ID,
		TopCompany: cmp.Top.Company,
		TopScore:   cmp.Top.Score,
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
