package calculatereadiness

import (
	"context"
	"time"

	"placement-workers/internal/common/camunda"
	"placement-workers/internal/common/errors"
	"placement-workers/internal/common/logger"
	"placement-workers/internal/common/metrics"
	"placement-workers/internal/common/observability"
	"placement-workers/internal/match"
	"placement-workers/internal/models"
	"placement-workers/internal/placement"
	"placement-workers/internal/scoring/readiness"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "calculate-readiness"

type SessionReader interface {
	Session(ctx context.Context, id string) (*models.Session, error)
}

type Handler struct {
	config   *Config
	matcher  match.Matcher
	sessions SessionReader
	logger   logger.Logger
	errors   *errors.ErrorHandler
}

func NewHandler(config *Config, matcher match.Matcher, sessions SessionReader, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:   config,
		matcher:  matcher,
		sessions: sessions,
		logger:   l,
		errors:   errors.NewErrorHandler(l),
	}
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
	in, err := h.inputs(ctx, input)
	if err != nil {
		return nil, err
	}

	if input.ResumeScore != nil {
		in.ResumeScore = *input.ResumeScore
	}
	if input.MockScore != nil {
		in.MockScore = *input.MockScore
	}
	if input.ExtraScore != nil {
		in.ExtraScore = *input.ExtraScore
	}

	report := readiness.Evaluate(h.matcher, in)
	metrics.ScoreValue.WithLabelValues("readiness").Observe(float64(report.Overall))

	return &Output{Report: report}, nil
}

func (h *Handler) inputs(ctx context.Context, input *Input) (readiness.Input, error) {
	if input.SessionID == "" {
		return readiness.Input{
			ResumeScore:  readiness.DefaultResumeScore,
			MockScore:    readiness.DefaultMockScore,
			ExtraScore:   readiness.DefaultExtraScore,
			Skills:       input.Skills,
			CGPA:         input.CGPA,
			TasksDone:    input.TasksDone,
			TasksTotal:   input.TasksTotal,
			Applications: input.Applications,
		}, nil
	}

	sess, err := h.sessions.Session(ctx, input.SessionID)
	if err != nil {
		return readiness.Input{}, placement.JobError(input.SessionID, err)
	}
	return placement.ReadinessInputs(sess), nil
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
