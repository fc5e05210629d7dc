package managesession

import (
	"context"
	"time"

	"placement-workers/internal/common/camunda"
	"placement-workers/internal/common/errors"
	"placement-workers/internal/common/logger"
	"placement-workers/internal/common/metrics"
	"placement-workers/internal/common/observability"
	"placement-workers/internal/placement"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "manage-session"

type Handler struct {
	config   *Config
	sessions *placement.Service
	logger   logger.Logger
	errors   *errors.ErrorHandler
}

func NewHandler(config *Config, sessions *placement.Service, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{config: config, sessions: sessions, logger: l, errors: errors.NewErrorHandler(l)}
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
	case ActionStart:
		sess, err := h.sessions.StartSession(ctx, input.SessionID)
		if err != nil {
			return nil, placement.JobError(input.SessionID, err)
		}
		h.logger.Info("session started", map[string]interface{}{"sessionId": sess.ID})
		return &Output{SessionID: sess.ID, Action: input.Action, Profile: &sess.Profile}, nil

	case ActionEnd:
		if input.SessionID == "" {
			return nil, errors.NewValidationFailedError("sessionId is required to end a session")
		}
		if err := h.sessions.EndSession(ctx, input.SessionID); err != nil {
			return nil, placement.JobError(input.SessionID, err)
		}
		return &Output{SessionID: input.SessionID, Action: input.Action, Ended: true}, nil

	case ActionUpdateSkills:
		if input.SessionID == "" {
			return nil, errors.NewValidationFailedError("sessionId is required to update skills")
		}
		sess, err := h.sessions.UpdateSkills(ctx, input.SessionID, input.Skills)
		if err != nil {
			return nil, placement.JobError(input.SessionID, err)
		}
		return &Output{SessionID: sess.ID, Action: input.Action, Profile: &sess.Profile}, nil
	}

	return nil, errors.NewValidationFailedError("unknown action " + string(input.Action))
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
