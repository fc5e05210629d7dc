package manageannouncement

import (
	"context"
	stderrors "errors"
	"time"

	"placement-workers/internal/announcements"
	"placement-workers/internal/common/camunda"
	"placement-workers/internal/common/errors"
	"placement-workers/internal/common/logger"
	"placement-workers/internal/common/metrics"
	"placement-workers/internal/common/observability"
	"placement-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "manage-announcement"

type Handler struct {
	config *Config
	board  announcements.Board
	logger logger.Logger
	errors *errors.ErrorHandler
}

func NewHandler(config *Config, board announcements.Board, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{config: config, board: board, logger: l, errors: errors.NewErrorHandler(l)}
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
		a, err := h.board.Add(ctx, models.Announcement{Title: input.Title, Urgent: input.Urgent})
		if err != nil {
			if stderrors.Is(err, announcements.ErrInvalidAnnouncement) {
				return nil, errors.NewValidationFailedError(err.Error())
			}
			return nil, errors.NewInternalError(err)
		}
		h.logger.Info("announcement posted", map[string]interface{}{
			"announcementId": a.ID,
			"urgent":         a.Urgent,
		})
		return &Output{Action: input.Action, AnnouncementID: a.ID, Announcement: &a}, nil

	case ActionRemove:
		if input.AnnouncementID == "" {
			return nil, errors.NewValidationFailedError("announcementId is required for remove")
		}
		if err := h.board.Remove(ctx, input.AnnouncementID); err != nil {
			if stderrors.Is(err, announcements.ErrAnnouncementNotFound) {
				return nil, errors.NewAnnouncementNotFoundError(input.AnnouncementID)
			}
			return nil, errors.NewInternalError(err)
		}
		return &Output{Action: input.Action, AnnouncementID: input.AnnouncementID}, nil
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
