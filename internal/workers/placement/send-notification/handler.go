package sendnotification

import (
	"context"
	stderrors "errors"
	"time"

	"placement-workers/internal/common/camunda"
	"placement-workers/internal/common/errors"
	"placement-workers/internal/common/logger"
	"placement-workers/internal/common/metrics"
	"placement-workers/internal/common/observability"
	"placement-workers/internal/models"
	"placement-workers/internal/notify"
	"placement-workers/internal/placement"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "send-notification"

type Notifier interface {
	NotifyStatus(ctx context.Context, to notify.Recipient, app models.Application) (*notify.Result, error)
}

type Handler struct {
	config   *Config
	sessions *placement.Service
	notifier Notifier
	logger   logger.Logger
	errors   *errors.ErrorHandler
}

func NewHandler(config *Config, sessions *placement.Service, notifier Notifier, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{config: config, sessions: sessions, notifier: notifier, logger: l, errors: errors.NewErrorHandler(l)}
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
	sess, err := h.sessions.Session(ctx, input.SessionID)
	if err != nil {
		return nil, placement.JobError(input.SessionID, err)
	}
	app := sess.FindApplication(input.ApplicationID)
	if app == nil {
		return nil, placement.JobError(input.SessionID, placement.ErrApplicationNotFound)
	}

	to := notify.Recipient{Name: sess.Profile.Name, Email: sess.Profile.Email, Phone: sess.Profile.Phone}
	res, err := h.notifier.NotifyStatus(ctx, to, *app)
	if err != nil {
		switch {
		case stderrors.Is(err, notify.ErrNoTemplate):
			return nil, errors.NewInvalidStatusError(string(app.Status))
		case stderrors.Is(err, notify.ErrSendFailed):
			return nil, errors.NewNotificationSendFailedError(failedChannel(res), err)
		}
		return nil, errors.NewInternalError(err)
	}

	h.logger.Info("notification processed", map[string]interface{}{
		"applicationId":  app.ID,
		"notificationId": res.NotificationID,
		"status":         string(res.Status),
	})

	return &Output{Result: *res, ApplicationID: app.ID, HighPriority: notify.HighPriority(app.Status)}, nil
}

func failedChannel(res *notify.Result) string {
	if res == nil {
		return "unknown"
	}
	for _, d := range res.Deliveries {
		if d.Status == models.NotificationFailed {
			return string(d.Channel)
		}
	}
	return "unknown"
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
