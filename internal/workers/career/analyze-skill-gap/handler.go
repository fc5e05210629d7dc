package analyzeskillgap

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
	"placement-workers/internal/match"
	"placement-workers/internal/models"
	"placement-workers/internal/placement"
	"placement-workers/internal/scoring/skillgap"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "analyze-skill-gap"

type SessionReader interface {
	Session(ctx context.Context, id string) (*models.Session, error)
}

type Handler struct {
	config    *Config
	matcher   match.Matcher
	employers catalog.Repository
	sessions  SessionReader
	logger    logger.Logger
	errors    *errors.ErrorHandler
}

func NewHandler(config *Config, matcher match.Matcher, employers catalog.Repository, sessions SessionReader, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:    config,
		matcher:   matcher,
		employers: employers,
		sessions:  sessions,
		logger:    l,
		errors:    errors.NewErrorHandler(l),
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
	employer, err := h.employers.Get(ctx, input.EmployerID)
	if err != nil {
		if stderrors.Is(err, catalog.ErrEmployerNotFound) {
			return nil, errors.NewEmployerNotFoundError(input.EmployerID)
		}
		return nil, errors.NewQueryExecutionFailedError(string(models.QueryTypeEmployerDetails), err)
	}

	skills, err := h.skills(ctx, input)
	if err != nil {
		return nil, err
	}

	// Employers added after seeding have no requirement table yet and
	// come back with an empty report.
	req, ok := skillgap.Requirements(employer.ID)
	if !ok {
		h.logger.Warn("no skill requirements for employer", map[string]interface{}{
			"employerId": employer.ID,
		})
	}

	report := skillgap.Analyze(h.matcher, req.RequiredSkills, skills)
	metrics.ScoreValue.WithLabelValues("skill_gap").Observe(float64(report.Coverage))

	return &Output{
		EmployerID:   employer.ID,
		EmployerName: employer.Name,
		Role:         employer.Role,
		RoleContext:  req.RoleContext,
		Report:       report,
		GapCount:     report.GapCount(),
	}, nil
}

func (h *Handler) skills(ctx context.Context, input *Input) ([]string, error) {
	if len(input.Skills) > 0 || input.SessionID == "" || h.sessions == nil {
		return input.Skills, nil
	}

	sess, err := h.sessions.Session(ctx, input.SessionID)
	if err != nil {
		return nil, placement.JobError(input.SessionID, err)
	}
	return sess.Profile.Skills, nil
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
