package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

// ErrorHandler fails or throws on a job depending on whether the error is retryable.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// HandleJobError handles any error in a worker job
func (h *ErrorHandler) HandleJobError(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	stdErr := Normalize(err)
	bpmnErr := ConvertToBPMNError(stdErr)

	h.logError(job, stdErr, bpmnErr)

	retries := GetRetryCount(stdErr.Code)
	if stdErr.Retryable && retries > 0 && job.Retries > 0 {
		h.failJobWithRetries(ctx, client, job, bpmnErr, retries)
	} else {
		h.throwBPMNError(ctx, client, job, bpmnErr)
	}
}

// Normalize unwraps err looking for a StandardError and falls back to INTERNAL_ERROR.
func Normalize(err error) *StandardError {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func (h *ErrorHandler) failJobWithRetries(ctx context.Context, client worker.JobClient, job entities.Job, bpmnErr *BPMNError, maxRetries int) {
	// job.Retries is what the broker has left; never hand back more than that.
	retriesToUse := maxRetries
	if int(job.Retries)-1 < maxRetries {
		retriesToUse = int(job.Retries) - 1
	}

	cmd := client.NewFailJobCommand().
		JobKey(job.Key).
		Retries(int32(retriesToUse)).
		ErrorMessage(bpmnErr.Message)

	if varsJSON, err := json.Marshal(bpmnErr.ToErrorVariables()); err == nil {
		if withVars, err := cmd.VariablesFromString(string(varsJSON)); err == nil {
			_, _ = withVars.Send(ctx)
			return
		}
	}
	_, _ = cmd.Send(ctx)
}

func (h *ErrorHandler) throwBPMNError(ctx context.Context, client worker.JobClient, job entities.Job, bpmnErr *BPMNError) {
	cmd := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(bpmnErr.Code).
		ErrorMessage(bpmnErr.Message)

	if varsJSON, err := json.Marshal(bpmnErr.ToErrorVariables()); err == nil {
		if withVars, err := cmd.VariablesFromString(string(varsJSON)); err == nil {
			_, _ = withVars.Send(ctx)
			return
		}
	}
	_, _ = cmd.Send(ctx)
}

func (h *ErrorHandler) logError(job entities.Job, stdErr *StandardError, bpmnErr *BPMNError) {
	h.logger.Error("Job failed", map[string]interface{}{
		"jobKey":           job.Key,
		"jobType":          job.Type,
		"errorCode":        string(stdErr.Code),
		"bpmnErrorCode":    bpmnErr.Code,
		"message":          bpmnErr.Message,
		"details":          stdErr.Details,
		"retryable":        stdErr.Retryable,
		"retries":          bpmnErr.Retries,
		"errorCategory":    GetErrorCategory(stdErr.Code),
		"workflowInstance": job.ProcessInstanceKey,
	})
}
