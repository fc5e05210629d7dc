package placement

import (
	"errors"

	apperrors "placement-workers/internal/common/errors"
)

// JobError maps a Service error to the worker error taxonomy. Lookups that
// miss are business errors; anything else is a store failure and retried.
func JobError(sessionID string, err error) error {
	if err == nil {
		return nil
	}

	var std *apperrors.StandardError
	switch {
	case errors.As(err, &std):
		return std
	case errors.Is(err, ErrSessionNotFound):
		return apperrors.NewSessionNotFoundError(sessionID)
	case errors.Is(err, ErrSessionExists):
		return apperrors.NewSessionExistsError(sessionID)
	case errors.Is(err, ErrInvalidStatus):
		return apperrors.NewInvalidStatusError(err.Error())
	case errors.Is(err, ErrApplicationNotFound):
		return apperrors.NewApplicationNotFoundError(err.Error()).WithMetadata("sessionId", sessionID)
	case errors.Is(err, ErrTaskNotFound):
		return apperrors.NewTaskNotFoundError(err.Error()).WithMetadata("sessionId", sessionID)
	default:
		return apperrors.NewSessionStoreFailedError(err)
	}
}
