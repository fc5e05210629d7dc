// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeNoMatchSignals   ErrorCode = "NO_MATCH_SIGNALS"
	ErrCodeOfferLimit       ErrorCode = "OFFER_LIMIT_EXCEEDED"
	ErrCodeInvalidStatus    ErrorCode = "INVALID_APPLICATION_STATUS"

	ErrCodeEmployerNotFound    ErrorCode = "EMPLOYER_NOT_FOUND"
	ErrCodeApplicationNotFound ErrorCode = "APPLICATION_NOT_FOUND"
	ErrCodeTaskNotFound        ErrorCode = "PREP_TASK_NOT_FOUND"
	ErrCodeSessionNotFound     ErrorCode = "SESSION_NOT_FOUND"
	ErrCodeSessionExists       ErrorCode = "SESSION_EXISTS"

	ErrCodeAnnouncementNotFound ErrorCode = "ANNOUNCEMENT_NOT_FOUND"

	ErrCodeSessionStoreFailed ErrorCode = "SESSION_STORE_FAILED"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeQueryExecutionFailed     ErrorCode = "QUERY_EXECUTION_FAILED"
	ErrCodeQueryTimeout             ErrorCode = "QUERY_TIMEOUT"
	ErrCodeInvalidQueryType         ErrorCode = "INVALID_QUERY_TYPE"
	ErrCodeDatabaseInsertFailed     ErrorCode = "DATABASE_INSERT_FAILED"

	ErrCodeElasticsearchConnectionFailed ErrorCode = "ELASTICSEARCH_CONNECTION_FAILED"
	ErrCodeSearchQueryFailed             ErrorCode = "SEARCH_QUERY_FAILED"
	ErrCodeSearchTimeout                 ErrorCode = "SEARCH_TIMEOUT"
	ErrCodeIndexNotFound                 ErrorCode = "INDEX_NOT_FOUND"

	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"

	ErrCodeExternalService ErrorCode = "EXTERNAL_SERVICE_ERROR"
	ErrCodeTimeout         ErrorCode = "TIMEOUT_ERROR"
	ErrCodeInternal        ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// WithMetadata attaches a key/value pair and returns the same error.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}
	for k, v := range e.ErrorVariables {
		vars[k] = v
	}
	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

func newError(code ErrorCode, message, details string, retryable bool) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationFailedError is returned when job variables do not satisfy the task schema.
func NewValidationFailedError(details string) *StandardError {
	return newError(ErrCodeValidationFailed, "Input validation failed", details, false)
}

// NewNoMatchSignalsError is returned when a career prediction has neither skills nor interests.
func NewNoMatchSignalsError() *StandardError {
	return newError(ErrCodeNoMatchSignals, "At least one skill or interest is required", "", false)
}

func NewOfferLimitError(count, max int) *StandardError {
	return newError(ErrCodeOfferLimit, "Too many offers to compare",
		fmt.Sprintf("count: %d, max: %d", count, max), false)
}

func NewInvalidStatusError(status string) *StandardError {
	return newError(ErrCodeInvalidStatus, "Unknown application status",
		fmt.Sprintf("status: %s", status), false)
}

func NewEmployerNotFoundError(employerID string) *StandardError {
	return newError(ErrCodeEmployerNotFound, "Employer not found",
		fmt.Sprintf("employerId: %s", employerID), false)
}

func NewApplicationNotFoundError(applicationID string) *StandardError {
	return newError(ErrCodeApplicationNotFound, "Application not found",
		fmt.Sprintf("applicationId: %s", applicationID), false)
}

func NewTaskNotFoundError(taskID string) *StandardError {
	return newError(ErrCodeTaskNotFound, "Preparation task not found",
		fmt.Sprintf("taskId: %s", taskID), false)
}

func NewAnnouncementNotFoundError(announcementID string) *StandardError {
	return newError(ErrCodeAnnouncementNotFound, "Announcement not found",
		fmt.Sprintf("announcementId: %s", announcementID), false)
}

func NewSessionNotFoundError(sessionID string) *StandardError {
	return newError(ErrCodeSessionNotFound, "Session not found",
		fmt.Sprintf("sessionId: %s", sessionID), false)
}

func NewSessionExistsError(sessionID string) *StandardError {
	return newError(ErrCodeSessionExists, "Session already exists",
		fmt.Sprintf("sessionId: %s", sessionID), false)
}

// NewSessionStoreFailedError wraps a Redis or transaction failure in the session store.
func NewSessionStoreFailedError(err error) *StandardError {
	return newError(ErrCodeSessionStoreFailed, "Session store error", err.Error(), true)
}

// NewDatabaseConnectionFailedError creates a retryable database connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return newError(ErrCodeDatabaseConnectionFailed, "Database connection error", err.Error(), true)
}

// NewQueryExecutionFailedError creates a retryable query execution error.
func NewQueryExecutionFailedError(queryType string, err error) *StandardError {
	return newError(ErrCodeQueryExecutionFailed, "Database query execution error",
		fmt.Sprintf("queryType: %s, error: %s", queryType, err.Error()), true)
}

// NewQueryTimeoutError creates a retryable query timeout error.
func NewQueryTimeoutError(queryType string) *StandardError {
	return newError(ErrCodeQueryTimeout, "Database query timeout",
		fmt.Sprintf("queryType: %s", queryType), true)
}

// NewInvalidQueryTypeError creates a non-retryable invalid query type error.
func NewInvalidQueryTypeError(queryType string) *StandardError {
	return newError(ErrCodeInvalidQueryType, "Unsupported query type",
		fmt.Sprintf("queryType: %s", queryType), false)
}

// NewDatabaseInsertFailedError creates a retryable database insert error.
func NewDatabaseInsertFailedError(err error) *StandardError {
	return newError(ErrCodeDatabaseInsertFailed, "Database insert operation failed", err.Error(), true)
}

// NewElasticsearchConnectionFailedError creates a retryable Elasticsearch connection error.
func NewElasticsearchConnectionFailedError(err error) *StandardError {
	return newError(ErrCodeElasticsearchConnectionFailed, "Elasticsearch connection error", err.Error(), true)
}

// NewSearchQueryFailedError creates a retryable search query error.
func NewSearchQueryFailedError(index string, err error) *StandardError {
	return newError(ErrCodeSearchQueryFailed, "Elasticsearch query error",
		fmt.Sprintf("index: %s, error: %s", index, err.Error()), true)
}

// NewSearchTimeoutError creates a retryable search timeout error.
func NewSearchTimeoutError(index string) *StandardError {
	return newError(ErrCodeSearchTimeout, "Elasticsearch query timeout",
		fmt.Sprintf("index: %s", index), true)
}

// NewIndexNotFoundError creates a non-retryable index not found error.
func NewIndexNotFoundError(indexName string) *StandardError {
	return newError(ErrCodeIndexNotFound, "Elasticsearch index not found",
		fmt.Sprintf("indexName: %s", indexName), false)
}

// NewNotificationSendFailedError creates a retryable notification send error.
func NewNotificationSendFailedError(channel string, err error) *StandardError {
	return newError(ErrCodeNotificationSendFailed, "Notification delivery failed",
		fmt.Sprintf("channel: %s, error: %s", channel, err.Error()), true)
}

func NewExternalServiceError(service string, err error) *StandardError {
	return newError(ErrCodeExternalService, fmt.Sprintf("External service '%s' error", service), err.Error(), true)
}

func NewTimeoutError(service string, err error) *StandardError {
	return newError(ErrCodeTimeout, fmt.Sprintf("Service '%s' timeout", service), err.Error(), true)
}

func NewInternalError(err error) *StandardError {
	return newError(ErrCodeInternal, "Unexpected error", err.Error(), false)
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// BPMNErrorMapping maps internal error codes to the codes catch events are modelled on.
// Codes not listed here are passed through unchanged.
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeValidationFailed:              "VALIDATION_FAILED",
	ErrCodeNoMatchSignals:                "NO_MATCH_SIGNALS",
	ErrCodeOfferLimit:                    "OFFER_LIMIT_EXCEEDED",
	ErrCodeInvalidStatus:                 "INVALID_APPLICATION_STATUS",
	ErrCodeEmployerNotFound:              "EMPLOYER_NOT_FOUND",
	ErrCodeApplicationNotFound:           "APPLICATION_NOT_FOUND",
	ErrCodeTaskNotFound:                  "PREP_TASK_NOT_FOUND",
	ErrCodeSessionNotFound:               "SESSION_NOT_FOUND",
	ErrCodeSessionExists:                 "SESSION_EXISTS",
	ErrCodeAnnouncementNotFound:          "ANNOUNCEMENT_NOT_FOUND",
	ErrCodeSessionStoreFailed:            "SESSION_STORE_FAILED",
	ErrCodeDatabaseConnectionFailed:      "DATABASE_CONNECTION_FAILED",
	ErrCodeQueryExecutionFailed:          "QUERY_EXECUTION_FAILED",
	ErrCodeQueryTimeout:                  "QUERY_TIMEOUT",
	ErrCodeInvalidQueryType:              "INVALID_QUERY_TYPE",
	ErrCodeDatabaseInsertFailed:          "DATABASE_INSERT_FAILED",
	ErrCodeElasticsearchConnectionFailed: "ELASTICSEARCH_CONNECTION_FAILED",
	ErrCodeSearchQueryFailed:             "SEARCH_QUERY_FAILED",
	ErrCodeSearchTimeout:                 "SEARCH_TIMEOUT",
	ErrCodeIndexNotFound:                 "INDEX_NOT_FOUND",
	ErrCodeNotificationSendFailed:        "NOTIFICATION_SEND_FAILED",
}

// GetRetryCount returns the recommended retry count for a code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeSessionStoreFailed,
		ErrCodeDatabaseConnectionFailed,
		ErrCodeQueryExecutionFailed,
		ErrCodeDatabaseInsertFailed,
		ErrCodeElasticsearchConnectionFailed,
		ErrCodeSearchQueryFailed,
		ErrCodeNotificationSendFailed,
		ErrCodeExternalService:
		return 3

	case ErrCodeQueryTimeout,
		ErrCodeSearchTimeout,
		ErrCodeTimeout:
		return 2

	default:
		return 0
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code)
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	vars := map[string]interface{}{
		"originalErrorCode": string(stdErr.Code),
		"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
	}
	for k, v := range stdErr.Metadata {
		vars[k] = v
	}

	return &BPMNError{
		Code:           bpmnCode,
		Message:        stdErr.Message,
		Details:        stdErr.Details,
		Retryable:      stdErr.Retryable,
		Retries:        retries,
		ErrorVariables: vars,
	}
}

// ==========================
// 5. Utility Functions
// ==========================

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "SESSION"):
		return "SESSION"
	case strings.Contains(codeStr, "DATABASE") || strings.Contains(codeStr, "QUERY"):
		return "DATABASE"
	case strings.Contains(codeStr, "ELASTICSEARCH") || strings.Contains(codeStr, "SEARCH") || strings.Contains(codeStr, "INDEX"):
		return "SEARCH"
	case strings.Contains(codeStr, "NOTIFICATION"):
		return "NOTIFICATION"
	case strings.HasSuffix(codeStr, "NOT_FOUND"):
		return "NOT_FOUND"
	case strings.Contains(codeStr, "INVALID") || strings.Contains(codeStr, "VALIDATION"):
		return "VALIDATION"
	case code == ErrCodeNoMatchSignals || code == ErrCodeOfferLimit:
		return "BUSINESS_RULE"
	default:
		return "OTHER"
	}
}
