package ingestors

import (
	"request-metrics/internal/shared/svcerrors"
)

// IngestBuffer errors
const (
	CodeValidationFailed = "ING_1000"
	CodeDuplicateEvent   = "ING_1001"
	CodeLateEvent        = "ING_1002"
)

// errValidationFailed returns an error for malformed events and request bodies.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(CodeValidationFailed, msg, cause)
}

// errDuplicateEvent returns an error when the event id was already accepted within retention.
func errDuplicateEvent(msg string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(CodeDuplicateEvent, msg, nil)
}

// errLateEvent returns an error when the event belongs to a window that is already closed.
func errLateEvent(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(CodeLateEvent, "event belongs to a closed window", cause)
}
