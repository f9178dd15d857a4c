package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// Validation reports locally detected bad input. It is never the result of a
// store round trip.
func Validation(message string, err error) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

// SchemaMismatch reports a field or column the store does not know about.
// Callers surface it as a persistent banner rather than a transient toast,
// since it signals a deployment or migration problem, not a user mistake.
func SchemaMismatch(message string, err error) *AppError {
	return &AppError{
		Code:    "SCHEMA_MISMATCH",
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// Transport reports store unavailability. Retries happen only at user-initiated
// granularity; nothing auto-retries a failed write.
func Transport(message string, err error) *AppError {
	return &AppError{
		Code:    "TRANSPORT_ERROR",
		Message: message,
		Status:  http.StatusServiceUnavailable,
		Err:     err,
	}
}

// InvalidTransition reports a status change that is not legal from the entity's
// current state. Rejected before any store call. The legal targets, if any,
// are named so the operator can correct the request.
func InvalidTransition(from, to string, legal []string) *AppError {
	msg := fmt.Sprintf("cannot transition from %s to %s", from, to)
	if len(legal) > 0 {
		msg = fmt.Sprintf("%s (legal targets: %s)", msg, strings.Join(legal, ", "))
	}
	return &AppError{
		Code:    "INVALID_TRANSITION",
		Message: msg,
		Status:  http.StatusConflict,
		Err:     nil,
	}
}

// PersistenceFailed reports that an optimistic local mutation could not be
// confirmed by the store. The optimistic copy has already been rolled back.
func PersistenceFailed(message string, err error) *AppError {
	return &AppError{
		Code:    "PERSISTENCE_FAILED",
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func Unauthorized(message string, err error) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

func Forbidden(message string, err error) *AppError {
	return &AppError{
		Code:    "FORBIDDEN",
		Message: message,
		Status:  http.StatusForbidden,
		Err:     err,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
