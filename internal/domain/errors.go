package domain

import "net/http"

// AppError is a domain error carrying the HTTP status surfaced to the
// caller, a detailed message and a short user-facing summary. It
// propagates unchanged to the boundary; no retry or recovery happens in
// between.
type AppError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Summary string `json:"summary"`
}

func (e *AppError) Error() string {
	return e.Message
}

// NewValidationError reports malformed or disallowed input.
func NewValidationError(message, summary string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message, Summary: summary}
}

// NewNotFoundError reports an absent or soft-deleted entity.
func NewNotFoundError(message, summary string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: message, Summary: summary}
}

// NewConflictError reports a duplicate on creation.
func NewConflictError(message, summary string) *AppError {
	return &AppError{Status: http.StatusConflict, Message: message, Summary: summary}
}

// NewIllegalTransitionError reports a status-machine rule violation.
func NewIllegalTransitionError(message, summary string) *AppError {
	return &AppError{Status: http.StatusConflict, Message: message, Summary: summary}
}
