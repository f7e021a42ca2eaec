package domain

import (
	"errors"
	"fmt"
)

// Error kinds shared by usecases and repositories.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrUnavailable  = errors.New("storage unavailable")
	ErrBusy         = errors.New("already running")
)

// Error carries the API code and the entity involved, if any.
type Error struct {
	Err     error
	Code    string
	Entity  string
	ID      string
	Details string
}

func (e *Error) Error() string {
	msg := e.Err.Error()
	if e.Entity != "" {
		msg = fmt.Sprintf("%s %s", e.Entity, msg)
	}
	if e.ID != "" {
		msg = fmt.Sprintf("%s (id: %s)", msg, e.ID)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// API codes, kept in sync with pkg/apiErrors.
const (
	codeInvalidRequest = "VAL_001"
	codeInvalidFormat  = "VAL_003"
	codeNotFound       = "VAL_004"
	codeConflict       = "VAL_005"
	codeJobRunning     = "SRV_003"
	codeUnavailable    = "SRV_004"
)

func NewNotFoundError(entity, id string) *Error {
	return &Error{Err: ErrNotFound, Code: codeNotFound, Entity: entity, ID: id}
}

func NewInvalidInputError(details string) *Error {
	return &Error{Err: ErrInvalidInput, Code: codeInvalidRequest, Details: details}
}

func NewInvalidFormatError(details string) *Error {
	return &Error{Err: ErrInvalidInput, Code: codeInvalidFormat, Details: details}
}

func NewConflictError(entity, details string) *Error {
	return &Error{Err: ErrConflict, Code: codeConflict, Entity: entity, Details: details}
}

func NewUnavailableError(cause error) *Error {
	details := ""
	if cause != nil {
		details = cause.Error()
	}
	return &Error{Err: ErrUnavailable, Code: codeUnavailable, Details: details}
}

// NewBusyError reports a job that refused to start because a previous run is in flight.
func NewBusyError(job string) *Error {
	return &Error{Err: ErrBusy, Code: codeJobRunning, Entity: job}
}

// AsStorageError keeps *Error values intact and marks anything else as unavailable storage.
func AsStorageError(err error) error {
	if err == nil {
		return nil
	}
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return err
	}
	return NewUnavailableError(err)
}
