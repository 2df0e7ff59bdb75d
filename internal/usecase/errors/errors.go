package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrConflict      = errors.New("resource conflict")
	ErrInternalError = errors.New("internal server error")
)

// Sync errors
var (
	ErrUnknownSource  = errors.New("unknown sync source")
	ErrSyncInProgress = errors.New("sync already in progress for this source")
	ErrSyncFailed     = errors.New("sync run failed")
)

// Workplan errors
var (
	ErrWorkplanNotFound      = errors.New("workplan version not found")
	ErrInvalidWorkplanStatus = errors.New("invalid workplan item status")
	ErrEmptyWorkplan         = errors.New("workplan version must contain at least one item")
)

// Comparison errors
var (
	ErrActionNotFound      = errors.New("action not found")
	ErrComparisonSameInput = errors.New("cannot compare an action with itself")
)
