package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error rejected locally before
// any remote call
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// RemoteError wraps a failure reported by the persistence collaborator.
// It is non-fatal; the synchronization layer reverts or reconciles local
// state and surfaces it as a notice.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote %s failed: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrDealNotFound = &NotFoundError{Entity: "deal"}
	ErrRepNotFound  = &NotFoundError{Entity: "sales rep"}
)

// Business Logic Errors
var (
	ErrInvalidStage        = errors.New("invalid pipeline stage")
	ErrInvalidCategory     = errors.New("invalid deal category")
	ErrInvalidBusinessType = errors.New("invalid business type")
	ErrInvalidDirection    = errors.New("stage move direction must be next or prev")
	ErrQuotaNotPositive    = errors.New("quota must be greater than zero")
	ErrStoreClosed         = errors.New("store is closed")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsRemote checks if an error is a RemoteError
func IsRemote(err error) bool {
	var remoteErr *RemoteError
	return errors.As(err, &remoteErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewRemoteError wraps a collaborator failure with the operation name
func NewRemoteError(op string, err error) error {
	return &RemoteError{Op: op, Err: err}
}
