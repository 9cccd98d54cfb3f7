package common

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is matched by every NotFoundError through errors.Is.
	ErrNotFound = errors.New("not found")

	// ErrTableOccupied is wrapped by the ValidationError returned when an order
	// targets a table that is already occupied.
	ErrTableOccupied = errors.New("table is occupied")
)

// ValidationError reports a malformed or missing request field. It is always
// returned before any mutation is attempted.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NotFoundError reports an identity that does not resolve to a stored entity.
type NotFoundError struct {
	Resource string
	ID       uuid.UUID
}

func NewNotFoundError(resource string, id uuid.UUID) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// AppliedDeduction records a ledger deduction that was committed before a
// later step of the same request failed.
type AppliedDeduction struct {
	ItemID uuid.UUID `json:"itemId"`
	Amount float64   `json:"amount"`
}

// PersistenceError wraps a failed store operation. Applied lists the deductions
// already committed by the request; they are not compensated unless RolledBack
// is set, which only happens when the request ran inside a transaction.
type PersistenceError struct {
	Op         string
	Err        error
	Applied    []AppliedDeduction
	RolledBack bool
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
