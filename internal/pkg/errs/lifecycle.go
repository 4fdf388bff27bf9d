package errs

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for the tender lifecycle taxonomy.
var (
	ErrInvalidState   = errors.New("invalid state")
	ErrDeadlinePassed = errors.New("deadline passed")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("conflict")
	ErrVetoedByPolicy = errors.New("vetoed by policy")
)

// InvalidStateError indicates that an operation is not permitted in the
// entity's current status.
type InvalidStateError struct {
	Operation string
	Current   string
	Cause     error
}

// NewInvalidStateError creates an InvalidStateError without a cause.
func NewInvalidStateError(operation, current string) *InvalidStateError {
	return &InvalidStateError{Operation: operation, Current: current}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping an underlying cause.
func NewInvalidStateErrorWithCause(operation, current string, cause error) *InvalidStateError {
	return &InvalidStateError{Operation: operation, Current: current, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: cannot %s in status %s (cause: %v)",
			ErrInvalidState, e.Operation, e.Current, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: cannot %s in status %s", ErrInvalidState, e.Operation, e.Current))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// DeadlinePassedError indicates that an offer was submitted after the
// tender's offer deadline.
type DeadlinePassedError struct {
	Deadline time.Time
	Cause    error
}

// NewDeadlinePassedError creates a DeadlinePassedError without a cause.
func NewDeadlinePassedError(deadline time.Time) *DeadlinePassedError {
	return &DeadlinePassedError{Deadline: deadline}
}

// NewDeadlinePassedErrorWithCause creates a DeadlinePassedError wrapping an underlying cause.
func NewDeadlinePassedErrorWithCause(deadline time.Time, cause error) *DeadlinePassedError {
	return &DeadlinePassedError{Deadline: deadline, Cause: cause}
}

func (e *DeadlinePassedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: deadline was %s (cause: %v)",
			ErrDeadlinePassed, e.Deadline.Format(time.RFC3339), e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: deadline was %s", ErrDeadlinePassed, e.Deadline.Format(time.RFC3339)))
}

func (e *DeadlinePassedError) Unwrap() error {
	return ErrDeadlinePassed
}

// ForbiddenError indicates that a party attempted an operation it was not
// invited to, such as an uninvited carrier bidding on a tender.
type ForbiddenError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewForbiddenError creates a ForbiddenError without a cause.
func NewForbiddenError(paramName string, id any) *ForbiddenError {
	return &ForbiddenError{ParamName: paramName, ID: id}
}

// NewForbiddenErrorWithCause creates a ForbiddenError wrapping an underlying cause.
func NewForbiddenErrorWithCause(paramName string, id any, cause error) *ForbiddenError {
	return &ForbiddenError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ForbiddenError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %v)",
			ErrForbidden, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s %v", ErrForbidden, e.ParamName, e.ID))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// ConflictError indicates that an operation collides with an already
// established fact, such as a duplicate offer submission.
type ConflictError struct {
	ParamName string
	Cause     error
}

// NewConflictError creates a ConflictError without a cause.
func NewConflictError(paramName string) *ConflictError {
	return &ConflictError{ParamName: paramName}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(paramName string, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %v)", ErrConflict, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrConflict, e.ParamName))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// VetoedByPolicyError indicates that a pre-transition hook rejected the
// operation. Reason carries the hook's reason verbatim.
type VetoedByPolicyError struct {
	Point  string
	Reason string
}

// NewVetoedByPolicyError creates a VetoedByPolicyError for the given hook point.
func NewVetoedByPolicyError(point, reason string) *VetoedByPolicyError {
	return &VetoedByPolicyError{Point: point, Reason: reason}
}

func (e *VetoedByPolicyError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s: %s", ErrVetoedByPolicy, e.Point, e.Reason))
}

func (e *VetoedByPolicyError) Unwrap() error {
	return ErrVetoedByPolicy
}
