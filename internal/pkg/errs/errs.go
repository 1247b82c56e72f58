package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the unwrap targets for all typed errors in this package.
// Callers classify failures with errors.Is against these values.
var (
	ErrValueIsRequired    = errors.New("value is required")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrObjectNotFound     = errors.New("object not found")
	ErrStateConflict      = errors.New("state conflict")
	ErrInvariantViolation = errors.New("invariant violation")
	ErrGatewayFailure     = errors.New("gateway failure")
)

// sanitize collapses newlines so multi-line input cannot break log lines.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ValueIsRequiredError indicates a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError with an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value was present but not acceptable.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError with an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a value fell outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError describing the violated bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError with an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates a lookup failed to find the requested object.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError with an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// StateConflictError indicates an operation that is not legal in the current
// order state, such as refunding an already-refunded order or generating a
// second shipping label. These failures are fully recoverable by the caller.
type StateConflictError struct {
	Operation string
	Reason    string
	Cause     error
}

// NewStateConflictError creates a StateConflictError for the given operation and reason.
func NewStateConflictError(operation, reason string) *StateConflictError {
	return &StateConflictError{Operation: operation, Reason: reason}
}

// NewStateConflictErrorWithCause creates a StateConflictError with an underlying cause.
func NewStateConflictErrorWithCause(operation, reason string, cause error) *StateConflictError {
	return &StateConflictError{Operation: operation, Reason: reason, Cause: cause}
}

func (e *StateConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s: %s (cause: %s)", ErrStateConflict, e.Operation, e.Reason, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s: %s", ErrStateConflict, e.Operation, e.Reason))
}

func (e *StateConflictError) Unwrap() error {
	return ErrStateConflict
}

// InvariantViolationError indicates a condition that must be unreachable given
// correct locking, such as a refund total exceeding the order total. Observing
// one is a bug: the operation is refused and the error is never auto-corrected.
type InvariantViolationError struct {
	Invariant string
	Details   string
}

// NewInvariantViolationError creates an InvariantViolationError naming the broken invariant.
func NewInvariantViolationError(invariant, details string) *InvariantViolationError {
	return &InvariantViolationError{Invariant: invariant, Details: details}
}

func (e *InvariantViolationError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s: %s", ErrInvariantViolation, e.Invariant, e.Details))
}

func (e *InvariantViolationError) Unwrap() error {
	return ErrInvariantViolation
}

// GatewayError indicates a failed or timed-out call to an external carrier or
// sales-channel API. No local state was committed unless Ambiguous is set:
// an ambiguous failure means the external commit call was already issued and
// its outcome is unknown, so the operation was flagged for manual reconciliation.
type GatewayError struct {
	Gateway   string
	Operation string
	Ambiguous bool
	Cause     error
}

// NewGatewayError creates a GatewayError for a call that failed before any external commit.
func NewGatewayError(gateway, operation string, cause error) *GatewayError {
	return &GatewayError{Gateway: gateway, Operation: operation, Cause: cause}
}

// NewAmbiguousGatewayError creates a GatewayError for a commit call whose outcome is unknown.
func NewAmbiguousGatewayError(gateway, operation string, cause error) *GatewayError {
	return &GatewayError{Gateway: gateway, Operation: operation, Ambiguous: true, Cause: cause}
}

func (e *GatewayError) Error() string {
	msg := fmt.Sprintf("%s: %s %s", ErrGatewayFailure, e.Gateway, e.Operation)
	if e.Ambiguous {
		msg += " (outcome unknown, flagged for reconciliation)"
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e *GatewayError) Unwrap() error {
	return ErrGatewayFailure
}
