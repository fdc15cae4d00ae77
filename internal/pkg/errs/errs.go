package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Code is a stable, machine-readable identifier for an error kind.
// Presentation layers dispatch on codes instead of matching message text.
type Code string

const (
	// CodeValidation identifies malformed or missing input. The error carries
	// every failing field so a form can render all violations at once.
	CodeValidation Code = "validation_error"

	// CodeNotFound identifies a lookup by an unknown identifier.
	CodeNotFound Code = "not_found"

	// CodeAuthorization identifies a caller lacking rights over an entity.
	CodeAuthorization Code = "authorization_error"

	// CodeInvalidState identifies an operation that is not legal in the
	// entity's current state. The error carries both the current and the
	// attempted state.
	CodeInvalidState Code = "invalid_state"

	// CodeDuplicateBid identifies a rider submitting a second live bid on a
	// delivery they already bid on.
	CodeDuplicateBid Code = "duplicate_bid"
)

// Sentinel errors for classification with errors.Is. Every structured error in
// this package unwraps to exactly one of these.
var (
	ErrValidation     = errors.New("validation failed")
	ErrObjectNotFound = errors.New("object not found")
	ErrAuthorization  = errors.New("caller is not authorized")
	ErrInvalidState   = errors.New("operation not allowed in current state")
	ErrDuplicateBid   = errors.New("rider already has an active bid on this delivery")
)

// CodeOf maps an error produced by this package to its stable code.
// Returns the empty Code for errors of unknown origin.
func CodeOf(err error) Code {
	switch {
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrObjectNotFound):
		return CodeNotFound
	case errors.Is(err, ErrAuthorization):
		return CodeAuthorization
	case errors.Is(err, ErrInvalidState):
		return CodeInvalidState
	case errors.Is(err, ErrDuplicateBid):
		return CodeDuplicateBid
	default:
		return ""
	}
}

// FieldViolation names a single invalid input field and what is wrong with it.
type FieldViolation struct {
	Field   string
	Message string
}

// ValidationError reports every violated field of an input, not just the
// first, so a caller can render all form errors in one pass.
type ValidationError struct {
	Violations []FieldViolation
}

// NewValidationError creates a ValidationError from the given violations.
func NewValidationError(violations ...FieldViolation) *ValidationError {
	return &ValidationError{Violations: violations}
}

// NewFieldError creates a ValidationError with a single violation.
// Domain setters use this; constructors merge them via JoinValidation.
func NewFieldError(field, message string) *ValidationError {
	return &ValidationError{Violations: []FieldViolation{{Field: field, Message: message}}}
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return ErrValidation.Error()
	}

	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// JoinValidation merges the non-nil errors into a single error. All
// *ValidationError operands are folded into one ValidationError carrying the
// union of their field violations; any other errors are joined alongside it
// with errors.Join.
func JoinValidation(errsToJoin ...error) error {
	var violations []FieldViolation
	var others []error

	for _, err := range errsToJoin {
		if err == nil {
			continue
		}
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			violations = append(violations, vErr.Violations...)
			continue
		}
		others = append(others, err)
	}

	if len(violations) > 0 {
		others = append([]error{NewValidationError(violations...)}, others...)
	}
	if len(others) == 0 {
		return nil
	}
	if len(others) == 1 {
		return others[0]
	}
	return errors.Join(others...)
}

// PrefixFields renames every field violation in err to prefix + "." + field,
// for validating nested input structures. Non-validation errors and nil pass
// through unchanged.
func PrefixFields(prefix string, err error) error {
	var vErr *ValidationError
	if err == nil || !errors.As(err, &vErr) {
		return err
	}

	violations := make([]FieldViolation, 0, len(vErr.Violations))
	for _, v := range vErr.Violations {
		violations = append(violations, FieldViolation{
			Field:   prefix + "." + v.Field,
			Message: v.Message,
		})
	}
	return NewValidationError(violations...)
}

// ObjectNotFoundError indicates a lookup by an identifier that does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        string
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named
// parameter and identifier.
func NewObjectNotFoundError(paramName, id string) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping the
// underlying storage error.
func NewObjectNotFoundErrorWithCause(paramName, id string, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s (cause: %s)", ErrObjectNotFound.Error(), e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrObjectNotFound.Error(), e.ParamName, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// AuthorizationError indicates that the authenticated caller has no rights to
// perform an action on the named entity.
type AuthorizationError struct {
	CallerID  string
	Action    string
	ParamName string
	ID        string
}

// NewAuthorizationError creates an AuthorizationError describing who tried
// to do what to which entity.
func NewAuthorizationError(callerID, action, paramName, id string) *AuthorizationError {
	return &AuthorizationError{CallerID: callerID, Action: action, ParamName: paramName, ID: id}
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("%s: caller %s may not %s %s %s",
		ErrAuthorization.Error(), e.CallerID, e.Action, e.ParamName, e.ID)
}

func (e *AuthorizationError) Unwrap() error {
	return ErrAuthorization
}

// InvalidStateError indicates a state-machine transition that is not in the
// transition table. It carries both the entity's current state and the state
// the caller attempted to reach, so "already completed" is distinguishable
// from "no such transition".
type InvalidStateError struct {
	ParamName string
	Current   string
	Attempted string
}

// NewInvalidStateError creates an InvalidStateError for the named entity,
// its current state, and the state that was attempted.
func NewInvalidStateError(paramName, current, attempted string) *InvalidStateError {
	return &InvalidStateError{ParamName: paramName, Current: current, Attempted: attempted}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s is %s, attempted %s",
		ErrInvalidState.Error(), e.ParamName, e.Current, e.Attempted)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// DuplicateBidError indicates a rider already holds a non-terminal bid on the
// delivery. The rider must withdraw the existing bid before placing another.
type DuplicateBidError struct {
	DeliveryID    string
	RiderID       string
	ExistingBidID string
}

// NewDuplicateBidError creates a DuplicateBidError naming the delivery, the
// rider, and the bid that is already live.
func NewDuplicateBidError(deliveryID, riderID, existingBidID string) *DuplicateBidError {
	return &DuplicateBidError{DeliveryID: deliveryID, RiderID: riderID, ExistingBidID: existingBidID}
}

func (e *DuplicateBidError) Error() string {
	return fmt.Sprintf("%s: rider %s already bid %s on delivery %s",
		ErrDuplicateBid.Error(), e.RiderID, e.ExistingBidID, e.DeliveryID)
}

func (e *DuplicateBidError) Unwrap() error {
	return ErrDuplicateBid
}
