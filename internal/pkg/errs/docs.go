// Package errs provides the standardized error taxonomy for the delivery
// marketplace application. It implements a consistent pattern for error
// creation, formatting, and unwrapping that is used throughout the codebase.
//
// The taxonomy covers the failure kinds of the matching core:
//   - ValidationError: malformed or missing input, carrying all failing fields
//   - ObjectNotFoundError: lookup by an unknown identifier
//   - AuthorizationError: caller lacks rights over the entity
//   - InvalidStateError: operation not legal in the entity's current state,
//     carrying both the current and the attempted state
//   - DuplicateBidError: rider already holds a live bid on the delivery
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInvalidState)
//   - A struct type with fields for structured detail
//   - Constructor functions
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Every kind additionally maps to a stable Code via CodeOf, so a presentation
// layer can react programmatically (redirect on authorization failures,
// highlight fields on validation failures) without matching message text.
package errs
