package http

import (
	"errors"
	"net/http"

	"swiftbid/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Codes for failures that originate in this layer rather than in the
// application taxonomy.
const (
	codeUnauthenticated = "unauthenticated"
	codeInternal        = "internal_error"
)

// statusFromError maps the application error taxonomy onto HTTP statuses.
// Unknown errors stay 500 so infrastructure failures are never mistaken for
// client mistakes.
func statusFromError(err error) int {
	switch errs.CodeOf(err) {
	case errs.CodeValidation:
		return http.StatusBadRequest
	case errs.CodeNotFound:
		return http.StatusNotFound
	case errs.CodeAuthorization:
		return http.StatusForbidden
	case errs.CodeInvalidState:
		return http.StatusConflict
	case errs.CodeDuplicateBid:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as the JSON error envelope. The body carries the
// taxonomy code plus the kind's structured detail: the field violations of a
// validation error, the current and attempted states of an invalid-state
// conflict, the existing bid of a duplicate-bid conflict.
func writeError(ctx echo.Context, err error) error {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		return ctx.JSON(status, Error{Code: codeInternal, Message: "internal error"})
	}

	body := Error{Code: string(errs.CodeOf(err)), Message: err.Error()}

	var vErr *errs.ValidationError
	var sErr *errs.InvalidStateError
	var dErr *errs.DuplicateBidError
	switch {
	case errors.As(err, &vErr):
		body.Violations = make([]FieldViolation, 0, len(vErr.Violations))
		for _, v := range vErr.Violations {
			body.Violations = append(body.Violations, FieldViolation{
				Field:   v.Field,
				Message: v.Message,
			})
		}
	case errors.As(err, &sErr):
		body.Current = sErr.Current
		body.Attempted = sErr.Attempted
	case errors.As(err, &dErr):
		body.ExistingBidID = &dErr.ExistingBidID
	}

	return ctx.JSON(status, body)
}

func writeUnauthenticated(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, Error{
		Code:    codeUnauthenticated,
		Message: message,
	})
}
