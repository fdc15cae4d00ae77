package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"swiftbid/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) Error {
	t.Helper()

	var body Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteError(t *testing.T) {
	t.Run("validation error lists every violated field", func(t *testing.T) {
		ctx, rec := newTestContext(t)
		err := errs.NewValidationError(
			errs.FieldViolation{Field: "amount", Message: "must be positive"},
			errs.FieldViolation{Field: "estimatedTime", Message: "must be positive"},
		)

		require.NoError(t, writeError(ctx, err))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, string(errs.CodeValidation), body.Code)
		require.Len(t, body.Violations, 2)
		assert.Equal(t, "amount", body.Violations[0].Field)
		assert.Equal(t, "estimatedTime", body.Violations[1].Field)
	})

	t.Run("invalid state carries current and attempted", func(t *testing.T) {
		ctx, rec := newTestContext(t)
		err := errs.NewInvalidStateError("delivery", "accepted", "bid submission")

		require.NoError(t, writeError(ctx, err))

		assert.Equal(t, http.StatusConflict, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, string(errs.CodeInvalidState), body.Code)
		assert.Equal(t, "accepted", body.Current)
		assert.Equal(t, "bid submission", body.Attempted)
	})

	t.Run("duplicate bid names the existing bid", func(t *testing.T) {
		ctx, rec := newTestContext(t)
		err := errs.NewDuplicateBidError("d-1", "r-1", "b-1")

		require.NoError(t, writeError(ctx, err))

		assert.Equal(t, http.StatusConflict, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, string(errs.CodeDuplicateBid), body.Code)
		require.NotNil(t, body.ExistingBidID)
		assert.Equal(t, "b-1", *body.ExistingBidID)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		ctx, rec := newTestContext(t)

		require.NoError(t, writeError(ctx, errs.NewObjectNotFoundError("bid", "b-1")))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, string(errs.CodeNotFound), decodeError(t, rec).Code)
	})

	t.Run("authorization maps to 403", func(t *testing.T) {
		ctx, rec := newTestContext(t)

		require.NoError(t, writeError(ctx,
			errs.NewAuthorizationError("c-1", "cancel", "delivery", "d-1")))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, string(errs.CodeAuthorization), decodeError(t, rec).Code)
	})

	t.Run("unknown errors hide their message", func(t *testing.T) {
		ctx, rec := newTestContext(t)

		require.NoError(t, writeError(ctx, errors.New("connection refused")))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, codeInternal, body.Code)
		assert.Equal(t, "internal error", body.Message)
		assert.Empty(t, body.Violations)
	})
}
