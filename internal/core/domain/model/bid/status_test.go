package bid_test

import (
	"testing"

	"swiftbid/internal/core/domain/model/bid"
	"swiftbid/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status bid.Status
		want   string
	}{
		{bid.StatusPending, "pending"},
		{bid.StatusAccepted, "accepted"},
		{bid.StatusRejected, "rejected"},
		{bid.StatusWithdrawn, "withdrawn"},
		{bid.StatusUnknown, "unknown"},
		{bid.Status(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every valid status", func(t *testing.T) {
		for _, name := range []string{"pending", "accepted", "rejected", "withdrawn"} {
			status, err := bid.StatusFromString(name)

			require.NoError(t, err)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("should fail for unknown status", func(t *testing.T) {
		_, err := bid.StatusFromString("expired")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("pending transitions once to any terminal status", func(t *testing.T) {
		accepted, err := bid.StatusPending.Accept()
		require.NoError(t, err)
		assert.Equal(t, bid.StatusAccepted, accepted)

		rejected, err := bid.StatusPending.Reject()
		require.NoError(t, err)
		assert.Equal(t, bid.StatusRejected, rejected)

		withdrawn, err := bid.StatusPending.Withdraw()
		require.NoError(t, err)
		assert.Equal(t, bid.StatusWithdrawn, withdrawn)
	})

	t.Run("terminal statuses admit no transition", func(t *testing.T) {
		for _, s := range []bid.Status{bid.StatusAccepted, bid.StatusRejected, bid.StatusWithdrawn} {
			_, err := s.Accept()
			require.ErrorIs(t, err, errs.ErrInvalidState)

			_, err = s.Reject()
			require.ErrorIs(t, err, errs.ErrInvalidState)

			_, err = s.Withdraw()
			require.ErrorIs(t, err, errs.ErrInvalidState)
		}
	})

	t.Run("errors carry current and attempted status", func(t *testing.T) {
		_, err := bid.StatusRejected.Accept()

		var stateErr *errs.InvalidStateError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, "rejected", stateErr.Current)
		assert.Equal(t, "accepted", stateErr.Attempted)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, bid.StatusPending.IsTerminal())
	assert.True(t, bid.StatusAccepted.IsTerminal())
	assert.True(t, bid.StatusRejected.IsTerminal())
	assert.True(t, bid.StatusWithdrawn.IsTerminal())
}
