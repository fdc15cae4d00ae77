package delivery_test

import (
	"testing"

	"swiftbid/internal/core/domain/model/delivery"
	"swiftbid/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status delivery.Status
		want   string
	}{
		{delivery.StatusPending, "pending"},
		{delivery.StatusAccepted, "accepted"},
		{delivery.StatusInProgress, "in_progress"},
		{delivery.StatusCompleted, "completed"},
		{delivery.StatusCancelled, "cancelled"},
		{delivery.StatusUnknown, "unknown"},
		{delivery.Status(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every valid status", func(t *testing.T) {
		for _, name := range []string{"pending", "accepted", "in_progress", "completed", "cancelled"} {
			status, err := delivery.StatusFromString(name)

			require.NoError(t, err)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("should fail for unknown status", func(t *testing.T) {
		_, err := delivery.StatusFromString("shipped")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestStatus_Accept(t *testing.T) {
	t.Run("pending becomes accepted", func(t *testing.T) {
		newStatus, err := delivery.StatusPending.Accept()

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusAccepted, newStatus)
	})

	t.Run("all other statuses fail with current and attempted status", func(t *testing.T) {
		for _, s := range []delivery.Status{
			delivery.StatusAccepted,
			delivery.StatusInProgress,
			delivery.StatusCompleted,
			delivery.StatusCancelled,
		} {
			_, err := s.Accept()

			require.Error(t, err)
			var stateErr *errs.InvalidStateError
			require.ErrorAs(t, err, &stateErr)
			assert.Equal(t, s.String(), stateErr.Current)
			assert.Equal(t, "accepted", stateErr.Attempted)
		}
	})
}

func TestStatus_Start(t *testing.T) {
	t.Run("accepted becomes in_progress", func(t *testing.T) {
		newStatus, err := delivery.StatusAccepted.Start()

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusInProgress, newStatus)
	})

	t.Run("pending cannot start", func(t *testing.T) {
		_, err := delivery.StatusPending.Start()

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("in_progress becomes completed", func(t *testing.T) {
		newStatus, err := delivery.StatusInProgress.Complete()

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusCompleted, newStatus)
	})

	t.Run("accepted cannot complete directly", func(t *testing.T) {
		_, err := delivery.StatusAccepted.Complete()

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("non-terminal statuses can cancel", func(t *testing.T) {
		for _, s := range []delivery.Status{
			delivery.StatusPending,
			delivery.StatusAccepted,
			delivery.StatusInProgress,
		} {
			newStatus, err := s.Cancel()

			require.NoError(t, err)
			assert.Equal(t, delivery.StatusCancelled, newStatus)
		}
	})

	t.Run("terminal statuses cannot cancel", func(t *testing.T) {
		for _, s := range []delivery.Status{delivery.StatusCompleted, delivery.StatusCancelled} {
			_, err := s.Cancel()

			require.ErrorIs(t, err, errs.ErrInvalidState)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, delivery.StatusPending.IsTerminal())
	assert.False(t, delivery.StatusAccepted.IsTerminal())
	assert.False(t, delivery.StatusInProgress.IsTerminal())
	assert.True(t, delivery.StatusCompleted.IsTerminal())
	assert.True(t, delivery.StatusCancelled.IsTerminal())
}

func TestStatus_ValidateCanHaveAcceptedBid(t *testing.T) {
	t.Run("matched statuses require the reference", func(t *testing.T) {
		for _, s := range []delivery.Status{
			delivery.StatusAccepted,
			delivery.StatusInProgress,
			delivery.StatusCompleted,
		} {
			require.NoError(t, s.ValidateCanHaveAcceptedBid(true))
			require.Error(t, s.ValidateCanHaveAcceptedBid(false))
		}
	})

	t.Run("unmatched statuses forbid the reference", func(t *testing.T) {
		for _, s := range []delivery.Status{delivery.StatusPending, delivery.StatusCancelled} {
			require.NoError(t, s.ValidateCanHaveAcceptedBid(false))
			require.Error(t, s.ValidateCanHaveAcceptedBid(true))
		}
	})
}
