package commands_test

import (
	"testing"
	"time"

	"swiftbid/internal/core/application/usecases/commands"
	"swiftbid/internal/core/domain/model/delivery"
	"swiftbid/internal/core/domain/model/kernel"
	"swiftbid/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateDeliveryCommand(t *testing.T) commands.CreateDeliveryCommand {
	t.Helper()

	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(), kernel.NewUUID(), "bike",
		"1 Warehouse Rd", 51.5072, -0.1276,
		"2 Customer Ave", 51.5155, -0.0922,
		2.5, 30, 20, 10, "spare parts",
		time.Now().Add(time.Hour), 45,
	)
	require.NoError(t, err)
	return cmd
}

func TestNewCreateDeliveryCommand(t *testing.T) {
	t.Run("valid input constructs the command", func(t *testing.T) {
		cmd := validCreateDeliveryCommand(t)

		require.NoError(t, cmd.Validate())
		assert.Equal(t, delivery.TypeBike, cmd.DeliveryType())
		assert.Equal(t, "1 Warehouse Rd", cmd.Pickup().Address())
		assert.Equal(t, "2 Customer Ave", cmd.Destination().Address())
		assert.InDelta(t, 45.0, cmd.Price(), 0.001)
	})

	t.Run("every violated field is reported at once", func(t *testing.T) {
		_, err := commands.NewCreateDeliveryCommand(
			kernel.NewUUID(), kernel.NewUUID(), "drone",
			"", 91, -0.1276,
			"2 Customer Ave", 51.5155, -0.0922,
			0, 30, 20, 10, "spare parts",
			time.Now().Add(-time.Hour), -5,
		)

		require.Error(t, err)
		var vErr *errs.ValidationError
		require.ErrorAs(t, err, &vErr)

		fields := make([]string, 0, len(vErr.Violations))
		for _, v := range vErr.Violations {
			fields = append(fields, v.Field)
		}
		assert.Contains(t, fields, "deliveryType")
		assert.Contains(t, fields, "pickupLocation.address")
		assert.Contains(t, fields, "pickupLocation.latitude")
		assert.Contains(t, fields, "packageDetails.weight")
		assert.Contains(t, fields, "pickupTime")
		assert.Contains(t, fields, "price")
	})

	t.Run("nested geo violations carry their location prefix", func(t *testing.T) {
		_, err := commands.NewCreateDeliveryCommand(
			kernel.NewUUID(), kernel.NewUUID(), "bike",
			"1 Warehouse Rd", 51.5072, -0.1276,
			"2 Customer Ave", 51.5155, -181,
			2.5, 30, 20, 10, "spare parts",
			time.Now().Add(time.Hour), 45,
		)

		require.Error(t, err)
		var vErr *errs.ValidationError
		require.ErrorAs(t, err, &vErr)
		require.Len(t, vErr.Violations, 1)
		assert.Equal(t, "destination.longitude", vErr.Violations[0].Field)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.CreateDeliveryCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateDeliveryCommandIsNotConstructed)
	})
}
