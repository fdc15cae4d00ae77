package delivery_test

import (
	"testing"

	"swiftbid/internal/core/domain/model/delivery"
	"swiftbid/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPackageDetails(t *testing.T) {
	t.Run("should create valid package details", func(t *testing.T) {
		details, err := delivery.NewPackageDetails(2.5, 30, 20, 10, "spare parts")

		require.NoError(t, err)
		require.NoError(t, details.Validate())
		assert.InDelta(t, 2.5, details.Weight(), 0.001)
		assert.InDelta(t, 30.0, details.Length(), 0.001)
		assert.InDelta(t, 20.0, details.Width(), 0.001)
		assert.InDelta(t, 10.0, details.Height(), 0.001)
		assert.Equal(t, "spare parts", details.Description())
	})

	t.Run("should fail with zero weight", func(t *testing.T) {
		_, err := delivery.NewPackageDetails(0, 30, 20, 10, "spare parts")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "packageDetails.weight")
	})

	t.Run("should fail with negative dimension", func(t *testing.T) {
		_, err := delivery.NewPackageDetails(2.5, 30, -1, 10, "spare parts")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "packageDetails.dimensions.width")
	})

	t.Run("should fail with empty description", func(t *testing.T) {
		_, err := delivery.NewPackageDetails(2.5, 30, 20, 10, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "packageDetails.description")
	})

	t.Run("should report all violations together", func(t *testing.T) {
		_, err := delivery.NewPackageDetails(0, 0, 0, 0, "")

		require.Error(t, err)
		var vErr *errs.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Len(t, vErr.Violations, 5)
	})
}

func TestPackageDetails_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var details delivery.PackageDetails

		err := details.Validate()

		require.Error(t, err)
		assert.Equal(t, delivery.ErrPackageDetailsIsNotConstructed, err)
	})
}

func TestTypeFromString(t *testing.T) {
	t.Run("should parse every valid type", func(t *testing.T) {
		for _, name := range []string{"bike", "truck", "air", "fuel"} {
			typ, err := delivery.TypeFromString(name)

			require.NoError(t, err)
			assert.Equal(t, name, typ.String())
		}
	})

	t.Run("should fail for unknown type", func(t *testing.T) {
		_, err := delivery.TypeFromString("drone")

		require.Error(t, err)
		var vErr *errs.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "deliveryType", vErr.Violations[0].Field)
	})
}

func TestPaymentStatusFromString(t *testing.T) {
	t.Run("should parse valid payment statuses", func(t *testing.T) {
		for _, name := range []string{"unpaid", "paid"} {
			status, err := delivery.PaymentStatusFromString(name)

			require.NoError(t, err)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("should fail for unknown payment status", func(t *testing.T) {
		_, err := delivery.PaymentStatusFromString("refunded")

		require.Error(t, err)
	})
}
