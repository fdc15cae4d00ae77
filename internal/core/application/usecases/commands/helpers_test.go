package commands_test

import (
	"testing"
	"time"

	"swiftbid/internal/core/domain/model/bid"
	"swiftbid/internal/core/domain/model/delivery"
	"swiftbid/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func makePendingDelivery(t *testing.T, customerID kernel.UUID) *delivery.Delivery {
	t.Helper()

	pickup, err := kernel.NewGeoPoint("1 Warehouse Rd", 51.5072, -0.1276)
	require.NoError(t, err)
	destination, err := kernel.NewGeoPoint("2 Customer Ave", 51.5155, -0.0922)
	require.NoError(t, err)
	details, err := delivery.NewPackageDetails(2.5, 30, 20, 10, "spare parts")
	require.NoError(t, err)

	d, err := delivery.NewDelivery(
		kernel.NewUUID(), customerID, delivery.TypeBike,
		pickup, destination, details,
		time.Now().Add(time.Hour), 45,
	)
	require.NoError(t, err)
	return d
}

func makeStalePendingDelivery(t *testing.T, customerID kernel.UUID, age time.Duration) *delivery.Delivery {
	t.Helper()

	fresh := makePendingDelivery(t, customerID)
	stale, err := delivery.RestoreDelivery(
		fresh.ID(), fresh.CustomerID(), fresh.Type(),
		fresh.Pickup(), fresh.Destination(), fresh.PackageDetails(),
		time.Now().Add(-age), fresh.Price(),
		fresh.PaymentStatus(), fresh.Status(), nil,
	)
	require.NoError(t, err)
	return stale
}

func makePendingBid(t *testing.T, deliveryID, riderID kernel.UUID) *bid.Bid {
	t.Helper()

	b, err := bid.NewBid(kernel.NewUUID(), deliveryID, riderID, 50, 30, "")
	require.NoError(t, err)
	return b
}
