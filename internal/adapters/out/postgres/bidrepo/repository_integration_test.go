package bidrepo_test

import (
	"context"
	"testing"
	"time"

	"swiftbid/internal/adapters/out/postgres/bidrepo"
	"swiftbid/internal/core/domain/model/bid"
	"swiftbid/internal/core/domain/model/kernel"
	"swiftbid/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// BidRepositoryIntegrationTestSuite verifies bid persistence against a real
// PostgreSQL instance.
type BidRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *bidrepo.GormBidRepository
}

func (suite *BidRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&bidrepo.BidDTO{}))
}

func (suite *BidRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE bids").Error)
	suite.repository = bidrepo.NewGormBidRepository(suite.db)
}

func (suite *BidRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *BidRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrips() {
	ctx := context.Background()

	original := suite.createPendingBid(kernel.NewUUID(), kernel.NewUUID())

	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.DeliveryID(), retrieved.DeliveryID())
	suite.Equal(original.RiderID(), retrieved.RiderID())
	suite.Equal(original.Amount(), retrieved.Amount())
	suite.Equal(original.EstimatedTime(), retrieved.EstimatedTime())
	suite.Equal(bid.StatusPending, retrieved.Status())
}

func (suite *BidRepositoryIntegrationTestSuite) TestGet_NonExistent_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *BidRepositoryIntegrationTestSuite) TestUpdate_WithdrawnTwiceConcurrently_SecondWriteConflicts() {
	ctx := context.Background()

	placed := suite.createPendingBid(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, placed))

	// Another transaction already rejected the row.
	suite.Require().NoError(suite.db.
		Model(&bidrepo.BidDTO{}).
		Where("id = ?", placed.ID().Bytes()).
		Update("status", bid.StatusRejected.String()).Error)

	suite.Require().NoError(placed.Withdraw())
	err := suite.repository.Update(ctx, placed)

	suite.Require().Error(err)
	var invalidStateErr *errs.InvalidStateError
	suite.Require().ErrorAs(err, &invalidStateErr)
}

func (suite *BidRepositoryIntegrationTestSuite) TestGetPendingByDelivery_ExcludesSettledBids() {
	ctx := context.Background()

	deliveryID := kernel.NewUUID()
	live := suite.createPendingBid(deliveryID, kernel.NewUUID())
	withdrawn := suite.createPendingBid(deliveryID, kernel.NewUUID())
	elsewhere := suite.createPendingBid(kernel.NewUUID(), kernel.NewUUID())

	suite.Require().NoError(suite.repository.Add(ctx, live))
	suite.Require().NoError(suite.repository.Add(ctx, withdrawn))
	suite.Require().NoError(suite.repository.Add(ctx, elsewhere))

	suite.Require().NoError(withdrawn.Withdraw())
	suite.Require().NoError(suite.repository.Update(ctx, withdrawn))

	pending, err := suite.repository.GetPendingByDelivery(ctx, deliveryID)
	suite.Require().NoError(err)

	suite.Require().Len(pending, 1)
	suite.Equal(live.ID(), pending[0].ID())
}

func (suite *BidRepositoryIntegrationTestSuite) TestGetActiveByDeliveryAndRider_FindsOnlyLiveBid() {
	ctx := context.Background()

	deliveryID := kernel.NewUUID()
	riderID := kernel.NewUUID()

	first := suite.createPendingBid(deliveryID, riderID)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	found, err := suite.repository.GetActiveByDeliveryAndRider(ctx, deliveryID, riderID)
	suite.Require().NoError(err)
	suite.Equal(first.ID(), found.ID())

	suite.Require().NoError(first.Withdraw())
	suite.Require().NoError(suite.repository.Update(ctx, first))

	found, err = suite.repository.GetActiveByDeliveryAndRider(ctx, deliveryID, riderID)
	suite.Nil(found)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *BidRepositoryIntegrationTestSuite) TestGetByRider_ReturnsOnlyOwnBids() {
	ctx := context.Background()

	riderID := kernel.NewUUID()
	own := suite.createPendingBid(kernel.NewUUID(), riderID)
	other := suite.createPendingBid(kernel.NewUUID(), kernel.NewUUID())

	suite.Require().NoError(suite.repository.Add(ctx, own))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	found, err := suite.repository.GetByRider(ctx, riderID)
	suite.Require().NoError(err)

	suite.Require().Len(found, 1)
	suite.Equal(own.ID(), found[0].ID())
}

func (suite *BidRepositoryIntegrationTestSuite) createPendingBid(deliveryID, riderID kernel.UUID) *bid.Bid {
	b, err := bid.NewBid(kernel.NewUUID(), deliveryID, riderID, 50, 30, "can pick up within the hour")
	suite.Require().NoError(err)
	return b
}

func TestBidRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(BidRepositoryIntegrationTestSuite))
}
