package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/adapters/out/postgres/orderrepo"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/application/usecases/queries"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/order"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repository's aggregate tracker when tests seed
// data directly, outside any unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// startOrdersDatabase boots a PostgreSQL container with the order schema
// migrated. Shared by the query handler suites in this package.
func startOrdersDatabase(s *suite.Suite) (*postgres.PostgresContainer, *gorm.DB) {
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
	s.Require().NoError(err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.RefundDTO{},
		&orderrepo.CancellationDTO{},
		&orderrepo.ShipmentDTO{},
		&orderrepo.PackageDTO{},
	)
	s.Require().NoError(err)

	return container, db
}

func mustUSD(s *suite.Suite, amount int64) kernel.Money {
	m, err := kernel.NewMoney(amount, "USD")
	s.Require().NoError(err)
	return m
}

func testShippingAddress(s *suite.Suite) kernel.Address {
	address, err := kernel.NewAddress("1 Elm Street", "", "Springfield", "IL", "62701", "US")
	s.Require().NoError(err)
	return address
}

type GetOrderSummaryQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderSummaryQueryHandler
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) SetupSuite() {
	suite.container, suite.db = startOrdersDatabase(&suite.Suite)
	suite.handler = queries.NewGetOrderSummaryQueryHandler(suite.db)
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TestHandle_PartiallyRefundedOrder() {
	testOrder := suite.seedPaidOrder()

	_, err := testOrder.ApplyRefund(order.PartialRefund, mustUSD(&suite.Suite, 3000),
		"damaged", "", time.Now())
	suite.Require().NoError(err)
	suite.updateOrder(testOrder)

	query, err := queries.NewGetOrderSummaryQuery(testOrder.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), result.ID)
	suite.Equal(testOrder.Number(), result.Number)
	suite.Equal(order.StatusProcessing, result.Status)
	suite.Equal(order.PaymentPaid, result.PaymentStatus)
	suite.Equal(order.DisplayPartialRefund, result.DisplayStatus)
	suite.True(mustUSD(&suite.Suite, 3000).IsEqual(result.TotalRefunded))
	suite.True(mustUSD(&suite.Suite, 9000).IsEqual(result.RefundableAmount))
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TestHandle_FullyRefundedOrder() {
	testOrder := suite.seedPaidOrder()

	_, err := testOrder.ApplyRefund(order.FullRefund, kernel.Money{}, "goodwill", "", time.Now())
	suite.Require().NoError(err)
	suite.updateOrder(testOrder)

	query, err := queries.NewGetOrderSummaryQuery(testOrder.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(order.StatusRefunded, result.Status)
	suite.Equal(order.PaymentRefunded, result.PaymentStatus)
	suite.Equal(order.DisplayRefunded, result.DisplayStatus)
	suite.True(result.RefundableAmount.IsZero())
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TestHandle_ShippedOrder_IncludesTracking() {
	testOrder := suite.seedPaidOrder()

	err := testOrder.MarkShippedManually("DHL", "JD014600003", time.Now())
	suite.Require().NoError(err)
	suite.updateOrder(testOrder)

	query, err := queries.NewGetOrderSummaryQuery(testOrder.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(order.DisplayShipped, result.DisplayStatus)
	suite.Equal("JD014600003", result.TrackingNumber)
	suite.Equal("DHL", result.ShippingCarrier)
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TestHandle_UnpaidOrder_AwaitingPayment() {
	testOrder := suite.seedOrder()

	query, err := queries.NewGetOrderSummaryQuery(testOrder.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(order.DisplayAwaitingPayment, result.DisplayStatus)
	suite.Empty(result.TrackingNumber)
	suite.Empty(result.ChannelOrderID)
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TestHandle_NonExistentOrder_ReturnsNotFoundError() {
	query, err := queries.NewGetOrderSummaryQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetOrderSummaryQuery{})

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderSummaryQuery constructor")
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) seedOrder() *order.Order {
	id := kernel.NewUUID()
	testOrder, err := order.NewOrder(id, "ORD-"+id.String()[:8], testShippingAddress(&suite.Suite),
		mustUSD(&suite.Suite, 10000), mustUSD(&suite.Suite, 1500),
		mustUSD(&suite.Suite, 800), mustUSD(&suite.Suite, 300), time.Now())
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), testOrder))
	return testOrder
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) seedPaidOrder() *order.Order {
	testOrder := suite.seedOrder()
	suite.Require().NoError(testOrder.MarkPaid(time.Now()))
	suite.updateOrder(testOrder)
	return testOrder
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) updateOrder(testOrder *order.Order) {
	repo := orderrepo.NewGormOrderRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Update(context.Background(), testOrder))
}

func TestGetOrderSummaryQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderSummaryQueryHandlerTestSuite))
}
