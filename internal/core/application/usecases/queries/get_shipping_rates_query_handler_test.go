package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/adapters/out/postgres/orderrepo"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/application/usecases/queries"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/order"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/services"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/ports"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// stubCarrierGateway returns canned options and records the package set it
// was asked to quote.
type stubCarrierGateway struct {
	options        []ports.RateOption
	quotedPackages []order.Package
}

func (s *stubCarrierGateway) GetRates(_ context.Context, _ string, _, _ kernel.Address,
	packages []order.Package) ([]ports.RateOption, error) {
	s.quotedPackages = packages
	return s.options, nil
}

func (s *stubCarrierGateway) PurchaseLabel(_ context.Context, _, _ string, _, _ kernel.Address,
	_ []order.Package) (ports.LabelPurchase, error) {
	panic("rate quotes must never purchase labels")
}

// stubProductCatalog serves fixed default dimensions.
type stubProductCatalog struct {
	defaults map[kernel.UUID]order.Dimensions
}

func (s *stubProductCatalog) GetDimensions(_ context.Context,
	_ []kernel.UUID) (map[kernel.UUID]order.Dimensions, error) {
	return s.defaults, nil
}

type GetShippingRatesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	gateway   *stubCarrierGateway
	catalog   *stubProductCatalog
}

func (suite *GetShippingRatesQueryHandlerTestSuite) SetupSuite() {
	suite.container, suite.db = startOrdersDatabase(&suite.Suite)
}

func (suite *GetShippingRatesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetShippingRatesQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.gateway = &stubCarrierGateway{}
	suite.catalog = &stubProductCatalog{defaults: map[kernel.UUID]order.Dimensions{}}
}

func (suite *GetShippingRatesQueryHandlerTestSuite) handler() queries.GetShippingRatesQueryHandler {
	return queries.NewGetShippingRatesQueryHandler(suite.db, suite.gateway, suite.catalog,
		services.NewPackageResolver(), testShippingAddress(&suite.Suite))
}

func (suite *GetShippingRatesQueryHandlerTestSuite) TestHandle_MergesOverridesWithCatalogDefaults() {
	testOrder, productID := suite.seedOrderWithItem()
	suite.catalog.defaults[productID] = order.Dimensions{WeightKg: 1.2, LengthCm: 30, WidthCm: 20, HeightCm: 10}
	suite.gateway.options = []ports.RateOption{
		{ServiceCode: "ups_ground", ServiceName: "UPS Ground", Amount: mustUSD(&suite.Suite, 899), TransitDays: 4},
		{ServiceCode: "ups_2day", ServiceName: "UPS 2nd Day Air", Amount: mustUSD(&suite.Suite, 2199), TransitDays: 2},
	}

	itemID := testOrder.Items()[0].ID()
	query, err := queries.NewGetShippingRatesQuery(testOrder.ID(), "ups",
		[]order.DimensionOverride{{ItemID: itemID, WeightKg: 2.5}})
	suite.Require().NoError(err)

	result, err := suite.handler().Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal("ups", result.CarrierID)
	suite.Require().Len(result.Options, 2)
	suite.Equal("ups_ground", result.Options[0].ServiceCode)

	// Override wins on weight, catalog defaults fill the rest
	suite.Require().Len(result.Packages, 1)
	suite.Equal(itemID, result.Packages[0].ItemID)
	suite.InDelta(2.5, result.Packages[0].WeightKg, 0.001)
	suite.InDelta(30, result.Packages[0].LengthCm, 0.001)
	suite.Equal(result.Packages, suite.gateway.quotedPackages)
}

func (suite *GetShippingRatesQueryHandlerTestSuite) TestHandle_NoServicesOffered_ReturnsEmptyRateSetError() {
	testOrder, _ := suite.seedOrderWithItem()
	suite.gateway.options = []ports.RateOption{}

	query, err := queries.NewGetShippingRatesQuery(testOrder.ID(), "ups", nil)
	suite.Require().NoError(err)

	_, err = suite.handler().Handle(context.Background(), query)

	suite.Require().ErrorIs(err, queries.ErrEmptyRateSet)
}

func (suite *GetShippingRatesQueryHandlerTestSuite) TestHandle_NonExistentOrder_ReturnsNotFoundError() {
	query, err := queries.NewGetShippingRatesQuery(kernel.NewUUID(), "ups", nil)
	suite.Require().NoError(err)

	_, err = suite.handler().Handle(context.Background(), query)

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetShippingRatesQueryHandlerTestSuite) seedOrderWithItem() (*order.Order, kernel.UUID) {
	id := kernel.NewUUID()
	testOrder, err := order.NewOrder(id, "ORD-"+id.String()[:8], testShippingAddress(&suite.Suite),
		mustUSD(&suite.Suite, 7000), mustUSD(&suite.Suite, 900),
		mustUSD(&suite.Suite, 0), mustUSD(&suite.Suite, 0), time.Now())
	suite.Require().NoError(err)

	productID := kernel.NewUUID()
	item, err := order.NewItem(kernel.NewUUID(), productID, "ceramic mug", 2, mustUSD(&suite.Suite, 3500))
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.AddItem(item))

	repo := orderrepo.NewGormOrderRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), testOrder))
	return testOrder, productID
}

func TestGetShippingRatesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetShippingRatesQueryHandlerTestSuite))
}
