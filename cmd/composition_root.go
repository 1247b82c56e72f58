package cmd

import (
	"strconv"
	"time"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/adapters/out/carrier"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/adapters/out/catalog"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/adapters/out/channel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/adapters/out/postgres"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/adapters/out/postgres/reconrepo"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/application/usecases/commands"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/application/usecases/queries"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/services"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/ports"

	"gorm.io/gorm"
)

const (
	defaultGatewayTimeout  = 10 * time.Second
	defaultCatalogCacheTTL = 15 * time.Minute
	defaultRateLimitRPS    = 20
)

type CompositionRoot struct {
	gormDB          *gorm.DB
	uowFactory      postgres.GormUnitOfWorkFactory
	carrierGateway  ports.CarrierGateway
	channelGateway  ports.ChannelGateway
	catalog         ports.ProductCatalog
	reconRepo       ports.ReconciliationRepository
	packageResolver *services.PackageResolver
	shipperAddress  kernel.Address
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	shipperAddress, err := kernel.NewAddress(
		config.ShipperLine1,
		config.ShipperLine2,
		config.ShipperCity,
		config.ShipperRegion,
		config.ShipperPostalCode,
		config.ShipperCountry,
	)
	if err != nil {
		return CompositionRoot{}, err
	}

	// An empty channel base URL means orders have no external channel copy
	// and all mirror calls become no-ops.
	var channelGateway ports.ChannelGateway = channel.NewLocalGateway()
	if config.ChannelBaseURL != "" {
		channelGateway = channel.NewGateway(config.ChannelBaseURL,
			durationOrDefault(config.ChannelTimeout, defaultGatewayTimeout))
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		carrierGateway: carrier.NewGateway(config.CarrierBaseURL,
			durationOrDefault(config.CarrierTimeout, defaultGatewayTimeout)),
		channelGateway: channelGateway,
		catalog: catalog.NewClient(config.CatalogBaseURL,
			durationOrDefault(config.CatalogTimeout, defaultGatewayTimeout),
			durationOrDefault(config.CatalogCacheTTL, defaultCatalogCacheTTL)),
		reconRepo:       reconrepo.NewGormReconciliationRepository(gormDB),
		packageResolver: services.NewPackageResolver(),
		shipperAddress:  shipperAddress,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRefundOrderCommandHandler() commands.RefundOrderCommandHandler {
	return commands.NewRefundOrderCommandHandler(c.orderUoWFactory(), c.channelGateway, c.reconRepo)
}

func (c *CompositionRoot) CreateGenerateLabelCommandHandler() commands.GenerateLabelCommandHandler {
	return commands.NewGenerateLabelCommandHandler(c.orderUoWFactory(), c.carrierGateway,
		c.catalog, c.packageResolver, c.reconRepo, c.shipperAddress)
}

func (c *CompositionRoot) CreateMarkShippedCommandHandler() commands.MarkShippedCommandHandler {
	return commands.NewMarkShippedCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRequestCancellationCommandHandler() commands.RequestCancellationCommandHandler {
	return commands.NewRequestCancellationCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateApproveCancellationCommandHandler() commands.ApproveCancellationCommandHandler {
	return commands.NewApproveCancellationCommandHandler(c.orderUoWFactory(), c.channelGateway)
}

func (c *CompositionRoot) CreateRejectCancellationCommandHandler() commands.RejectCancellationCommandHandler {
	return commands.NewRejectCancellationCommandHandler(c.orderUoWFactory(), c.channelGateway)
}

func (c *CompositionRoot) CreateGetShippingRatesQueryHandler() queries.GetShippingRatesQueryHandler {
	return queries.NewGetShippingRatesQueryHandler(c.gormDB, c.carrierGateway, c.catalog,
		c.packageResolver, c.shipperAddress)
}

func (c *CompositionRoot) CreateGetOrderSummaryQueryHandler() queries.GetOrderSummaryQueryHandler {
	return queries.NewGetOrderSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenReconciliationsQueryHandler() queries.GetOpenReconciliationsQueryHandler {
	return queries.NewGetOpenReconciliationsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

func durationOrDefault(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// RateLimitRPS returns the configured requests-per-second limit.
func RateLimitRPS(config Config) float64 {
	if config.RateLimitRPS == "" {
		return defaultRateLimitRPS
	}
	parsed, err := strconv.ParseFloat(config.RateLimitRPS, 64)
	if err != nil || parsed <= 0 {
		return defaultRateLimitRPS
	}
	return parsed
}
