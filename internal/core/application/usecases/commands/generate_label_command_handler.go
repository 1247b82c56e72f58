package commands

import (
	"context"
	"errors"
	"time"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/order"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/services"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/ports"
)

// ErrLabelPurchaseFailed signals that the carrier declined or failed the
// label purchase; no shipment was created and the order is untouched, so the
// caller may retry with a different service or carrier.
var ErrLabelPurchaseFailed = errors.New("label purchase failed")

// GenerateLabelCommandHandler purchases shipping labels.
//
// The order row is locked before the carrier is called and stays locked until
// commit, so N concurrent purchases for one order produce exactly one
// shipment; the losers fail on ErrShipmentAlreadyExists without the carrier
// being called twice.
//
// State guards run before the purchase: a label is money committed with the
// carrier, and it must never be bought for an order that cannot accept it.
type GenerateLabelCommandHandler struct {
	uowFactory      OrderUoWFactory
	carrierGateway  ports.CarrierGateway
	catalog         ports.ProductCatalog
	packageResolver *services.PackageResolver
	reconRepo       ports.ReconciliationRepository
	shipperAddress  kernel.Address
}

// NewGenerateLabelCommandHandler creates a handler for label purchases.
// The shipper address is the warehouse origin used on every label.
func NewGenerateLabelCommandHandler(uowFactory OrderUoWFactory, carrierGateway ports.CarrierGateway,
	catalog ports.ProductCatalog, packageResolver *services.PackageResolver,
	reconRepo ports.ReconciliationRepository, shipperAddress kernel.Address) GenerateLabelCommandHandler {
	return GenerateLabelCommandHandler{
		uowFactory:      uowFactory,
		carrierGateway:  carrierGateway,
		catalog:         catalog,
		packageResolver: packageResolver,
		reconRepo:       reconRepo,
		shipperAddress:  shipperAddress,
	}
}

// Handle purchases a label and attaches the resulting shipment to the order.
func (h GenerateLabelCommandHandler) Handle(ctx context.Context, command GenerateLabelCommand) (*order.Shipment, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if aggregate.Shipment() != nil {
		return nil, order.ErrShipmentAlreadyExists
	}
	if aggregate.Status() == order.StatusCancelled {
		return nil, order.ErrOrderCancelled
	}
	if aggregate.FulfillmentStatus() == order.Fulfilled {
		return nil, order.ErrOrderAlreadyFulfilled
	}

	packages, err := h.resolvePackages(ctx, aggregate, command.Overrides())
	if err != nil {
		return nil, err
	}

	purchase, err := h.carrierGateway.PurchaseLabel(ctx, command.CarrierID(), command.ServiceCode(),
		h.shipperAddress, aggregate.ShippingAddress(), packages)
	if err != nil {
		flagErr := flagAmbiguousOutcome(ctx, h.reconRepo, aggregate.ID(), err)
		return nil, errors.Join(ErrLabelPurchaseFailed, err, flagErr)
	}

	shipment, err := aggregate.AttachShipment(command.CarrierID(), command.ServiceCode(),
		purchase.TrackingNumber, purchase.TrackingURL, purchase.LabelURL, packages, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return shipment, nil
}

func (h GenerateLabelCommandHandler) resolvePackages(ctx context.Context, aggregate *order.Order,
	overrides []order.DimensionOverride) ([]order.Package, error) {
	items := aggregate.Items()
	productIDs := make([]kernel.UUID, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID())
	}

	defaults, err := h.catalog.GetDimensions(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	return h.packageResolver.Resolve(items, defaults, overrides), nil
}
