package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/order"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/services"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/ports"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrEmptyRateSet is returned when the carrier answered successfully but
// offered zero services for the package set.
var ErrEmptyRateSet = errors.New("carrier returned no services for this shipment")

// GetShippingRatesQueryHandler quotes carrier rates for an order.
//
// The quote is a pure function of (order, carrier, overrides): the package
// set resolved here is bit-identical to the one the label purchase resolves
// later from the same overrides, which is what makes the non-persisted
// two-phase flow safe.
type GetShippingRatesQueryHandler struct {
	db              *gorm.DB
	carrierGateway  ports.CarrierGateway
	catalog         ports.ProductCatalog
	packageResolver *services.PackageResolver
	shipperAddress  kernel.Address
}

// NewGetShippingRatesQueryHandler creates a handler for rate quote queries.
func NewGetShippingRatesQueryHandler(db *gorm.DB, carrierGateway ports.CarrierGateway,
	catalog ports.ProductCatalog, packageResolver *services.PackageResolver,
	shipperAddress kernel.Address) GetShippingRatesQueryHandler {
	return GetShippingRatesQueryHandler{
		db:              db,
		carrierGateway:  carrierGateway,
		catalog:         catalog,
		packageResolver: packageResolver,
		shipperAddress:  shipperAddress,
	}
}

// Handle resolves the order's package set and asks the carrier for rates.
// Returns ErrEmptyRateSet when the carrier offers no services.
func (h GetShippingRatesQueryHandler) Handle(ctx context.Context,
	query GetShippingRatesQuery) (GetShippingRatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShippingRatesQueryResponse{}, err
	}

	destination, err := h.readDestination(ctx, query.OrderID())
	if err != nil {
		return GetShippingRatesQueryResponse{}, err
	}

	items, err := h.readItems(ctx, query.OrderID())
	if err != nil {
		return GetShippingRatesQueryResponse{}, err
	}

	productIDs := make([]kernel.UUID, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID())
	}

	defaults, err := h.catalog.GetDimensions(ctx, productIDs)
	if err != nil {
		return GetShippingRatesQueryResponse{}, err
	}

	packages := h.packageResolver.Resolve(items, defaults, query.Overrides())

	options, err := h.carrierGateway.GetRates(ctx, query.CarrierID(), h.shipperAddress, destination, packages)
	if err != nil {
		return GetShippingRatesQueryResponse{}, err
	}
	if len(options) == 0 {
		return GetShippingRatesQueryResponse{}, ErrEmptyRateSet
	}

	return GetShippingRatesQueryResponse{
		CarrierID: query.CarrierID(),
		Packages:  packages,
		Options:   options,
	}, nil
}

func (h GetShippingRatesQueryHandler) readDestination(ctx context.Context, orderID kernel.UUID) (kernel.Address, error) {
	var line1, city, postalCode, country string
	var line2, region sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			ship_line1,
			ship_line2,
			ship_city,
			ship_region,
			ship_postal_code,
			ship_country
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	err := row.Scan(&line1, &line2, &city, &region, &postalCode, &country)
	if errors.Is(err, sql.ErrNoRows) {
		return kernel.Address{}, errs.NewObjectNotFoundError("orderID", orderID)
	}
	if err != nil {
		return kernel.Address{}, err
	}

	return kernel.NewAddress(line1, line2.String, city, region.String, postalCode, country)
}

func (h GetShippingRatesQueryHandler) readItems(ctx context.Context, orderID kernel.UUID) ([]*order.Item, error) {
	var currency string
	if err := h.db.WithContext(ctx).Raw(`
		SELECT currency FROM orders WHERE id = ?
	`, orderID.Bytes()).Row().Scan(&currency); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			name,
			quantity,
			unit_price,
			total_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*order.Item, 0)
	for rows.Next() {
		var id, productID uuid.UUID
		var name string
		var quantity int
		var unitPrice, totalPrice int64

		if err = rows.Scan(&id, &productID, &name, &quantity, &unitPrice, &totalPrice); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		itemProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		unit, moneyErr := kernel.NewMoney(unitPrice, currency)
		if moneyErr != nil {
			return nil, moneyErr
		}
		total, moneyErr := kernel.NewMoney(totalPrice, currency)
		if moneyErr != nil {
			return nil, moneyErr
		}

		item, itemErr := order.RestoreItem(itemID, itemProductID, name, quantity, unit, total)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
