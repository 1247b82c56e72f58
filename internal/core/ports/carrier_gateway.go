package ports

import (
	"context"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/order"
)

// RateOption is one shippable service returned by a carrier for a package
// set. Options keep the order the carrier returned them in; no reordering is
// imposed locally.
type RateOption struct {
	ServiceCode string
	ServiceName string
	Amount      kernel.Money
	TransitDays int
}

// LabelPurchase is the carrier's confirmation of a committed, billable label.
type LabelPurchase struct {
	TrackingNumber string
	TrackingURL    string
	LabelURL       string
}

// CarrierGateway defines the outbound contract to shipping carriers.
//
// GetRates is non-committal. PurchaseLabel commits cost with the carrier: a
// timeout on it is ambiguous (the carrier may have billed) and is reported as
// an ambiguous gateway error rather than a plain failure.
type CarrierGateway interface {
	// GetRates quotes available services for the package set.
	GetRates(ctx context.Context, carrierID string, shipper, destination kernel.Address,
		packages []order.Package) ([]RateOption, error)

	// PurchaseLabel buys a label for the chosen service.
	PurchaseLabel(ctx context.Context, carrierID, serviceCode string, shipper, destination kernel.Address,
		packages []order.Package) (LabelPurchase, error)
}
