package order

import (
	"time"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when validating a zero-value Shipment.
var ErrShipmentIsNotConstructed = errs.NewValueIsRequiredError(
	"Shipment must be created via the order aggregate or RestoreShipment")

// Shipment is the carrier-committed, billable record created by a label
// purchase. An order has at most one. The package set is frozen at purchase
// time so the billed parcels stay auditable even if catalog dimensions change.
type Shipment struct {
	id             kernel.UUID
	orderID        kernel.UUID
	carrierID      string
	serviceCode    string
	trackingNumber string
	labelURL       string
	packages       []Package
	generatedAt    time.Time
}

func newShipment(id, orderID kernel.UUID, carrierID, serviceCode, trackingNumber,
	labelURL string, packages []Package, generatedAt time.Time) (*Shipment, error) {
	if carrierID == "" {
		return nil, errs.NewValueIsRequiredError("carrierID")
	}
	if serviceCode == "" {
		return nil, errs.NewValueIsRequiredError("serviceCode")
	}
	if trackingNumber == "" {
		return nil, errs.NewValueIsRequiredError("trackingNumber")
	}

	frozen := make([]Package, len(packages))
	copy(frozen, packages)

	return &Shipment{
		id:             id,
		orderID:        orderID,
		carrierID:      carrierID,
		serviceCode:    serviceCode,
		trackingNumber: trackingNumber,
		labelURL:       labelURL,
		packages:       frozen,
		generatedAt:    generatedAt,
	}, nil
}

// RestoreShipment reconstructs a Shipment from persistence.
func RestoreShipment(id, orderID kernel.UUID, carrierID, serviceCode, trackingNumber,
	labelURL string, packages []Package, generatedAt time.Time) (*Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	return newShipment(id, orderID, carrierID, serviceCode, trackingNumber, labelURL, packages, generatedAt)
}

// ID returns the shipment identifier.
func (s *Shipment) ID() kernel.UUID { return s.id }

// OrderID returns the owning order.
func (s *Shipment) OrderID() kernel.UUID { return s.orderID }

// CarrierID returns the carrier the label was purchased from.
func (s *Shipment) CarrierID() string { return s.carrierID }

// ServiceCode returns the carrier service the label was purchased for.
func (s *Shipment) ServiceCode() string { return s.serviceCode }

// TrackingNumber returns the carrier tracking number.
func (s *Shipment) TrackingNumber() string { return s.trackingNumber }

// LabelURL returns where the printable label document can be fetched.
func (s *Shipment) LabelURL() string { return s.labelURL }

// Packages returns a copy of the frozen package set the label was billed for.
func (s *Shipment) Packages() []Package {
	packages := make([]Package, len(s.packages))
	copy(packages, s.packages)
	return packages
}

// GeneratedAt returns when the label was purchased.
func (s *Shipment) GeneratedAt() time.Time { return s.generatedAt }

// Validate checks if the Shipment is properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || s.trackingNumber == "" {
		return ErrShipmentIsNotConstructed
	}
	return nil
}
