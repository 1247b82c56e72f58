package commands

import (
	"errors"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/order"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/pkg/guard"
)

var (
	ErrGenerateLabelCommandIsNotConstructed = errors.New(
		"GenerateLabelCommand must be created via NewGenerateLabelCommand constructor",
	)
	ErrNoCarrierSelected     = errors.New("no carrier selected")
	ErrServiceCodeIsRequired = errors.New("service code is required")
)

// GenerateLabelCommand represents a request to purchase a shipping label for
// the carrier service chosen from an earlier rate quote.
//
// The quote is never persisted, so the command must carry the same dimension
// overrides the quote was obtained with; the package set is re-resolved from
// them and arrives at identical parcels.
type GenerateLabelCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	carrierID   string
	serviceCode string
	overrides   []order.DimensionOverride

	guard guard.ConstructorGuard
}

// NewGenerateLabelCommand creates a label purchase command.
func NewGenerateLabelCommand(orderID kernel.UUID, carrierID, serviceCode string,
	overrides []order.DimensionOverride) (GenerateLabelCommand, error) {
	command := GenerateLabelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCarrierID(carrierID),
		command.setServiceCode(serviceCode),
	); err != nil {
		return GenerateLabelCommand{}, err
	}

	command.overrides = append([]order.DimensionOverride(nil), overrides...)
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateLabelCommand) Validate() error {
	return c.guard.Validate(ErrGenerateLabelCommandIsNotConstructed)
}

// OrderID returns the order to ship.
func (c GenerateLabelCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CarrierID returns the carrier the service belongs to.
func (c GenerateLabelCommand) CarrierID() string {
	return c.carrierID
}

// ServiceCode returns the chosen carrier service.
func (c GenerateLabelCommand) ServiceCode() string {
	return c.serviceCode
}

// Overrides returns the dimension overrides used for the quote.
func (c GenerateLabelCommand) Overrides() []order.DimensionOverride {
	return c.overrides
}

func (c *GenerateLabelCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *GenerateLabelCommand) setCarrierID(carrierID string) error {
	if carrierID == "" {
		return ErrNoCarrierSelected
	}

	c.carrierID = carrierID
	return nil
}

func (c *GenerateLabelCommand) setServiceCode(serviceCode string) error {
	if serviceCode == "" {
		return ErrServiceCodeIsRequired
	}

	c.serviceCode = serviceCode
	return nil
}
