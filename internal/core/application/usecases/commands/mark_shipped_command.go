package commands

import (
	"errors"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/pkg/guard"
)

var (
	ErrMarkShippedCommandIsNotConstructed = errors.New(
		"MarkShippedCommand must be created via NewMarkShippedCommand constructor",
	)
	ErrCarrierNameIsRequired    = errors.New("carrier name is required")
	ErrTrackingNumberIsRequired = errors.New("tracking number is required")
)

// MarkShippedCommand represents the manual shipping fallback: the merchant
// shipped outside any carrier integration and supplies the carrier name and
// tracking number directly.
type MarkShippedCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	carrierName    string
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewMarkShippedCommand creates a manual mark-shipped command.
func NewMarkShippedCommand(orderID kernel.UUID, carrierName, trackingNumber string) (MarkShippedCommand, error) {
	command := MarkShippedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCarrierName(carrierName),
		command.setTrackingNumber(trackingNumber),
	); err != nil {
		return MarkShippedCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkShippedCommand) Validate() error {
	return c.guard.Validate(ErrMarkShippedCommandIsNotConstructed)
}

// OrderID returns the order to mark shipped.
func (c MarkShippedCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CarrierName returns the merchant-supplied carrier name.
func (c MarkShippedCommand) CarrierName() string {
	return c.carrierName
}

// TrackingNumber returns the merchant-supplied tracking number.
func (c MarkShippedCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c *MarkShippedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkShippedCommand) setCarrierName(carrierName string) error {
	if carrierName == "" {
		return ErrCarrierNameIsRequired
	}

	c.carrierName = carrierName
	return nil
}

func (c *MarkShippedCommand) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}

	c.trackingNumber = trackingNumber
	return nil
}
