package commands

import (
	"errors"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/pkg/guard"
)

var (
	ErrRequestCancellationCommandIsNotConstructed = errors.New(
		"RequestCancellationCommand must be created via NewRequestCancellationCommand constructor",
	)
	ErrCancellationReasonIsRequired = errors.New("reason is required")
)

// RequestCancellationCommand represents a request to open a cancellation for
// an order. Opening is always local; mirroring to the sales channel happens
// on approval or rejection.
type RequestCancellationCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	reason    string
	requester string

	guard guard.ConstructorGuard
}

// NewRequestCancellationCommand creates a cancellation request command.
// The requester is optional and identifies who asked (customer, support).
func NewRequestCancellationCommand(orderID kernel.UUID, reason, requester string) (RequestCancellationCommand, error) {
	command := RequestCancellationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setReason(reason),
	); err != nil {
		return RequestCancellationCommand{}, err
	}

	command.requester = requester
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestCancellationCommand) Validate() error {
	return c.guard.Validate(ErrRequestCancellationCommandIsNotConstructed)
}

// OrderID returns the order to cancel.
func (c RequestCancellationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns why cancellation was requested.
func (c RequestCancellationCommand) Reason() string {
	return c.reason
}

// Requester identifies who opened the request.
func (c RequestCancellationCommand) Requester() string {
	return c.requester
}

func (c *RequestCancellationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestCancellationCommand) setReason(reason string) error {
	if reason == "" {
		return ErrCancellationReasonIsRequired
	}

	c.reason = reason
	return nil
}
