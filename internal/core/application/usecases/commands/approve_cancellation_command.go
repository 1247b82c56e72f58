package commands

import (
	"errors"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/pkg/guard"
)

var ErrApproveCancellationCommandIsNotConstructed = errors.New(
	"ApproveCancellationCommand must be created via NewApproveCancellationCommand constructor",
)

// ApproveCancellationCommand represents a decision to approve an open
// cancellation request, cancelling the order.
type ApproveCancellationCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	resolver string

	guard guard.ConstructorGuard
}

// NewApproveCancellationCommand creates an approval command.
// The resolver is optional and identifies who made the decision.
func NewApproveCancellationCommand(orderID kernel.UUID, resolver string) (ApproveCancellationCommand, error) {
	command := ApproveCancellationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return ApproveCancellationCommand{}, err
	}

	command.resolver = resolver
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveCancellationCommand) Validate() error {
	return c.guard.Validate(ErrApproveCancellationCommandIsNotConstructed)
}

// OrderID returns the order whose request is being approved.
func (c ApproveCancellationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Resolver identifies who approved the request.
func (c ApproveCancellationCommand) Resolver() string {
	return c.resolver
}

func (c *ApproveCancellationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
