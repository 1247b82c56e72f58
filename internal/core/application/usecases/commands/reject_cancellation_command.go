package commands

import (
	"errors"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/pkg/guard"
)

var ErrRejectCancellationCommandIsNotConstructed = errors.New(
	"RejectCancellationCommand must be created via NewRejectCancellationCommand constructor",
)

// RejectCancellationCommand represents a decision to decline an open
// cancellation request, restoring the order to its pre-request status.
type RejectCancellationCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	reason   string
	resolver string

	guard guard.ConstructorGuard
}

// NewRejectCancellationCommand creates a rejection command. The reason is
// required; channel-linked orders forward it to the sales channel.
func NewRejectCancellationCommand(orderID kernel.UUID, reason, resolver string) (RejectCancellationCommand, error) {
	command := RejectCancellationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setReason(reason),
	); err != nil {
		return RejectCancellationCommand{}, err
	}

	command.resolver = resolver
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectCancellationCommand) Validate() error {
	return c.guard.Validate(ErrRejectCancellationCommandIsNotConstructed)
}

// OrderID returns the order whose request is being rejected.
func (c RejectCancellationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns why the request was declined.
func (c RejectCancellationCommand) Reason() string {
	return c.reason
}

// Resolver identifies who rejected the request.
func (c RejectCancellationCommand) Resolver() string {
	return c.resolver
}

func (c *RejectCancellationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RejectCancellationCommand) setReason(reason string) error {
	if reason == "" {
		return ErrCancellationReasonIsRequired
	}

	c.reason = reason
	return nil
}
