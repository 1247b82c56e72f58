package commands

import (
	"errors"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/order"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/pkg/guard"
)

var (
	ErrRefundOrderCommandIsNotConstructed = errors.New(
		"RefundOrderCommand must be created via NewRefundOrderCommand constructor",
	)
	ErrRefundReasonIsRequired = errors.New("reason is required")
	ErrRefundAmountIsRequired = errors.New("amount is required for a partial refund")
)

// RefundOrderCommand represents a request to refund an order, either in full
// or for an explicit partial amount.
//
// Example:
//
//	amount, _ := kernel.MoneyFromMajorUnits(75.00, "USD")
//	cmd, err := NewRefundOrderCommand(orderID, order.PartialRefund, amount, "damaged item", "one unit broken")
//	if err != nil {
//	    return fmt.Errorf("invalid refund request: %w", err)
//	}
//	record, err := handler.Handle(ctx, cmd)
type RefundOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	kind    order.RefundKind
	amount  kernel.Money
	reason  string
	comment string

	guard guard.ConstructorGuard
}

// NewRefundOrderCommand creates a refund command. For partial refunds the
// amount is required; for full refunds it is ignored and the effective amount
// is resolved against the order at handling time.
func NewRefundOrderCommand(orderID kernel.UUID, kind order.RefundKind, amount kernel.Money,
	reason, comment string) (RefundOrderCommand, error) {
	command := RefundOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setKind(kind),
		command.setAmount(kind, amount),
		command.setReason(reason),
	); err != nil {
		return RefundOrderCommand{}, err
	}

	command.comment = comment
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RefundOrderCommand) Validate() error {
	return c.guard.Validate(ErrRefundOrderCommandIsNotConstructed)
}

// OrderID returns the order to refund.
func (c RefundOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Kind returns whether the refund is full or partial.
func (c RefundOrderCommand) Kind() order.RefundKind {
	return c.kind
}

// Amount returns the requested amount. Zero value for full refunds.
func (c RefundOrderCommand) Amount() kernel.Money {
	return c.amount
}

// Reason returns the merchant-provided reason code.
func (c RefundOrderCommand) Reason() string {
	return c.reason
}

// Comment returns the optional free-form comment.
func (c RefundOrderCommand) Comment() string {
	return c.comment
}

func (c *RefundOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RefundOrderCommand) setKind(kind order.RefundKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *RefundOrderCommand) setAmount(kind order.RefundKind, amount kernel.Money) error {
	if kind != order.PartialRefund {
		return nil
	}
	if err := amount.Validate(); err != nil {
		return ErrRefundAmountIsRequired
	}

	c.amount = amount
	return nil
}

func (c *RefundOrderCommand) setReason(reason string) error {
	if reason == "" {
		return ErrRefundReasonIsRequired
	}

	c.reason = reason
	return nil
}
