package commands

import (
	"context"
	"time"
)

// MarkShippedCommandHandler records manual shipping. No carrier or channel is
// involved; the only external fact is the tracking number the merchant typed.
//
// Manual marking is mutually exclusive with label purchase: once a shipment
// exists the carrier has billed for it, and the domain rejects the marking.
type MarkShippedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkShippedCommandHandler creates a handler for manual shipping.
func NewMarkShippedCommandHandler(uowFactory OrderUoWFactory) MarkShippedCommandHandler {
	return MarkShippedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks the order shipped with the supplied carrier name and tracking number.
func (h MarkShippedCommandHandler) Handle(ctx context.Context, command MarkShippedCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.MarkShippedManually(command.CarrierName(), command.TrackingNumber(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
