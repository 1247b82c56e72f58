package commands

import (
	"context"
	"time"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/order"
)

// RequestCancellationCommandHandler opens cancellation requests.
//
// Example:
//
//	handler := NewRequestCancellationCommandHandler(uowFactory)
//	request, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrAlreadyCancelled) {
//	    // order is already cancelled or refunded, nothing to do
//	}
type RequestCancellationCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRequestCancellationCommandHandler creates a handler for opening
// cancellation requests.
func NewRequestCancellationCommandHandler(uowFactory OrderUoWFactory) RequestCancellationCommandHandler {
	return RequestCancellationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle opens a cancellation request and parks the order, remembering its
// prior status for restoration if the request is later rejected.
func (h RequestCancellationCommandHandler) Handle(ctx context.Context, command RequestCancellationCommand) (order.CancellationRequest, error) {
	if err := command.Validate(); err != nil {
		return order.CancellationRequest{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.CancellationRequest{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return order.CancellationRequest{}, err
	}

	request, err := aggregate.RequestCancellation(command.Reason(), command.Requester(), time.Now().UTC())
	if err != nil {
		return order.CancellationRequest{}, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return order.CancellationRequest{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.CancellationRequest{}, err
	}

	return request, nil
}
