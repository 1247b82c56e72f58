package commands

import (
	"context"
	"errors"
	"time"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/order"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/ports"
)

// ApproveCancellationCommandHandler resolves open cancellation requests in
// favour of cancellation.
//
// For channel-linked orders the channel is told first; the local transition
// applies only on gateway success, so the channel and the local record cannot
// disagree about whether the order was cancelled.
type ApproveCancellationCommandHandler struct {
	uowFactory     OrderUoWFactory
	channelGateway ports.ChannelGateway
}

// NewApproveCancellationCommandHandler creates a handler for cancellation approvals.
func NewApproveCancellationCommandHandler(uowFactory OrderUoWFactory,
	channelGateway ports.ChannelGateway) ApproveCancellationCommandHandler {
	return ApproveCancellationCommandHandler{
		uowFactory:     uowFactory,
		channelGateway: channelGateway,
	}
}

// Handle approves the open cancellation request and cancels the order.
func (h ApproveCancellationCommandHandler) Handle(ctx context.Context, command ApproveCancellationCommand) (order.CancellationRequest, error) {
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

	if !aggregate.HasOpenCancellation() {
		return order.CancellationRequest{}, order.ErrNoOpenCancellation
	}

	if aggregate.IsChannelLinked() {
		if err = h.channelGateway.ApproveCancellation(ctx, aggregate.ChannelOrderID()); err != nil {
			return order.CancellationRequest{}, errors.Join(ErrChannelDispatchFailed, err)
		}
	}

	request, err := aggregate.ApproveCancellation(command.Resolver(), time.Now().UTC())
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
