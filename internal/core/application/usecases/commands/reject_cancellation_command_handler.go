package commands

import (
	"context"
	"errors"
	"time"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/order"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/ports"
)

// RejectCancellationCommandHandler resolves open cancellation requests
// against cancellation, restoring the order's pre-request status.
//
// For channel-linked orders the channel is told first, mirroring the approval
// flow: local state changes only after the channel accepted the decision.
type RejectCancellationCommandHandler struct {
	uowFactory     OrderUoWFactory
	channelGateway ports.ChannelGateway
}

// NewRejectCancellationCommandHandler creates a handler for cancellation rejections.
func NewRejectCancellationCommandHandler(uowFactory OrderUoWFactory,
	channelGateway ports.ChannelGateway) RejectCancellationCommandHandler {
	return RejectCancellationCommandHandler{
		uowFactory:     uowFactory,
		channelGateway: channelGateway,
	}
}

// Handle rejects the open cancellation request and restores the order status
// as of just before the request was opened.
func (h RejectCancellationCommandHandler) Handle(ctx context.Context, command RejectCancellationCommand) (order.CancellationRequest, error) {
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
		if err = h.channelGateway.RejectCancellation(ctx, aggregate.ChannelOrderID(), command.Reason()); err != nil {
			return order.CancellationRequest{}, errors.Join(ErrChannelDispatchFailed, err)
		}
	}

	request, err := aggregate.RejectCancellation(command.Resolver(), time.Now().UTC())
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
