package commands

import (
	"context"
	"errors"
	"time"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/order"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/recon"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/ports"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/pkg/errs"
)

// ErrChannelDispatchFailed signals that the external sales channel rejected
// or failed a mirrored mutation, so the local mutation was rolled back.
var ErrChannelDispatchFailed = errors.New("channel dispatch failed")

// RefundOrderCommandHandler applies refunds to orders.
//
// The local mutation and the channel dispatch form one commit: the order row
// is locked, the aggregate mutated, the channel gateway called for
// channel-linked orders, and only then is the transaction committed. Any
// gateway failure rolls the local mutation back, so a refund is never
// recorded locally without the channel accepting it.
//
// Example:
//
//	handler := NewRefundOrderCommandHandler(uowFactory, channelGateway, reconRepo)
//	record, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrAlreadyRefunded):
//	    // nothing left to refund
//	case errors.Is(err, ErrChannelDispatchFailed):
//	    // safe to retry, nothing was committed
//	}
type RefundOrderCommandHandler struct {
	uowFactory     OrderUoWFactory
	channelGateway ports.ChannelGateway
	reconRepo      ports.ReconciliationRepository
}

// NewRefundOrderCommandHandler creates a handler for refund operations.
// The reconciliation repository must not share the unit of work's
// transaction; flags it writes have to survive the rollback that accompanies
// an ambiguous gateway outcome.
func NewRefundOrderCommandHandler(uowFactory OrderUoWFactory, channelGateway ports.ChannelGateway,
	reconRepo ports.ReconciliationRepository) RefundOrderCommandHandler {
	return RefundOrderCommandHandler{
		uowFactory:     uowFactory,
		channelGateway: channelGateway,
		reconRepo:      reconRepo,
	}
}

// Handle processes the refund command and returns the appended ledger entry.
// The row lock taken by GetForUpdate is held across the channel call so two
// concurrent refunds on one order can never both commit.
func (h RefundOrderCommandHandler) Handle(ctx context.Context, command RefundOrderCommand) (order.RefundRecord, error) {
	if err := command.Validate(); err != nil {
		return order.RefundRecord{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.RefundRecord{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return order.RefundRecord{}, err
	}

	record, err := aggregate.ApplyRefund(command.Kind(), command.Amount(),
		command.Reason(), command.Comment(), time.Now().UTC())
	if err != nil {
		return order.RefundRecord{}, err
	}

	if aggregate.IsChannelLinked() {
		err = h.channelGateway.Refund(ctx, aggregate.ChannelOrderID(),
			record.Amount(), command.Reason(), command.Comment())
		if err != nil {
			flagErr := flagAmbiguousOutcome(ctx, h.reconRepo, aggregate.ID(), err)
			return order.RefundRecord{}, errors.Join(ErrChannelDispatchFailed, err, flagErr)
		}
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return order.RefundRecord{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.RefundRecord{}, err
	}

	return record, nil
}

// flagAmbiguousOutcome records a reconciliation flag when a gateway error is
// ambiguous (the external side may have committed). Plain failures need no
// flag: nothing was committed anywhere.
func flagAmbiguousOutcome(ctx context.Context, reconRepo ports.ReconciliationRepository,
	orderID kernel.UUID, gatewayErr error) error {
	var gwErr *errs.GatewayError
	if !errors.As(gatewayErr, &gwErr) || !gwErr.Ambiguous {
		return nil
	}
	if reconRepo == nil {
		return nil
	}

	flag, err := recon.NewReconciliation(kernel.NewUUID(), orderID,
		gwErr.Gateway, gwErr.Operation, gwErr.Error(), time.Now().UTC())
	if err != nil {
		return err
	}
	return reconRepo.Add(ctx, flag)
}
