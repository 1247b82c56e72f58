package commands_test

import (
	"testing"
	"time"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/application/usecases/commands"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkShippedCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder := paidOrder(t, 10000)

	cmd, err := commands.NewMarkShippedCommand(testOrder.ID(), "DHL", "JD014600003RU")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(orderRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkShippedCommandHandler(factory)

	require.NoError(t, handler.Handle(ctx, cmd))
	assert.Equal(t, order.Fulfilled, testOrder.FulfillmentStatus())
	assert.Equal(t, order.StatusShipped, testOrder.Status())
	uow.AssertExpectations(t)
}

func TestMarkShippedCommandHandler_Handle_AfterLabel_Rejected(t *testing.T) {
	ctx := t.Context()
	testOrder := paidOrder(t, 10000)
	_, err := testOrder.AttachShipment("ups", "ups_ground", "1Z1", "", "", nil, time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewMarkShippedCommand(testOrder.ID(), "DHL", "JD014600003RU")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkShippedCommandHandler(factory)

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrShipmentAlreadyExists)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewMarkShippedCommand_Validation(t *testing.T) {
	_, err := commands.NewMarkShippedCommand(kernel.NewUUID(), "", "1Z1")
	require.ErrorIs(t, err, commands.ErrCarrierNameIsRequired)

	_, err = commands.NewMarkShippedCommand(kernel.NewUUID(), "DHL", "")
	require.ErrorIs(t, err, commands.ErrTrackingNumberIsRequired)
}

func TestNewRefundOrderCommand_Validation(t *testing.T) {
	amount, err := kernel.NewMoney(100, "USD")
	require.NoError(t, err)

	_, err = commands.NewRefundOrderCommand(kernel.NewUUID(), order.PartialRefund, kernel.Money{}, "reason", "")
	require.ErrorIs(t, err, commands.ErrRefundAmountIsRequired)

	_, err = commands.NewRefundOrderCommand(kernel.NewUUID(), order.PartialRefund, amount, "", "")
	require.ErrorIs(t, err, commands.ErrRefundReasonIsRequired)

	_, err = commands.NewRefundOrderCommand(kernel.UUID{}, order.FullRefund, kernel.Money{}, "reason", "")
	require.Error(t, err)
}
