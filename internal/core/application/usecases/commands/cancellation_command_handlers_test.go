package commands_test

import (
	"testing"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/application/usecases/commands"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/order"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRequestCancellationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder := paidOrder(t, 10000)

	cmd, err := commands.NewRequestCancellationCommand(testOrder.ID(), "changed my mind", "customer")
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

	handler := commands.NewRequestCancellationCommandHandler(factory)

	request, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, request.IsPending())
	assert.Equal(t, order.StatusCancellationRequested, testOrder.Status())
	uow.AssertExpectations(t)
}

func TestRequestCancellationCommandHandler_Handle_AlreadyCancelled(t *testing.T) {
	ctx := t.Context()
	testOrder := paidOrder(t, 10000)
	_, err := testOrder.RequestCancellation("first", "customer", testOrder.OrderDate())
	require.NoError(t, err)
	_, err = testOrder.ApproveCancellation("ops", testOrder.OrderDate())
	require.NoError(t, err)

	cmd, err := commands.NewRequestCancellationCommand(testOrder.ID(), "again", "customer")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRequestCancellationCommandHandler(factory)

	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrAlreadyCancelled)
	assert.Len(t, testOrder.Cancellations(), 1)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestApproveCancellationCommandHandler_Handle_LocalOrder_Cancels(t *testing.T) {
	ctx := t.Context()
	testOrder := paidOrder(t, 10000)
	_, err := testOrder.RequestCancellation("changed my mind", "customer", testOrder.OrderDate())
	require.NoError(t, err)

	cmd, err := commands.NewApproveCancellationCommand(testOrder.ID(), "ops")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	channelGateway := new(MockChannelGateway)
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

	handler := commands.NewApproveCancellationCommandHandler(factory, channelGateway)

	resolved, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.CancellationApproved, resolved.Status())
	assert.Equal(t, order.StatusCancelled, testOrder.Status())
	channelGateway.AssertNotCalled(t, "ApproveCancellation", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestApproveCancellationCommandHandler_Handle_ChannelOrder_GatewayFirst(t *testing.T) {
	ctx := t.Context()
	testOrder := channelOrder(t, 10000, "EXT-9")
	_, err := testOrder.RequestCancellation("changed my mind", "customer", testOrder.OrderDate())
	require.NoError(t, err)

	cmd, err := commands.NewApproveCancellationCommand(testOrder.ID(), "ops")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	channelGateway := new(MockChannelGateway)
	uow.On("OrderRepository").Return(orderRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		channelGateway.On("ApproveCancellation", ctx, "EXT-9").Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveCancellationCommandHandler(factory, channelGateway)

	_, err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, testOrder.Status())
	channelGateway.AssertExpectations(t)
}

func TestApproveCancellationCommandHandler_Handle_GatewayFailure_NoLocalTransition(t *testing.T) {
	ctx := t.Context()
	testOrder := channelOrder(t, 10000, "EXT-9")
	_, err := testOrder.RequestCancellation("changed my mind", "customer", testOrder.OrderDate())
	require.NoError(t, err)

	cmd, err := commands.NewApproveCancellationCommand(testOrder.ID(), "ops")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	channelGateway := new(MockChannelGateway)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil)
	channelGateway.On("ApproveCancellation", ctx, "EXT-9").
		Return(errs.NewGatewayError("channel", "approveCancellation", assert.AnError)).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveCancellationCommandHandler(factory, channelGateway)

	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrChannelDispatchFailed)
	assert.Equal(t, order.StatusCancellationRequested, testOrder.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestApproveCancellationCommandHandler_Handle_NoOpenRequest(t *testing.T) {
	ctx := t.Context()
	testOrder := paidOrder(t, 10000)

	cmd, err := commands.NewApproveCancellationCommand(testOrder.ID(), "ops")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	channelGateway := new(MockChannelGateway)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveCancellationCommandHandler(factory, channelGateway)

	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrNoOpenCancellation)
	channelGateway.AssertNotCalled(t, "ApproveCancellation", mock.Anything, mock.Anything)
}

func TestRejectCancellationCommandHandler_Handle_RestoresStatus(t *testing.T) {
	ctx := t.Context()
	testOrder := paidOrder(t, 10000)
	_, err := testOrder.RequestCancellation("changed my mind", "customer", testOrder.OrderDate())
	require.NoError(t, err)

	cmd, err := commands.NewRejectCancellationCommand(testOrder.ID(), "already packed", "ops")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	channelGateway := new(MockChannelGateway)
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

	handler := commands.NewRejectCancellationCommandHandler(factory, channelGateway)

	resolved, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.CancellationRejected, resolved.Status())
	assert.Equal(t, order.StatusProcessing, testOrder.Status())
	channelGateway.AssertNotCalled(t, "RejectCancellation", mock.Anything, mock.Anything, mock.Anything)
}

func TestRejectCancellationCommandHandler_Handle_ChannelOrder_ForwardsReason(t *testing.T) {
	ctx := t.Context()
	testOrder := channelOrder(t, 10000, "EXT-9")
	_, err := testOrder.RequestCancellation("changed my mind", "customer", testOrder.OrderDate())
	require.NoError(t, err)

	cmd, err := commands.NewRejectCancellationCommand(testOrder.ID(), "already packed", "ops")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	channelGateway := new(MockChannelGateway)
	uow.On("OrderRepository").Return(orderRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		channelGateway.On("RejectCancellation", ctx, "EXT-9", "already packed").Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRejectCancellationCommandHandler(factory, channelGateway)

	_, err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusProcessing, testOrder.Status())
	channelGateway.AssertExpectations(t)
}
