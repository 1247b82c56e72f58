package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/application/usecases/commands"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/order"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/recon"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockChannelGateway struct{ mock.Mock }

func (m *MockChannelGateway) Refund(ctx context.Context, channelOrderID string, amount kernel.Money, reason, comment string) error {
	args := m.Called(ctx, channelOrderID, amount, reason, comment)
	return args.Error(0)
}

func (m *MockChannelGateway) ApproveCancellation(ctx context.Context, channelOrderID string) error {
	args := m.Called(ctx, channelOrderID)
	return args.Error(0)
}

func (m *MockChannelGateway) RejectCancellation(ctx context.Context, channelOrderID string, reason string) error {
	args := m.Called(ctx, channelOrderID, reason)
	return args.Error(0)
}

type MockCarrierGateway struct{ mock.Mock }

func (m *MockCarrierGateway) GetRates(ctx context.Context, carrierID string, shipper, destination kernel.Address,
	packages []order.Package) ([]ports.RateOption, error) {
	args := m.Called(ctx, carrierID, shipper, destination, packages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.RateOption), args.Error(1)
}

func (m *MockCarrierGateway) PurchaseLabel(ctx context.Context, carrierID, serviceCode string, shipper, destination kernel.Address,
	packages []order.Package) (ports.LabelPurchase, error) {
	args := m.Called(ctx, carrierID, serviceCode, shipper, destination, packages)
	return args.Get(0).(ports.LabelPurchase), args.Error(1)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) GetDimensions(ctx context.Context, productIDs []kernel.UUID) (map[kernel.UUID]order.Dimensions, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]order.Dimensions), args.Error(1)
}

type MockReconciliationRepository struct{ mock.Mock }

func (m *MockReconciliationRepository) Add(ctx context.Context, flag *recon.Reconciliation) error {
	args := m.Called(ctx, flag)
	return args.Error(0)
}

func (m *MockReconciliationRepository) Update(ctx context.Context, flag *recon.Reconciliation) error {
	args := m.Called(ctx, flag)
	return args.Error(0)
}

func (m *MockReconciliationRepository) GetAllUnresolved(ctx context.Context) ([]*recon.Reconciliation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recon.Reconciliation), args.Error(1)
}

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress("1 Warehouse Way", "", "Springfield", "IL", "62701", "US")
	require.NoError(t, err)
	return address
}

func usd(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(cents, "USD")
	require.NoError(t, err)
	return m
}

func paidOrder(t *testing.T, totalCents int64) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "SO-2001", testAddress(t),
		usd(t, totalCents), usd(t, 0), usd(t, 0), usd(t, 0), time.Now())
	require.NoError(t, err)
	require.NoError(t, o.MarkPaid(time.Now()))
	return o
}

func channelOrder(t *testing.T, totalCents int64, channelOrderID string) *order.Order {
	t.Helper()
	o := paidOrder(t, totalCents)
	require.NoError(t, o.LinkToChannel(kernel.NewUUID(), channelOrderID))
	return o
}
