package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAbandonedOrderRepository struct{ mock.Mock }

func (m *MockAbandonedOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockAbandonedOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockAbandonedOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockAbandonedOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockAbandonedOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAbandonedOrderRepository) GetAllPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockAbandonedProductRepository struct{ mock.Mock }

func (m *MockAbandonedProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockAbandonedProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockAbandonedProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockAbandonedProductRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

type MockAbandonedUoW struct{ mock.Mock }

func (m *MockAbandonedUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAbandonedUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAbandonedUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAbandonedUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockAbandonedUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockAbandonedUoWFactory struct{ mock.Mock }

func (m *MockAbandonedUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockAbandonedPublisher struct{ mock.Mock }

func (m *MockAbandonedPublisher) PublishOrderChanged(ctx context.Context, change ports.OrderChange, aggregate *order.Order) error {
	args := m.Called(ctx, change, aggregate)
	return args.Error(0)
}

func TestNewReleaseAbandonedOrdersCommand_ValidInput(t *testing.T) {
	cutoff := time.Now().Add(-30 * time.Minute)
	cmd, err := commands.NewReleaseAbandonedOrdersCommand(cutoff)
	require.NoError(t, err)
	assert.Equal(t, cutoff, cmd.Cutoff())
}

func TestNewReleaseAbandonedOrdersCommand_ZeroCutoff(t *testing.T) {
	_, err := commands.NewReleaseAbandonedOrdersCommand(time.Time{})
	require.Error(t, err)
}

func TestReleaseAbandonedOrdersCommandHandler_Handle_ReleasesAllAbandoned(t *testing.T) {
	ctx := t.Context()
	cutoff := time.Now().Add(-30 * time.Minute)

	p1 := reservedProduct(t)
	p2 := reservedProduct(t)
	order1 := restoredOrder(t, p1, order.Pending)
	order2 := restoredOrder(t, p2, order.Pending)
	abandoned := []*order.Order{order1, order2}

	cmd, err := commands.NewReleaseAbandonedOrdersCommand(cutoff)
	require.NoError(t, err)

	orderRepo := new(MockAbandonedOrderRepository)
	productRepo := new(MockAbandonedProductRepository)
	uow := new(MockAbandonedUoW)
	publisher := new(MockAbandonedPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllPendingCreatedBefore", ctx, cutoff).Return(abandoned, nil).Once(),
		orderRepo.On("GetForUpdate", ctx, order1.ID()).Return(order1, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetForUpdate", ctx, p1.ID()).Return(p1, nil).Once(),
		productRepo.On("Update", ctx, p1).Return(nil).Once(),
		orderRepo.On("Update", ctx, order1).Return(nil).Once(),
		orderRepo.On("GetForUpdate", ctx, order2.ID()).Return(order2, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetForUpdate", ctx, p2.ID()).Return(p2, nil).Once(),
		productRepo.On("Update", ctx, p2).Return(nil).Once(),
		orderRepo.On("Update", ctx, order2).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("PublishOrderChanged", ctx, ports.OrderStatusChanged, order1).Return(nil).Once()
	publisher.On("PublishOrderChanged", ctx, ports.OrderStatusChanged, order2).Return(nil).Once()

	factory := new(MockAbandonedUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReleaseAbandonedOrdersCommandHandler(factory, publisher)
	released, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, released)

	assert.Equal(t, order.Cancelled, order1.Status())
	assert.Equal(t, order.Cancelled, order2.Status())
	assert.Equal(t, 0, p1.Reserved())
	assert.Equal(t, 0, p2.Reserved())
	assert.Equal(t, 10, p1.Quantity())

	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestReleaseAbandonedOrdersCommandHandler_Handle_NothingToRelease(t *testing.T) {
	ctx := t.Context()
	cutoff := time.Now().Add(-30 * time.Minute)

	cmd, err := commands.NewReleaseAbandonedOrdersCommand(cutoff)
	require.NoError(t, err)

	orderRepo := new(MockAbandonedOrderRepository)
	uow := new(MockAbandonedUoW)
	publisher := new(MockAbandonedPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllPendingCreatedBefore", ctx, cutoff).Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAbandonedUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReleaseAbandonedOrdersCommandHandler(factory, publisher)
	released, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, released)
	publisher.AssertNotCalled(t, "PublishOrderChanged", mock.Anything, mock.Anything, mock.Anything)
}

func TestReleaseAbandonedOrdersCommandHandler_Handle_SkipsOrderPaidSinceListing(t *testing.T) {
	ctx := t.Context()
	cutoff := time.Now().Add(-30 * time.Minute)

	p := reservedProduct(t)
	stale := restoredOrder(t, p, order.Pending)

	// The same order as the database now has it: payment arrived after the
	// listing query ran.
	item, err := order.NewItem(p.ID(), p.Name(), p.Price(), 2, "")
	require.NoError(t, err)
	items := []order.Item{item}
	totals := services.NewPricingCalculator().Calculate(items, order.Standard)
	paid, err := order.RestoreOrder(stale.ID(), stale.UserID(), items,
		testAddress(t), testAddress(t), order.CreditCard, order.Standard,
		totals, order.Pending, order.Paid, "", "")
	require.NoError(t, err)

	cmd, err := commands.NewReleaseAbandonedOrdersCommand(cutoff)
	require.NoError(t, err)

	orderRepo := new(MockAbandonedOrderRepository)
	productRepo := new(MockAbandonedProductRepository)
	uow := new(MockAbandonedUoW)
	publisher := new(MockAbandonedPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllPendingCreatedBefore", ctx, cutoff).
			Return([]*order.Order{stale}, nil).Once(),
		orderRepo.On("GetForUpdate", ctx, stale.ID()).Return(paid, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAbandonedUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReleaseAbandonedOrdersCommandHandler(factory, publisher)
	released, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, released)

	// The paid order keeps its status and its reservation.
	assert.Equal(t, order.Pending, paid.Status())
	assert.Equal(t, 2, p.Reserved())
	productRepo.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "PublishOrderChanged", mock.Anything, mock.Anything, mock.Anything)
}

func TestReleaseAbandonedOrdersCommandHandler_Handle_QueryError(t *testing.T) {
	ctx := t.Context()
	cutoff := time.Now().Add(-30 * time.Minute)

	cmd, err := commands.NewReleaseAbandonedOrdersCommand(cutoff)
	require.NoError(t, err)

	orderRepo := new(MockAbandonedOrderRepository)
	uow := new(MockAbandonedUoW)
	publisher := new(MockAbandonedPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllPendingCreatedBefore", ctx, cutoff).
			Return(nil, errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAbandonedUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReleaseAbandonedOrdersCommandHandler(factory, publisher)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
}

func TestReleaseAbandonedOrdersCommandHandler_Handle_RollsBackOnReleaseError(t *testing.T) {
	ctx := t.Context()
	cutoff := time.Now().Add(-30 * time.Minute)

	p := reservedProduct(t)
	abandonedOrder := restoredOrder(t, p, order.Pending)

	cmd, err := commands.NewReleaseAbandonedOrdersCommand(cutoff)
	require.NoError(t, err)

	orderRepo := new(MockAbandonedOrderRepository)
	productRepo := new(MockAbandonedProductRepository)
	uow := new(MockAbandonedUoW)
	publisher := new(MockAbandonedPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllPendingCreatedBefore", ctx, cutoff).
			Return([]*order.Order{abandonedOrder}, nil).Once(),
		orderRepo.On("GetForUpdate", ctx, abandonedOrder.ID()).Return(abandonedOrder, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetForUpdate", ctx, p.ID()).Return(nil, errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAbandonedUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReleaseAbandonedOrdersCommandHandler(factory, publisher)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	publisher.AssertNotCalled(t, "PublishOrderChanged", mock.Anything, mock.Anything, mock.Anything)
}
