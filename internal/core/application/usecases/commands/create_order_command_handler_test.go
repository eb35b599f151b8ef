package commands_test

import (
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type createOrderFixture struct {
	cmd        commands.CreateOrderCommand
	restaurant *order.Restaurant
	orderRepo  *MockOrderRepository
	restRepo   *MockRestaurantRepository
	uow        *MockUoW
	factory    *MockUoWFactory
	publisher  *MockEventPublisher
	handler    commands.CreateOrderCommandHandler
}

func newCreateOrderFixture(t *testing.T, total string, active bool) createOrderFixture {
	t.Helper()

	product, err := order.NewProduct(kernel.NewUUID(), "Margherita", money(t, "10.00"))
	require.NoError(t, err)
	restaurant, err := order.NewRestaurant(kernel.NewUUID(), []order.Product{product}, active)
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		restaurant.ID(),
		money(t, total),
		[]commands.OrderItemInput{{
			ProductID: product.ID(),
			Quantity:  2,
			Price:     money(t, "10.00"),
			SubTotal:  money(t, "20.00"),
		}},
		validAddress,
	)
	require.NoError(t, err)

	f := createOrderFixture{
		cmd:        cmd,
		restaurant: restaurant,
		orderRepo:  new(MockOrderRepository),
		restRepo:   new(MockRestaurantRepository),
		uow:        new(MockUoW),
		factory:    new(MockUoWFactory),
		publisher:  new(MockEventPublisher),
	}
	f.factory.On("Create").Return(f.uow).Once()
	f.handler = commands.NewCreateOrderCommandHandler(f.factory, f.publisher, kernel.NewUUID, clock)
	return f
}

func (f createOrderFixture) assertExpectations(t *testing.T) {
	f.orderRepo.AssertExpectations(t)
	f.restRepo.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.factory.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t, "20.00", true)

	var stored *order.Order
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("RestaurantRepository").Return(f.restRepo).Once(),
		f.restRepo.On("Get", ctx, f.restaurant.ID()).Return(f.restaurant, nil).Once(),
		f.uow.On("OrderRepository").Return(f.orderRepo).Once(),
		f.orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.publisher.On("Publish", ctx, eventOfType(order.OrderCreated)).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	resp, err := f.handler.Handle(ctx, f.cmd)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, order.Pending, resp.Status)
	assert.Equal(t, "Order created successfully", resp.Message)
	assert.True(t, stored.TrackingID().IsEqual(resp.TrackingID))
	assert.Equal(t, "Margherita", stored.Items()[0].Product().Name())
	assert.Equal(t, int64(1), stored.Items()[0].ID())
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, new(MockEventPublisher), kernel.NewUUID, clock)

	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_InvalidAddress(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), money(t, "20"),
		validItems(t), commands.AddressInput{})
	require.NoError(t, err)
	factory := new(MockUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, new(MockEventPublisher), kernel.NewUUID, clock)

	_, err = h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t, "20.00", true)
	f.uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	_, err := f.handler.Handle(ctx, f.cmd)

	require.EqualError(t, err, "begin error")
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_RestaurantNotFound(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t, "20.00", true)
	notFound := errs.NewObjectNotFoundError("restaurant", f.restaurant.ID().String())
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("RestaurantRepository").Return(f.restRepo).Once(),
		f.restRepo.On("Get", ctx, f.restaurant.ID()).Return(nil, notFound).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err := f.handler.Handle(ctx, f.cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DomainRejection(t *testing.T) {
	testCases := map[string]struct {
		total    string
		active   bool
		expected string
	}{
		"price mismatch":      {"25.00", true, "Total price: 25.00 is not equal to order items total: 20.00!"},
		"inactive restaurant": {"20.00", false, "is currently not active!"},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			ctx := t.Context()
			f := newCreateOrderFixture(t, tc.total, tc.active)
			mock.InOrder(
				f.uow.On("Begin", ctx).Return(nil).Once(),
				f.uow.On("RestaurantRepository").Return(f.restRepo).Once(),
				f.restRepo.On("Get", ctx, f.restaurant.ID()).Return(f.restaurant, nil).Once(),
				f.uow.On("Rollback", ctx).Return(nil).Once(),
			)

			_, err := f.handler.Handle(ctx, f.cmd)

			require.ErrorIs(t, err, errs.ErrDomainRuleViolation)
			assert.Contains(t, err.Error(), tc.expected)
			f.orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
			f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
			f.assertExpectations(t)
		})
	}
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t, "20.00", true)
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("RestaurantRepository").Return(f.restRepo).Once(),
		f.restRepo.On("Get", ctx, f.restaurant.ID()).Return(f.restaurant, nil).Once(),
		f.uow.On("OrderRepository").Return(f.orderRepo).Once(),
		f.orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err := f.handler.Handle(ctx, f.cmd)

	require.EqualError(t, err, "commit error")
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_PublishError(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t, "20.00", true)
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("RestaurantRepository").Return(f.restRepo).Once(),
		f.restRepo.On("Get", ctx, f.restaurant.ID()).Return(f.restaurant, nil).Once(),
		f.uow.On("OrderRepository").Return(f.orderRepo).Once(),
		f.orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.publisher.On("Publish", ctx, mock.Anything).Return(errors.New("broker down")).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err := f.handler.Handle(ctx, f.cmd)

	require.EqualError(t, err, "broker down")
	f.assertExpectations(t)
}
