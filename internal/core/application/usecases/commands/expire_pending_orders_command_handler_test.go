package commands_test

import (
	"errors"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExpirePendingOrdersCommandHandler_Handle(t *testing.T) {
	cutoff := fixedNow.Add(-15 * time.Minute)

	t.Run("should cancel every expired order in one transaction", func(t *testing.T) {
		ctx := t.Context()
		f := newTransitionFixture()
		first := orderIn(t, order.Pending)
		second := orderIn(t, order.Pending)
		cmd, err := commands.NewExpirePendingOrdersCommand(cutoff)
		require.NoError(t, err)

		mock.InOrder(
			f.uow.On("Begin", ctx).Return(nil).Once(),
			f.uow.On("OrderRepository").Return(f.repo).Once(),
			f.repo.On("GetPendingCreatedBefore", ctx, cutoff).Return([]*order.Order{first, second}, nil).Once(),
			f.repo.On("Update", ctx, first).Return(nil).Once(),
			f.repo.On("Update", ctx, second).Return(nil).Once(),
			f.uow.On("Commit", ctx).Return(nil).Once(),
			f.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		expired, err := commands.NewExpirePendingOrdersCommandHandler(f.factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 2, expired)
		for _, o := range []*order.Order{first, second} {
			assert.Equal(t, order.Cancelled, o.Status())
			assert.Equal(t, []string{commands.PaymentTimedOutMessage}, o.FailureMessages())
		}
		f.assertExpectations(t)
	})

	t.Run("should not commit when nothing expired", func(t *testing.T) {
		ctx := t.Context()
		f := newTransitionFixture()
		cmd, err := commands.NewExpirePendingOrdersCommand(cutoff)
		require.NoError(t, err)

		mock.InOrder(
			f.uow.On("Begin", ctx).Return(nil).Once(),
			f.uow.On("OrderRepository").Return(f.repo).Once(),
			f.repo.On("GetPendingCreatedBefore", ctx, cutoff).Return([]*order.Order{}, nil).Once(),
			f.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		expired, err := commands.NewExpirePendingOrdersCommandHandler(f.factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Zero(t, expired)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("should roll back when an update fails", func(t *testing.T) {
		ctx := t.Context()
		f := newTransitionFixture()
		o := orderIn(t, order.Pending)
		cmd, err := commands.NewExpirePendingOrdersCommand(cutoff)
		require.NoError(t, err)

		mock.InOrder(
			f.uow.On("Begin", ctx).Return(nil).Once(),
			f.uow.On("OrderRepository").Return(f.repo).Once(),
			f.repo.On("GetPendingCreatedBefore", ctx, cutoff).Return([]*order.Order{o}, nil).Once(),
			f.repo.On("Update", ctx, o).Return(errors.New("update error")).Once(),
			f.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		expired, err := commands.NewExpirePendingOrdersCommandHandler(f.factory).Handle(ctx, cmd)

		require.EqualError(t, err, "update error")
		assert.Zero(t, expired)
		f.assertExpectations(t)
	})
}
