package amqp_test

import (
	"testing"

	amqpin "ordering/internal/adapters/in/amqp"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRestaurantApprovalResponseHandler_Handle(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("should approve order on APPROVED", func(t *testing.T) {
		approve := new(MockApproveOrderHandler)
		reject := new(MockRejectOrderHandler)
		approve.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ApproveOrderCommand) bool {
			return cmd.OrderID().IsEqual(orderID)
		})).Return(nil).Once()

		body := `{"orderId":"` + orderID.String() + `","restaurantId":"` + kernel.NewUUID().String() +
			`","orderApprovalStatus":"APPROVED"}`
		err := amqpin.NewRestaurantApprovalResponseHandler(approve, reject).Handle(t.Context(), []byte(body))

		require.NoError(t, err)
		approve.AssertExpectations(t)
		reject.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should reject order on REJECTED with messages", func(t *testing.T) {
		approve := new(MockApproveOrderHandler)
		reject := new(MockRejectOrderHandler)
		reject.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RejectOrderCommand) bool {
			return cmd.OrderID().IsEqual(orderID) &&
				assert.ObjectsAreEqual([]string{"product sold out"}, cmd.FailureMessages())
		})).Return(nil).Once()

		body := `{"orderId":"` + orderID.String() + `","orderApprovalStatus":"REJECTED",` +
			`"failureMessages":["product sold out"]}`
		err := amqpin.NewRestaurantApprovalResponseHandler(approve, reject).Handle(t.Context(), []byte(body))

		require.NoError(t, err)
		reject.AssertExpectations(t)
		approve.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		body := `{"orderId":"` + orderID.String() + `","orderApprovalStatus":"MAYBE"}`

		err := amqpin.NewRestaurantApprovalResponseHandler(new(MockApproveOrderHandler), new(MockRejectOrderHandler)).
			Handle(t.Context(), []byte(body))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject missing order id", func(t *testing.T) {
		body := `{"orderApprovalStatus":"APPROVED"}`

		err := amqpin.NewRestaurantApprovalResponseHandler(new(MockApproveOrderHandler), new(MockRejectOrderHandler)).
			Handle(t.Context(), []byte(body))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
