package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(amount)
	require.NoError(t, err)
	return m
}

func uuidOf(t *testing.T, s string) kernel.UUID {
	t.Helper()
	id, err := kernel.UUIDFromString(s)
	require.NoError(t, err)
	return id
}

// sequence hands out ids in order, so initialization is deterministic.
func sequence(ids ...kernel.UUID) kernel.UUIDGenerator {
	return func() kernel.UUID {
		if len(ids) == 0 {
			return kernel.UUID{}
		}
		next := ids[0]
		ids = ids[1:]
		return next
	}
}

func newProduct(t *testing.T, price string) order.Product {
	t.Helper()
	p, err := order.NewProduct(kernel.NewUUID(), "Margherita", money(t, price))
	require.NoError(t, err)
	return p
}

func newItem(t *testing.T, product order.Product, quantity int, price, subTotal string) *order.OrderItem {
	t.Helper()
	item, err := order.NewOrderItem(product, quantity, money(t, price), money(t, subTotal))
	require.NoError(t, err)
	return item
}

func newAddress(t *testing.T) order.StreetAddress {
	t.Helper()
	a, err := order.NewStreetAddress(kernel.NewUUID(), "Main St 1", "1000AA", "Amsterdam")
	require.NoError(t, err)
	return a
}

func newOrder(t *testing.T, price string, items ...*order.OrderItem) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), newAddress(t), money(t, price), items)
	require.NoError(t, err)
	return o
}

// validOrder is the 30.00 order with 10.00x1 and 10.00x2 lines of a 10.00 product.
func validOrder(t *testing.T) *order.Order {
	t.Helper()
	product := newProduct(t, "10.00")
	return newOrder(t, "30.00",
		newItem(t, product, 1, "10.00", "10.00"),
		newItem(t, product, 2, "10.00", "20.00"),
	)
}

// orderIn drives a valid order through the lifecycle to the requested status.
func orderIn(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o := validOrder(t)
	if status == order.Unknown {
		return o
	}

	require.NoError(t, o.ValidateOrder())
	require.NoError(t, o.InitializeOrder(kernel.NewUUID))

	switch status {
	case order.Pending:
	case order.Paid:
		require.NoError(t, o.Pay())
	case order.Approved:
		require.NoError(t, o.Pay())
		require.NoError(t, o.Approve())
	case order.Cancelling:
		require.NoError(t, o.Pay())
		require.NoError(t, o.InitCancel(nil))
	case order.Cancelled:
		require.NoError(t, o.Cancel(nil))
	default:
		t.Fatalf("unsupported status %s", status)
	}

	require.Equal(t, status, o.Status())
	return o
}

// restoredOrder rebuilds an initialized order with a given status and failure log.
func restoredOrder(t *testing.T, status order.Status, failureMessages []string) *order.Order {
	t.Helper()
	id := kernel.NewUUID()
	product := newProduct(t, "10.00")
	item, err := order.RestoreOrderItem(1, id, product, 1, money(t, "10.00"), money(t, "10.00"))
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		id, kernel.NewUUID(), kernel.NewUUID(), newAddress(t), money(t, "10.00"),
		[]*order.OrderItem{item}, kernel.NewUUID(), status, failureMessages,
	)
	require.NoError(t, err)
	return o
}
