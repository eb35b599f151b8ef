package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem is a line of an order. It is created detached (no identifier, no
// owning order) and bound to its order exactly once, when the order is
// initialized. Quantity, price and subtotal never change afterwards.
//
// The price invariant is checked by the owning order, not enforced here:
//
//	price > 0 && price == product.price && price*quantity == subTotal
type OrderItem struct {
	// id is the 1-based position within the order, 0 until initialization
	id int64

	// orderID is the owning order, zero until initialization
	orderID kernel.UUID

	product  Product
	quantity int
	price    kernel.Money
	subTotal kernel.Money

	guard guard.ConstructorGuard
}

// NewOrderItem creates a detached order item.
//
// Example:
//
//	product, _ := order.NewProduct(productID, "Margherita", price)
//	item, err := order.NewOrderItem(product, 2, price, price.Multiply(2))
func NewOrderItem(product Product, quantity int, price, subTotal kernel.Money) (*OrderItem, error) {
	item := &OrderItem{
		price:    price,
		subTotal: subTotal,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProduct(product),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreOrderItem rebuilds an item that belongs to a persisted order.
func RestoreOrderItem(
	id int64,
	orderID kernel.UUID,
	product Product,
	quantity int,
	price, subTotal kernel.Money,
) (*OrderItem, error) {
	item, err := NewOrderItem(product, quantity, price, subTotal)
	if err != nil {
		return nil, err
	}

	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order item id", fmt.Errorf("%d is not greater than 0", id))
	}
	if err = orderID.Validate(); err != nil {
		return nil, err
	}

	item.initialize(orderID, id)
	return item, nil
}

// Validate ensures the item was created through NewOrderItem.
func (i *OrderItem) Validate() error {
	if i == nil {
		return ErrOrderItemIsNotConstructed
	}
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// IsPriceValid checks the item price against the product price and the subtotal.
func (i *OrderItem) IsPriceValid() bool {
	return i.price.IsGreaterThanZero() &&
		i.price.IsEqual(i.product.Price()) &&
		i.price.Multiply(i.quantity).IsEqual(i.subTotal)
}

func (i *OrderItem) ID() int64 {
	return i.id
}

func (i *OrderItem) OrderID() kernel.UUID {
	return i.orderID
}

func (i *OrderItem) Product() Product {
	return i.product
}

func (i *OrderItem) Quantity() int {
	return i.quantity
}

func (i *OrderItem) Price() kernel.Money {
	return i.price
}

func (i *OrderItem) SubTotal() kernel.Money {
	return i.subTotal
}

func (i *OrderItem) initialize(orderID kernel.UUID, id int64) {
	i.orderID = orderID
	i.id = id
}

func (i *OrderItem) setProduct(product Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	i.product = product
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
