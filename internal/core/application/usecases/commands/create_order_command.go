package commands

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one order item is required")
)

// OrderItemInput is one line of the customer's basket as the customer sent it.
type OrderItemInput struct {
	ProductID kernel.UUID
	Quantity  int
	Price     kernel.Money
	SubTotal  kernel.Money
}

// AddressInput is the delivery address as the customer sent it.
type AddressInput struct {
	Street     string
	PostalCode string
	City       string
}

// CreateOrderCommand represents a customer placing an order at a restaurant.
// Prices are the customer's view; the handler confirms them against the
// restaurant menu before the order is accepted.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, restaurantID, price, items, address)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	resp, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s is %s", resp.TrackingID, resp.Status)
type CreateOrderCommand struct {
	customerID   kernel.UUID
	restaurantID kernel.UUID
	price        kernel.Money
	items        []OrderItemInput
	address      AddressInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand checks the identifiers and that the basket is not empty.
// Business rules on prices are left to the domain.
func NewCreateOrderCommand(
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	price kernel.Money,
	items []OrderItemInput,
	address AddressInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		price:   price,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c CreateOrderCommand) Price() kernel.Money {
	return c.price
}

func (c CreateOrderCommand) Items() []OrderItemInput {
	return append([]OrderItemInput(nil), c.items...)
}

func (c CreateOrderCommand) Address() AddressInput {
	return c.address
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}

	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}

	c.restaurantID = id
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for i, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("item %d product id", i), err)
		}
	}

	c.items = append([]OrderItemInput(nil), items...)
	return nil
}
