package commands

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrSaveRestaurantCommandIsNotConstructed = errors.New(
	"SaveRestaurantCommand must be created via NewSaveRestaurantCommand constructor",
)

// ProductInput is one menu entry as published by the restaurant side.
type ProductInput struct {
	ID    kernel.UUID
	Name  string
	Price kernel.Money
}

// SaveRestaurantCommand replaces what the ordering service knows about a
// restaurant: whether it accepts orders and its whole menu.
type SaveRestaurantCommand struct {
	restaurantID kernel.UUID
	active       bool
	products     []ProductInput

	guard guard.ConstructorGuard
}

func NewSaveRestaurantCommand(restaurantID kernel.UUID, active bool, products []ProductInput) (SaveRestaurantCommand, error) {
	cmd := SaveRestaurantCommand{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setProducts(products),
	); err != nil {
		return SaveRestaurantCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrSaveRestaurantCommandIsNotConstructed)
}

func (c SaveRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c SaveRestaurantCommand) Active() bool {
	return c.active
}

func (c SaveRestaurantCommand) Products() []ProductInput {
	return append([]ProductInput(nil), c.products...)
}

func (c *SaveRestaurantCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}

	c.restaurantID = id
	return nil
}

func (c *SaveRestaurantCommand) setProducts(products []ProductInput) error {
	for i, p := range products {
		if err := p.ID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("product %d id", i), err)
		}
		if !p.Price.IsGreaterThanZero() {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("product %d price", i),
				fmt.Errorf("%s is not greater than 0", p.Price),
			)
		}
	}

	c.products = append([]ProductInput(nil), products...)
	return nil
}
