package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// SaveRestaurantCommandHandler stores a restaurant and its menu so later orders
// are confirmed against it.
type SaveRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

func NewSaveRestaurantCommandHandler(uowFactory RestaurantUoWFactory) SaveRestaurantCommandHandler {
	return SaveRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h SaveRestaurantCommandHandler) Handle(ctx context.Context, cmd SaveRestaurantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	inputs := cmd.Products()
	products := make([]order.Product, 0, len(inputs))
	for _, in := range inputs {
		p, err := order.NewProduct(in.ID, in.Name, in.Price)
		if err != nil {
			return err
		}
		products = append(products, p)
	}

	restaurant, err := order.NewRestaurant(cmd.RestaurantID(), products, cmd.Active())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RestaurantRepository().Save(ctx, restaurant); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
