package amqp

import (
	"context"
	"fmt"
	"log/slog"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
)

type saveRestaurantHandler interface {
	Handle(ctx context.Context, cmd commands.SaveRestaurantCommand) error
}

// RestaurantMenuHandler keeps the local restaurant view in sync with the
// restaurant service.
type RestaurantMenuHandler struct {
	saveRestaurant saveRestaurantHandler
}

func NewRestaurantMenuHandler(saveRestaurant saveRestaurantHandler) RestaurantMenuHandler {
	return RestaurantMenuHandler{saveRestaurant: saveRestaurant}
}

// NewRestaurantMenuConsumer consumes queue with a RestaurantMenuHandler.
func NewRestaurantMenuConsumer(
	source deliverySource,
	queue string,
	handler RestaurantMenuHandler,
	logger *slog.Logger,
) *Consumer {
	return newConsumer(source, queue, handler, logger)
}

func (h RestaurantMenuHandler) Handle(ctx context.Context, body []byte) error {
	var menu RestaurantMenu
	if err := decode(body, &menu); err != nil {
		return err
	}

	restaurantID, err := parseID("restaurant id", menu.RestaurantID)
	if err != nil {
		return err
	}

	products := make([]commands.ProductInput, 0, len(menu.Products))
	for i, line := range menu.Products {
		productID, err := parseID(fmt.Sprintf("product %d id", i), line.ID)
		if err != nil {
			return err
		}

		products = append(products, commands.ProductInput{
			ID:    productID,
			Name:  line.Name,
			Price: kernel.NewMoney(line.Price),
		})
	}

	cmd, err := commands.NewSaveRestaurantCommand(restaurantID, menu.Active, products)
	if err != nil {
		return err
	}
	return h.saveRestaurant.Handle(ctx, cmd)
}
