// Package restaurantrepo persists the ordering service's view of restaurants:
// whether each one accepts orders and the confirmed names and prices of its menu.
package restaurantrepo

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RestaurantDTO represents a restaurant row and its menu.
type RestaurantDTO struct {
	ID       uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Active   bool         `gorm:"not null"`
	Products []ProductDTO `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// ProductDTO is one menu entry. The same product may be on several menus, so the
// key includes the restaurant.
type ProductDTO struct {
	RestaurantID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Price        decimal.Decimal `gorm:"type:numeric;not null"`
}

func (ProductDTO) TableName() string {
	return "restaurant_products"
}

func fromDomain(r *order.Restaurant) RestaurantDTO {
	restaurantID := r.ID().Bytes()

	products := make([]ProductDTO, 0, len(r.Products()))
	for _, p := range r.Products() {
		products = append(products, ProductDTO{
			RestaurantID: restaurantID,
			ID:           p.ID().Bytes(),
			Name:         p.Name(),
			Price:        p.Price().Amount(),
		})
	}

	return RestaurantDTO{
		ID:       restaurantID,
		Active:   r.IsActive(),
		Products: products,
	}
}

func toDomain(dto RestaurantDTO) (*order.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	products := make([]order.Product, 0, len(dto.Products))
	for _, productDto := range dto.Products {
		productID, idErr := kernel.UUIDFromBytes(productDto.ID[:])
		if idErr != nil {
			return nil, idErr
		}

		p, productErr := order.NewProduct(productID, productDto.Name, kernel.NewMoney(productDto.Price))
		if productErr != nil {
			return nil, productErr
		}
		products = append(products, p)
	}

	return order.NewRestaurant(id, products, dto.Active)
}
