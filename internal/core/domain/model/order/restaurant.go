package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is the ordering service's view of a restaurant: whether it accepts
// orders and the confirmed names and prices of its products.
type Restaurant struct {
	id       kernel.UUID
	products []Product
	active   bool

	guard guard.ConstructorGuard
}

// NewRestaurant creates the restaurant view. Every product must be constructed.
func NewRestaurant(id kernel.UUID, products []Product, active bool) (*Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	for i, p := range products {
		if err := p.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("product %d", i), err)
		}
	}

	return &Restaurant{
		id:       id,
		products: append([]Product(nil), products...),
		active:   active,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the restaurant was created through NewRestaurant.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

func (r *Restaurant) IsActive() bool {
	return r.active
}

func (r *Restaurant) Products() []Product {
	return append([]Product(nil), r.products...)
}

// FindProduct looks a product up on the menu by identifier.
func (r *Restaurant) FindProduct(id kernel.UUID) (Product, bool) {
	for _, p := range r.products {
		if p.id.IsEqual(id) {
			return p, true
		}
	}
	return Product{}, false
}
