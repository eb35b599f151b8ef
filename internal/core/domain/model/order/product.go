package order

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is the menu entry an order item refers to. Name and price are the
// restaurant's confirmed values once the order has been matched against the
// restaurant menu; before that a product may carry only its identifier.
type Product struct {
	id    kernel.UUID
	name  string
	price kernel.Money

	guard guard.ConstructorGuard
}

// NewProduct creates a product. Only the identifier is mandatory.
func NewProduct(id kernel.UUID, name string, price kernel.Money) (Product, error) {
	if err := id.Validate(); err != nil {
		return Product{}, err
	}

	return Product{
		id:    id,
		name:  name,
		price: price,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the product was created through NewProduct.
func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares products by identifier.
func (p Product) IsEqual(other Product) bool {
	return p.id.IsEqual(other.id)
}

func (p Product) ID() kernel.UUID {
	return p.id
}

func (p Product) Name() string {
	return p.name
}

func (p Product) Price() kernel.Money {
	return p.price
}

// withConfirmedNameAndPrice returns a copy carrying the restaurant's values.
func (p Product) withConfirmedNameAndPrice(name string, price kernel.Money) Product {
	p.name = name
	p.price = price
	return p
}
