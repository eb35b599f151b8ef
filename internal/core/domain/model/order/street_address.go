package order

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrStreetAddressIsNotConstructed = errors.New("StreetAddress must be created via NewStreetAddress constructor")

// StreetAddress is the delivery address of an order.
type StreetAddress struct {
	id         kernel.UUID
	street     string
	postalCode string
	city       string

	guard guard.ConstructorGuard
}

// NewStreetAddress validates that the identifier and every address line are present.
func NewStreetAddress(id kernel.UUID, street, postalCode, city string) (StreetAddress, error) {
	if err := errors.Join(
		id.Validate(),
		requireText("street", street),
		requireText("postal code", postalCode),
		requireText("city", city),
	); err != nil {
		return StreetAddress{}, err
	}

	return StreetAddress{
		id:         id,
		street:     street,
		postalCode: postalCode,
		city:       city,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the address was created through NewStreetAddress.
func (a StreetAddress) Validate() error {
	return a.guard.Validate(ErrStreetAddressIsNotConstructed)
}

// IsEqual compares the address lines; the identifier is not part of the value.
func (a StreetAddress) IsEqual(other StreetAddress) bool {
	return a.street == other.street &&
		a.postalCode == other.postalCode &&
		a.city == other.city
}

func (a StreetAddress) ID() kernel.UUID {
	return a.id
}

func (a StreetAddress) Street() string {
	return a.street
}

func (a StreetAddress) PostalCode() string {
	return a.postalCode
}

func (a StreetAddress) City() string {
	return a.city
}

func requireText(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
