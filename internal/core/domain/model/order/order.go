package order

import (
	"errors"
	"fmt"
	"slices"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrUUIDGeneratorIsRequired is returned by InitializeOrder when no generator is supplied.
	ErrUUIDGeneratorIsRequired = errs.NewValueIsRequiredError("uuid generator")
)

// Order is the aggregate root of the ordering service and its only unit of
// transactional consistency. Its items are exclusively owned and never shared.
//
// Order follows these invariants after every successful operation:
//   - id and tracking id are either both unset (before initialization) or both set
//   - status is Unknown only before initialization
//   - once validated, price equals the sum of item subtotals exactly
//   - every item's order id equals the order id once the order is initialized
//
// Order provides no locking. Callers must not run two mutating operations on the
// same instance concurrently; the repository serializes access per order id.
type Order struct {
	// id is assigned by InitializeOrder, zero before
	id kernel.UUID

	customerID      kernel.UUID
	restaurantID    kernel.UUID
	deliveryAddress StreetAddress
	price           kernel.Money
	items           []*OrderItem

	// trackingID is the customer-facing identifier, assigned with id
	trackingID kernel.UUID

	status Status

	// failureMessages stays nil until the first cancellation supplies messages
	failureMessages []string

	guard guard.ConstructorGuard
}

// NewOrder creates an order in its pre-initialization state: no identifier, no
// tracking identifier and the Unknown status. Price consistency is not checked
// here; that is ValidateOrder's job.
//
// Example:
//
//	o, err := order.NewOrder(customerID, restaurantID, address, price, items)
//	if err != nil {
//	    return err
//	}
//	if err = o.ValidateOrder(); err != nil {
//	    return err
//	}
//	err = o.InitializeOrder(kernel.NewUUID)
func NewOrder(
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress StreetAddress,
	price kernel.Money,
	items []*OrderItem,
) (*Order, error) {
	o := &Order{
		price: price,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setDeliveryAddress(deliveryAddress),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an initialized order from persistence. Items must already
// be bound to id.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress StreetAddress,
	price kernel.Money,
	items []*OrderItem,
	trackingID kernel.UUID,
	status Status,
	failureMessages []string,
) (*Order, error) {
	o, err := NewOrder(customerID, restaurantID, deliveryAddress, price, items)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		id.Validate(),
		trackingID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	for _, item := range o.items {
		if !item.orderID.IsEqual(id) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"order item",
				fmt.Errorf("item %d belongs to order %s, not %s", item.id, item.orderID, id),
			)
		}
	}

	o.id = id
	o.trackingID = trackingID
	o.status = status
	o.failureMessages = slices.Clone(failureMessages)
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// IsInitialized reports whether InitializeOrder has run.
func (o *Order) IsInitialized() bool {
	return o.status != Unknown
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

func (o *Order) DeliveryAddress() StreetAddress {
	return o.deliveryAddress
}

func (o *Order) Price() kernel.Money {
	return o.price
}

// Items returns the items in their numbering order.
func (o *Order) Items() []*OrderItem {
	return slices.Clone(o.items)
}

func (o *Order) TrackingID() kernel.UUID {
	return o.trackingID
}

func (o *Order) Status() Status {
	return o.status
}

// FailureMessages returns a copy of the failure log; nil if nothing was recorded yet.
func (o *Order) FailureMessages() []string {
	return slices.Clone(o.failureMessages)
}

// InitializeOrder assigns the identifier and tracking identifier, moves the order
// to Pending and numbers the items 1..N binding each one to the order.
// Calling it a second time fails because the identifier is already set.
func (o *Order) InitializeOrder(newUUID kernel.UUIDGenerator) error {
	if err := o.validateInitialOrder(); err != nil {
		return err
	}

	status, err := o.status.Initialize()
	if err != nil {
		return err
	}

	if newUUID == nil {
		return ErrUUIDGeneratorIsRequired
	}

	id := newUUID()
	trackingID := newUUID()
	if err = errors.Join(id.Validate(), trackingID.Validate()); err != nil {
		return err
	}

	o.id = id
	o.trackingID = trackingID
	o.status = status
	o.initializeOrderItems()
	return nil
}

// ValidateOrder checks that the order has not been initialized yet, that its total
// is positive and that every item price is valid and the subtotals add up to the
// total exactly. It never changes the order.
func (o *Order) ValidateOrder() error {
	if err := o.validateInitialOrder(); err != nil {
		return err
	}
	if err := o.validateTotalPrice(); err != nil {
		return err
	}
	return o.validateItemsPrice()
}

// ApplyRestaurantMenu replaces each item's product with the restaurant's confirmed
// name and price. Items whose product is not on the menu keep what the customer
// sent, which ValidateOrder then rejects. Only pre-initialization orders accept it.
//
// The replacement stays in place when a later ValidateOrder fails, so an order
// refused after this call no longer carries the products the customer sent.
// Callers discard such an order instead of retrying it.
func (o *Order) ApplyRestaurantMenu(restaurant *Restaurant) error {
	if err := o.validateInitialOrder(); err != nil {
		return err
	}
	if err := restaurant.Validate(); err != nil {
		return err
	}
	if !restaurant.ID().IsEqual(o.restaurantID) {
		return errs.NewDomainRuleViolationErrorWithCause(
			"Restaurant does not match the order!",
			fmt.Errorf("order is placed at %s, menu belongs to %s", o.restaurantID, restaurant.ID()),
		)
	}

	for _, item := range o.items {
		if confirmed, ok := restaurant.FindProduct(item.product.ID()); ok {
			item.product = item.product.withConfirmedNameAndPrice(confirmed.Name(), confirmed.Price())
		}
	}
	return nil
}

// Pay moves a Pending order to Paid.
func (o *Order) Pay() error {
	status, err := o.status.Pay()
	if err != nil {
		return err
	}

	o.status = status
	return nil
}

// Approve moves a Paid order to Approved.
func (o *Order) Approve() error {
	status, err := o.status.Approve()
	if err != nil {
		return err
	}

	o.status = status
	return nil
}

// InitCancel moves a Paid order to Cancelling and records why.
func (o *Order) InitCancel(failureMessages []string) error {
	status, err := o.status.InitCancel()
	if err != nil {
		return err
	}

	o.status = status
	o.updateFailureMessages(failureMessages)
	return nil
}

// Cancel moves a Pending or Cancelling order to Cancelled and records why.
func (o *Order) Cancel(failureMessages []string) error {
	status, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = status
	o.updateFailureMessages(failureMessages)
	return nil
}

// updateFailureMessages appends the non-empty new messages to an existing log.
// When there is no log yet the supplied messages are adopted unfiltered.
func (o *Order) updateFailureMessages(failureMessages []string) {
	if o.failureMessages != nil && failureMessages != nil {
		for _, message := range failureMessages {
			if message != "" {
				o.failureMessages = append(o.failureMessages, message)
			}
		}
	}
	if o.failureMessages == nil {
		o.failureMessages = slices.Clone(failureMessages)
	}
}

func (o *Order) validateInitialOrder() error {
	if o.status != Unknown || !o.id.IsZero() {
		return errs.NewDomainRuleViolationError("Order is not in correct state for initialization!")
	}
	return nil
}

func (o *Order) validateTotalPrice() error {
	if !o.price.IsGreaterThanZero() {
		return errs.NewDomainRuleViolationError("Total price must be greater than zero!")
	}
	return nil
}

func (o *Order) validateItemsPrice() error {
	itemsTotal := kernel.Zero
	for _, item := range o.items {
		if !item.IsPriceValid() {
			return errs.NewDomainRuleViolationError(fmt.Sprintf(
				"Order item price: %s is not valid for product: %s", item.price, item.product.ID(),
			))
		}
		itemsTotal = itemsTotal.Add(item.subTotal)
	}

	if !o.price.IsEqual(itemsTotal) {
		return errs.NewDomainRuleViolationError(fmt.Sprintf(
			"Total price: %s is not equal to order items total: %s!", o.price, itemsTotal,
		))
	}
	return nil
}

func (o *Order) initializeOrderItems() {
	var itemID int64 = 1
	for _, item := range o.items {
		item.initialize(o.id, itemID)
		itemID++
	}
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setDeliveryAddress(address StreetAddress) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setItems(items []*OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("item %d", i), err)
		}
	}
	o.items = slices.Clone(items)
	return nil
}
