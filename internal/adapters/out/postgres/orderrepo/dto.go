// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling the
// conversion between the order, its items and delivery address and their tables.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Failure messages live in a text[] column; NULL and '{}' are kept apart because
// the aggregate treats "no log yet" and "empty log" differently.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null"`
	RestaurantID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	TrackingID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Price           decimal.Decimal `gorm:"type:numeric;not null"`
	Status          int             `gorm:"type:smallint;not null;index:idx_orders_status_created_at,priority:1"`
	FailureMessages pq.StringArray  `gorm:"type:text[]"`
	CreatedAt       time.Time       `gorm:"not null;index:idx_orders_status_created_at,priority:2"`
	Address         OrderAddressDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Items           []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderAddressDTO is the delivery address of one order.
type OrderAddressDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Street     string    `gorm:"type:varchar(255);not null"`
	PostalCode string    `gorm:"type:varchar(32);not null"`
	City       string    `gorm:"type:varchar(255);not null"`
}

func (OrderAddressDTO) TableName() string {
	return "order_addresses"
}

// OrderItemDTO is one line of an order, keyed by its position within the order.
type OrderItemDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement:false"`
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric;not null"`
	SubTotal  decimal.Decimal `gorm:"type:numeric;not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
// CreatedAt is left zero so GORM stamps it on insert.
func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemDTO{
			ID:        item.ID(),
			OrderID:   orderID,
			ProductID: item.Product().ID().Bytes(),
			Quantity:  item.Quantity(),
			Price:     item.Price().Amount(),
			SubTotal:  item.SubTotal().Amount(),
		})
	}

	address := o.DeliveryAddress()
	return OrderDTO{
		ID:              orderID,
		CustomerID:      o.CustomerID().Bytes(),
		RestaurantID:    o.RestaurantID().Bytes(),
		TrackingID:      o.TrackingID().Bytes(),
		Price:           o.Price().Amount(),
		Status:          int(o.Status()),
		FailureMessages: o.FailureMessages(),
		Address: OrderAddressDTO{
			ID:         address.ID().Bytes(),
			OrderID:    orderID,
			Street:     address.Street(),
			PostalCode: address.PostalCode(),
			City:       address.City(),
		},
		Items: items,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	trackingID, err := kernel.UUIDFromBytes(dto.TrackingID[:])
	if err != nil {
		return nil, err
	}

	address, err := addressToDomain(dto.Address)
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(id, itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		restaurantID,
		address,
		kernel.NewMoney(dto.Price),
		items,
		trackingID,
		order.Status(dto.Status),
		dto.FailureMessages,
	)
}

func addressToDomain(dto OrderAddressDTO) (order.StreetAddress, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.StreetAddress{}, err
	}

	return order.NewStreetAddress(id, dto.Street, dto.PostalCode, dto.City)
}

// itemToDomain restores an item. Only the product id is stored; name and price
// are the restaurant's and were checked when the order was created.
func itemToDomain(orderID kernel.UUID, dto OrderItemDTO) (*order.OrderItem, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	product, err := order.NewProduct(productID, "", kernel.Zero)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrderItem(
		dto.ID,
		orderID,
		product,
		dto.Quantity,
		kernel.NewMoney(dto.Price),
		kernel.NewMoney(dto.SubTotal),
	)
}
