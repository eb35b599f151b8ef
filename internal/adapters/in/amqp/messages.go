package amqp

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the outcome reported by the payment service.
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentCancelled PaymentStatus = "CANCELLED"
	PaymentFailed    PaymentStatus = "FAILED"
)

// OrderApprovalStatus is the outcome reported by the restaurant service.
type OrderApprovalStatus string

const (
	OrderApproved OrderApprovalStatus = "APPROVED"
	OrderRejected OrderApprovalStatus = "REJECTED"
)

// PaymentResponse answers a payment request published for an order.
type PaymentResponse struct {
	ID              string          `json:"id"`
	SagaID          string          `json:"sagaId"`
	OrderID         string          `json:"orderId"`
	PaymentID       string          `json:"paymentId"`
	CustomerID      string          `json:"customerId"`
	Price           decimal.Decimal `json:"price"`
	CreatedAt       time.Time       `json:"createdAt"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	FailureMessages []string        `json:"failureMessages"`
}

// RestaurantApprovalResponse answers an approval request for a paid order.
type RestaurantApprovalResponse struct {
	ID                  string              `json:"id"`
	SagaID              string              `json:"sagaId"`
	OrderID             string              `json:"orderId"`
	RestaurantID        string              `json:"restaurantId"`
	CreatedAt           time.Time           `json:"createdAt"`
	OrderApprovalStatus OrderApprovalStatus `json:"orderApprovalStatus"`
	FailureMessages     []string            `json:"failureMessages"`
}

// RestaurantMenu is the full state of a restaurant as published by the
// restaurant service whenever it changes.
type RestaurantMenu struct {
	RestaurantID string            `json:"restaurantId"`
	Active       bool              `json:"active"`
	Products     []MenuProductLine `json:"products"`
}

type MenuProductLine struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
