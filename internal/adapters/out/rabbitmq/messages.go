package rabbitmq

import "time"

// PaymentOrderStatus tells the payment service whether to charge or refund.
type PaymentOrderStatus string

const (
	PaymentOrderPending   PaymentOrderStatus = "PENDING"
	PaymentOrderCancelled PaymentOrderStatus = "CANCELLED"
)

// RestaurantOrderStatus is the order state sent with an approval request.
type RestaurantOrderStatus string

const RestaurantOrderPaid RestaurantOrderStatus = "PAID"

// PaymentRequest asks the payment service to charge or refund an order.
type PaymentRequest struct {
	ID                 string             `json:"id"`
	SagaID             string             `json:"sagaId"`
	OrderID            string             `json:"orderId"`
	CustomerID         string             `json:"customerId"`
	Price              string             `json:"price"`
	CreatedAt          time.Time          `json:"createdAt"`
	PaymentOrderStatus PaymentOrderStatus `json:"paymentOrderStatus"`
}

// RestaurantApprovalRequest asks the restaurant to accept a paid order.
type RestaurantApprovalRequest struct {
	ID                    string                `json:"id"`
	SagaID                string                `json:"sagaId"`
	OrderID               string                `json:"orderId"`
	RestaurantID          string                `json:"restaurantId"`
	RestaurantOrderStatus RestaurantOrderStatus `json:"restaurantOrderStatus"`
	Products              []ProductLine         `json:"products"`
	Price                 string                `json:"price"`
	CreatedAt             time.Time             `json:"createdAt"`
}

type ProductLine struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}
