// Package http exposes order placement and tracking over REST.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type createOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResponse, error)
}

type trackOrderHandler interface {
	Handle(ctx context.Context, query queries.TrackOrderQuery) (queries.TrackOrderQueryResponse, error)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler createOrderHandler
	trackOrderHandler  trackOrderHandler
	logger             *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler createOrderHandler,
	trackOrderHandler trackOrderHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		trackOrderHandler:  trackOrderHandler,
		logger:             logger.With("component", "http"),
	}
}

// Register mounts the API routes on e. Requests under /api/v1 are checked
// against the API description first.
func (s *Server) Register(e *echo.Echo, validator echo.MiddlewareFunc) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.yaml", OpenAPIDocument)

	api := e.Group("/api/v1", validator)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:trackingId", s.TrackOrder)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := toCreateOrderCommand(request)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	response, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, "Failed to create order", err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OrderTrackingID: response.TrackingID.String(),
		OrderStatus:     response.Status.String(),
		Message:         response.Message,
	})
}

// TrackOrder handles GET /api/v1/orders/:trackingId - reports order status.
func (s *Server) TrackOrder(ctx echo.Context) error {
	trackingID, err := kernel.UUIDFromString(ctx.Param("trackingId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid tracking id",
		})
	}

	query, err := queries.NewTrackOrderQuery(trackingID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid tracking id: " + err.Error(),
		})
	}

	response, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, "Failed to track order", err)
	}

	return ctx.JSON(http.StatusOK, TrackOrderResponse{
		OrderTrackingID: response.TrackingID.String(),
		OrderStatus:     response.Status.String(),
		FailureMessages: response.FailureMessages,
	})
}

// errorResponse maps use case errors onto status codes. Rule violations carry
// their message to the client; unexpected errors are logged and hidden.
func (s *Server) errorResponse(ctx echo.Context, action string, err error) error {
	status := http.StatusInternalServerError
	message := action

	switch {
	case errors.Is(err, errs.ErrDomainRuleViolation):
		status, message = http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		status, message = http.StatusBadRequest, err.Error()
	default:
		s.logger.Error(action, "error", err, "path", ctx.Path())
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: message,
	})
}

func toCreateOrderCommand(request CreateOrderRequest) (commands.CreateOrderCommand, error) {
	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return commands.CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("customer id", err)
	}

	restaurantID, err := kernel.UUIDFromString(request.RestaurantID)
	if err != nil {
		return commands.CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("restaurant id", err)
	}

	items := make([]commands.OrderItemInput, 0, len(request.Items))
	for i, item := range request.Items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return commands.CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("item %d product id", i), err,
			)
		}

		items = append(items, commands.OrderItemInput{
			ProductID: productID,
			Quantity:  item.Quantity,
			Price:     kernel.NewMoney(item.Price),
			SubTotal:  kernel.NewMoney(item.SubTotal),
		})
	}

	return commands.NewCreateOrderCommand(
		customerID,
		restaurantID,
		kernel.NewMoney(request.Price),
		items,
		commands.AddressInput{
			Street:     request.Address.Street,
			PostalCode: request.Address.PostalCode,
			City:       request.Address.City,
		},
	)
}
