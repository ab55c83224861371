// Package http exposes the coordinator over a JSON HTTP API built on echo.
//
// Requests are first checked against the embedded OpenAPI document, then bound
// to the generated ServerInterface and finally handed to the coordinator.
// Every failure is answered with a servers.Error body whose code follows the
// error kind.
package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"pancakelab/internal/core/application/usecases/queries"
	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/core/domain/model/pancake"
	"pancakelab/internal/api/servers"
	"pancakelab/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// OrderService is the set of coordinator operations the API calls.
type OrderService interface {
	CreateOrder(ctx context.Context, building, room string) (kernel.UUID, error)
	AddPancake(ctx context.Context, orderID kernel.UUID) (kernel.UUID, error)
	RemovePancake(ctx context.Context, orderID, pancakeID kernel.UUID) error
	AddIngredient(ctx context.Context, orderID, pancakeID kernel.UUID, name string, category pancake.Category) error
	RemoveIngredient(ctx context.Context, orderID, pancakeID kernel.UUID, name string) error
	CompleteOrder(ctx context.Context, orderID kernel.UUID) error
	CancelOrder(ctx context.Context, orderID kernel.UUID) error
	StartPreparing(ctx context.Context, orderID kernel.UUID) error
	MarkReadyForDelivery(ctx context.Context, orderID kernel.UUID) error
	DeliverOrder(ctx context.Context, orderID kernel.UUID) error
	GetOrder(ctx context.Context, orderID kernel.UUID) (queries.OrderResponse, error)
	GetActiveOrders(ctx context.Context) ([]queries.OrderResponse, error)
	GetOrdersByStatus(ctx context.Context, status order.Status) ([]queries.OrderResponse, error)
}

// Server implements servers.ServerInterface on top of an OrderService.
type Server struct {
	orders OrderService
}

// NewServer creates a new HTTP server backed by orders.
func NewServer(orders OrderService) *Server {
	return &Server{
		orders: orders,
	}
}

// ListOrders handles GET /api/v1/orders - active orders, or all orders in ?status=.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	var (
		orders []queries.OrderResponse
		err    error
	)

	if params.Status != nil && strings.TrimSpace(*params.Status) != "" {
		status, parseErr := order.ParseStatus(*params.Status)
		if parseErr != nil {
			return writeError(ctx, parseErr)
		}
		orders, err = s.orders.GetOrdersByStatus(ctx.Request().Context(), status)
	} else {
		orders, err = s.orders.GetActiveOrders(ctx.Request().Context())
	}
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - opens an order for a building and room.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	if err := requireNonBlank(map[string]string{"building": body.Building, "room": body.Room}); err != nil {
		return writeError(ctx, err)
	}

	orderID, err := s.orders.CreateOrder(ctx.Request().Context(), body.Building, body.Room)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId string) error {
	orderID, err := parseID("orderId", orderId)
	if err != nil {
		return writeError(ctx, err)
	}

	o, err := s.orders.GetOrder(ctx.Request().Context(), orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(o))
}

// AddPancake handles POST /api/v1/orders/{orderId}/pancakes.
func (s *Server) AddPancake(ctx echo.Context, orderId string) error {
	orderID, err := parseID("orderId", orderId)
	if err != nil {
		return writeError(ctx, err)
	}

	pancakeID, err := s.orders.AddPancake(ctx.Request().Context(), orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: pancakeID.String()})
}

// RemovePancake handles DELETE /api/v1/orders/{orderId}/pancakes/{pancakeId}.
func (s *Server) RemovePancake(ctx echo.Context, orderId string, pancakeId string) error {
	orderID, pancakeID, err := parseIDs(orderId, pancakeId)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.orders.RemovePancake(ctx.Request().Context(), orderID, pancakeID); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddIngredient handles POST /api/v1/orders/{orderId}/pancakes/{pancakeId}/ingredients.
func (s *Server) AddIngredient(ctx echo.Context, orderId string, pancakeId string) error {
	orderID, pancakeID, err := parseIDs(orderId, pancakeId)
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.AddIngredientJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	if err = requireNonBlank(map[string]string{"name": body.Name, "category": body.Category}); err != nil {
		return writeError(ctx, err)
	}

	category, err := pancake.ParseCategory(body.Category)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.orders.AddIngredient(ctx.Request().Context(), orderID, pancakeID, body.Name, category); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveIngredient handles DELETE /api/v1/orders/{orderId}/pancakes/{pancakeId}/ingredients/{name}.
func (s *Server) RemoveIngredient(ctx echo.Context, orderId string, pancakeId string, name string) error {
	orderID, pancakeID, err := parseIDs(orderId, pancakeId)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.orders.RemoveIngredient(ctx.Request().Context(), orderID, pancakeID, name); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/{orderId}/complete.
func (s *Server) CompleteOrder(ctx echo.Context, orderId string) error {
	return s.transition(ctx, orderId, s.orders.CompleteOrder)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId string) error {
	return s.transition(ctx, orderId, s.orders.CancelOrder)
}

// StartPreparing handles POST /api/v1/orders/{orderId}/start-preparing.
func (s *Server) StartPreparing(ctx echo.Context, orderId string) error {
	return s.transition(ctx, orderId, s.orders.StartPreparing)
}

// MarkReadyForDelivery handles POST /api/v1/orders/{orderId}/ready-for-delivery.
func (s *Server) MarkReadyForDelivery(ctx echo.Context, orderId string) error {
	return s.transition(ctx, orderId, s.orders.MarkReadyForDelivery)
}

// DeliverOrder handles POST /api/v1/orders/{orderId}/deliver.
func (s *Server) DeliverOrder(ctx echo.Context, orderId string) error {
	return s.transition(ctx, orderId, s.orders.DeliverOrder)
}

func (s *Server) transition(
	ctx echo.Context,
	orderId string,
	apply func(context.Context, kernel.UUID) error,
) error {
	orderID, err := parseID("orderId", orderId)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = apply(ctx.Request().Context(), orderID); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func parseID(param, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return id, nil
}

func parseIDs(orderId, pancakeId string) (kernel.UUID, kernel.UUID, error) {
	orderID, err := parseID("orderId", orderId)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	pancakeID, err := parseID("pancakeId", pancakeId)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return orderID, pancakeID, nil
}

func requireNonBlank(fields map[string]string) error {
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			return errs.NewValueIsRequiredError(name)
		}
	}
	return nil
}

func toOrder(o queries.OrderResponse) servers.Order {
	pancakes := make([]servers.Pancake, len(o.Pancakes))
	for i, p := range o.Pancakes {
		ingredients := make([]servers.Ingredient, len(p.Ingredients))
		for j, ing := range p.Ingredients {
			ingredients[j] = servers.Ingredient{
				Name:     ing.Name,
				Category: ing.Category.String(),
			}
		}
		pancakes[i] = servers.Pancake{
			Id:          p.ID.String(),
			Ingredients: ingredients,
			Description: p.Description,
			IsValid:     p.IsValid,
		}
	}

	return servers.Order{
		Id:              o.ID.String(),
		Building:        o.Building,
		Room:            o.Room,
		DeliveryAddress: o.DeliveryAddress,
		Status:          o.Status.String(),
		Pancakes:        pancakes,
		CreatedAt:       o.CreatedAt.UTC().Truncate(time.Microsecond),
		UpdatedAt:       o.UpdatedAt.UTC().Truncate(time.Microsecond),
		IsActive:        o.IsActive,
		CanBeModified:   o.CanBeModified,
	}
}
