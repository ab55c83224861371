// Package servers provides the primitives of the pancake lab HTTP API: wire
// types, the ServerInterface implemented by the handlers, and the echo
// wrappers that bind path and query parameters before calling it.
//
// The types mirror the schemas of the embedded openapi.yaml.
package servers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Created defines model for Created.
type Created struct {
	Id string `json:"id"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Ingredient defines model for Ingredient.
type Ingredient struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}

// NewIngredient defines model for NewIngredient.
type NewIngredient struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Building string `json:"building"`
	Room     string `json:"room"`
}

// Order defines model for Order.
type Order struct {
	Building        string    `json:"building"`
	CanBeModified   bool      `json:"canBeModified"`
	CreatedAt       time.Time `json:"createdAt"`
	DeliveryAddress string    `json:"deliveryAddress"`
	Id              string    `json:"id"`
	IsActive        bool      `json:"isActive"`
	Pancakes        []Pancake `json:"pancakes"`
	Room            string    `json:"room"`
	Status          string    `json:"status"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Pancake defines model for Pancake.
type Pancake struct {
	Description string       `json:"description"`
	Id          string       `json:"id"`
	Ingredients []Ingredient `json:"ingredients"`
	IsValid     bool         `json:"isValid"`
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	// Status Case-insensitive status name, e.g. ready_for_delivery.
	Status *string `form:"status,omitempty" json:"status,omitempty"`
}

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// AddIngredientJSONRequestBody defines body for AddIngredient for application/json ContentType.
type AddIngredientJSONRequestBody = NewIngredient

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List orders
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// Create an order
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// Get an order
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId string) error
	// Add an empty pancake to an order
	// (POST /api/v1/orders/{orderId}/pancakes)
	AddPancake(ctx echo.Context, orderId string) error
	// Remove a pancake from an order
	// (DELETE /api/v1/orders/{orderId}/pancakes/{pancakeId})
	RemovePancake(ctx echo.Context, orderId string, pancakeId string) error
	// Put an ingredient on a pancake
	// (POST /api/v1/orders/{orderId}/pancakes/{pancakeId}/ingredients)
	AddIngredient(ctx echo.Context, orderId string, pancakeId string) error
	// Take the first ingredient with this name off a pancake
	// (DELETE /api/v1/orders/{orderId}/pancakes/{pancakeId}/ingredients/{name})
	RemoveIngredient(ctx echo.Context, orderId string, pancakeId string, name string) error
	// (POST /api/v1/orders/{orderId}/complete)
	CompleteOrder(ctx echo.Context, orderId string) error
	// (POST /api/v1/orders/{orderId}/cancel)
	CancelOrder(ctx echo.Context, orderId string) error
	// (POST /api/v1/orders/{orderId}/start-preparing)
	StartPreparing(ctx echo.Context, orderId string) error
	// (POST /api/v1/orders/{orderId}/ready-for-delivery)
	MarkReadyForDelivery(ctx echo.Context, orderId string) error
	// (POST /api/v1/orders/{orderId}/deliver)
	DeliverOrder(ctx echo.Context, orderId string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams

	err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	return w.Handler.ListOrders(ctx, params)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderId, err := bindPathParameter(ctx, "orderId")
	if err != nil {
		return err
	}

	return w.Handler.GetOrder(ctx, orderId)
}

// AddPancake converts echo context to params.
func (w *ServerInterfaceWrapper) AddPancake(ctx echo.Context) error {
	orderId, err := bindPathParameter(ctx, "orderId")
	if err != nil {
		return err
	}

	return w.Handler.AddPancake(ctx, orderId)
}

// RemovePancake converts echo context to params.
func (w *ServerInterfaceWrapper) RemovePancake(ctx echo.Context) error {
	orderId, err := bindPathParameter(ctx, "orderId")
	if err != nil {
		return err
	}

	pancakeId, err := bindPathParameter(ctx, "pancakeId")
	if err != nil {
		return err
	}

	return w.Handler.RemovePancake(ctx, orderId, pancakeId)
}

// AddIngredient converts echo context to params.
func (w *ServerInterfaceWrapper) AddIngredient(ctx echo.Context) error {
	orderId, err := bindPathParameter(ctx, "orderId")
	if err != nil {
		return err
	}

	pancakeId, err := bindPathParameter(ctx, "pancakeId")
	if err != nil {
		return err
	}

	return w.Handler.AddIngredient(ctx, orderId, pancakeId)
}

// RemoveIngredient converts echo context to params.
func (w *ServerInterfaceWrapper) RemoveIngredient(ctx echo.Context) error {
	orderId, err := bindPathParameter(ctx, "orderId")
	if err != nil {
		return err
	}

	pancakeId, err := bindPathParameter(ctx, "pancakeId")
	if err != nil {
		return err
	}

	name, err := bindPathParameter(ctx, "name")
	if err != nil {
		return err
	}

	return w.Handler.RemoveIngredient(ctx, orderId, pancakeId, name)
}

// CompleteOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CompleteOrder(ctx echo.Context) error {
	return w.withOrderID(ctx, w.Handler.CompleteOrder)
}

// CancelOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	return w.withOrderID(ctx, w.Handler.CancelOrder)
}

// StartPreparing converts echo context to params.
func (w *ServerInterfaceWrapper) StartPreparing(ctx echo.Context) error {
	return w.withOrderID(ctx, w.Handler.StartPreparing)
}

// MarkReadyForDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) MarkReadyForDelivery(ctx echo.Context) error {
	return w.withOrderID(ctx, w.Handler.MarkReadyForDelivery)
}

// DeliverOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DeliverOrder(ctx echo.Context) error {
	return w.withOrderID(ctx, w.Handler.DeliverOrder)
}

func (w *ServerInterfaceWrapper) withOrderID(ctx echo.Context, next func(echo.Context, string) error) error {
	orderId, err := bindPathParameter(ctx, "orderId")
	if err != nil {
		return err
	}

	return next(ctx, orderId)
}

func bindPathParameter(ctx echo.Context, name string) (string, error) {
	var value string

	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}

	return value, nil
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used to register handlers.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths,
// so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/orders", wrapper.ListOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/pancakes", wrapper.AddPancake)
	router.DELETE(baseURL+"/api/v1/orders/:orderId/pancakes/:pancakeId", wrapper.RemovePancake)
	router.POST(baseURL+"/api/v1/orders/:orderId/pancakes/:pancakeId/ingredients", wrapper.AddIngredient)
	router.DELETE(baseURL+"/api/v1/orders/:orderId/pancakes/:pancakeId/ingredients/:name", wrapper.RemoveIngredient)
	router.POST(baseURL+"/api/v1/orders/:orderId/complete", wrapper.CompleteOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/cancel", wrapper.CancelOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/start-preparing", wrapper.StartPreparing)
	router.POST(baseURL+"/api/v1/orders/:orderId/ready-for-delivery", wrapper.MarkReadyForDelivery)
	router.POST(baseURL+"/api/v1/orders/:orderId/deliver", wrapper.DeliverOrder)
}
