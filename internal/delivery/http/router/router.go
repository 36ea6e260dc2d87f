// Package router contains routing setup for the HTTP delivery.
package router

import (
	"platter/internal/delivery/http/middleware"
	"platter/internal/delivery/http/router/handler"
	"platter/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	CatalogHandler *handler.CatalogHandler
	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	catalogHandler *handler.CatalogHandler
	orderHandler   *handler.OrderHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		catalogHandler: params.CatalogHandler,
		orderHandler:   params.OrderHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Open endpoints: registration and login
	e.POST("/register/user", r.accountHandler.RegisterCustomer)
	e.POST("/register/restaurant", r.accountHandler.RegisterRestaurant)
	e.POST("/register/delivery-partner", r.accountHandler.RegisterPartner)
	e.POST("/login", r.accountHandler.Login)

	authed := r.authMiddleware.Authenticate
	restaurantOnly := r.authMiddleware.RequireRole(entity.RoleRestaurant)
	partnerOnly := r.authMiddleware.RequireRole(entity.RolePartner)

	// Orders
	e.POST("/order_now", r.orderHandler.PlaceOrder, authed)
	e.PUT("/order/:id", r.orderHandler.UpdateStatus, authed)
	e.GET("/order/:id", r.orderHandler.GetOrder, authed)

	// Per-party order histories
	e.GET("/restaurant/orders/:id", r.orderHandler.ListRestaurantOrders, authed)
	e.GET("/delivery_partner/orders/:id", r.orderHandler.ListPartnerOrders, authed)
	e.GET("/users/orders/:id", r.orderHandler.ListCustomerOrders, authed)

	// Menus
	e.POST("/dishes/:restaurant_id", r.catalogHandler.AddDish, authed, restaurantOnly)
	e.PUT("/dishes/:restaurant_id", r.catalogHandler.UpdateDish, authed, restaurantOnly)
	e.GET("/dishes/:restaurant_id", r.catalogHandler.ListDishes, authed)

	// Restaurant listing and profiles
	e.GET("/restaurants", r.catalogHandler.ListRestaurants, authed)
	e.PUT("/restaurants/:id", r.accountHandler.UpdateRestaurant, authed, restaurantOnly)
	e.GET("/restaurants/:id/menu-qr", r.catalogHandler.MenuQR, authed)

	// Delivery partner profile
	e.PUT("/delivery_partner/:id", r.accountHandler.UpdatePartner, authed, partnerOnly)
}
