// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware to register, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	WishlistHandler *handler.WishlistHandler
	OrderHandler    *handler.OrderHandler
	ReviewHandler   *handler.ReviewHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/refresh", r.params.AuthHandler.RefreshToken)
		authGroup.GET("/me", r.params.AuthHandler.GetMe, r.params.AuthMiddleware.Authenticate)
	}

	api := e.Group("/api")

	// Catalog browsing is public.
	api.GET("/products", r.params.CatalogHandler.ListProducts)
	api.GET("/products/:id", r.params.CatalogHandler.GetProduct)
	api.GET("/products/:id/reviews", r.params.ReviewHandler.ListReviews)

	// Catalog administration requires the admin role.
	api.POST("/products", r.params.CatalogHandler.CreateProduct,
		r.params.AuthMiddleware.Authenticate,
		r.params.AuthMiddleware.RequireRole(entity.RoleAdmin),
	)

	// Everything below is scoped to the authenticated user.
	authed := api.Group("", r.params.AuthMiddleware.Authenticate)
	{
		authed.POST("/products/:id/reviews", r.params.ReviewHandler.AddReview)

		authed.GET("/cart", r.params.CartHandler.GetCart)
		authed.POST("/cart", r.params.CartHandler.AddToCart)
		authed.PUT("/cart/:id", r.params.CartHandler.UpdateCartItem)
		authed.DELETE("/cart/:id", r.params.CartHandler.RemoveCartItem)

		authed.GET("/wishlist", r.params.WishlistHandler.GetWishlist)
		authed.POST("/wishlist/toggle", r.params.WishlistHandler.ToggleWishlist)

		authed.GET("/orders", r.params.OrderHandler.ListOrders)
		authed.POST("/orders", r.params.OrderHandler.PlaceOrder)
		authed.GET("/orders/:id", r.params.OrderHandler.GetOrder)
		authed.GET("/orders/:id/qr", r.params.OrderHandler.GetOrderQR)
	}
}
