// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"streesilk/internal/delivery/http/middleware"
	"streesilk/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler *handler.CatalogHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	ContactHandler *handler.ContactHandler
	UserHandler    *handler.UserHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler *handler.CatalogHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	contactHandler *handler.ContactHandler
	userHandler    *handler.UserHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler: params.CatalogHandler,
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
		contactHandler: params.ContactHandler,
		userHandler:    params.UserHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog routes
	e.GET("/products", r.catalogHandler.ListProducts)
	e.GET("/products/:id", r.catalogHandler.GetProduct)

	// Contact submission works with or without an identity
	e.POST("/contact", r.contactHandler.SubmitContact, r.authMiddleware.OptionalAuthenticate)

	// Cart routes require a verified identity
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("", r.cartHandler.AddItem)
		cartGroup.POST("/sync", r.cartHandler.MergeLocalCart)
		cartGroup.PATCH("/:id", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/:id", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
	}

	// Order routes require a verified identity
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.SubmitOrder)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.GET("/:id/qr", r.orderHandler.OrderQR)
	}

	// Profile routes require a verified identity
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.POST("/sync", r.userHandler.SyncUser)
		userGroup.GET("/me", r.userHandler.GetMe)
	}

	// Admin console routes: authentication here, the admin policy decision
	// inside each usecase.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	{
		adminGroup.POST("/products", r.adminHandler.CreateProduct)
		adminGroup.PATCH("/products/:id", r.adminHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.adminHandler.DeleteProduct)
		adminGroup.POST("/uploads", r.adminHandler.UploadImage)
		adminGroup.GET("/contacts", r.adminHandler.ListContactMessages)
	}
}
