// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pedido/config"
	"pedido/internal/delivery/api/middleware"
	"pedido/internal/delivery/api/router/handler"
	"pedido/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	WebhookHandler      *handler.WebhookHandler
	ChatHandler         *handler.ChatHandler
	StorefrontHandler   *handler.StorefrontHandler
	SubscriptionHandler *handler.SubscriptionHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	webhookHandler      *handler.WebhookHandler
	chatHandler         *handler.ChatHandler
	storefrontHandler   *handler.StorefrontHandler
	subscriptionHandler *handler.SubscriptionHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		webhookHandler:      params.WebhookHandler,
		chatHandler:         params.ChatHandler,
		storefrontHandler:   params.StorefrontHandler,
		subscriptionHandler: params.SubscriptionHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Gateway webhooks
	webhookGroup := e.Group("/webhook")
	webhookGroup.Use(middleware.WebhookAuth(r.config))
	{
		webhookGroup.POST("/whatsapp", r.webhookHandler.HandleWhatsApp)
	}

	// Public storefront API
	apiGroup := e.Group("/api")
	{
		apiGroup.POST("/chat", r.chatHandler.SendMessage)
		apiGroup.GET("/menu", r.storefrontHandler.GetMenu)
		apiGroup.GET("/delivery-fee", r.storefrontHandler.GetDeliveryFee)
		apiGroup.GET("/orders/:ref", r.storefrontHandler.GetOrder)
		apiGroup.GET("/orders/:ref/qrcode", r.storefrontHandler.GetOrderQRCode)
		apiGroup.POST("/push/subscriptions", r.subscriptionHandler.Subscribe)
	}

	e.POST("/admin/login", r.adminHandler.Login)

	// Back-office routes require an admin token
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(impl.RoleAdmin))
	{
		adminGroup.PATCH("/orders/:ref/status", r.adminHandler.UpdateOrderStatus)
		adminGroup.PUT("/orders/:ref/items", r.adminHandler.ReplaceOrderItems)
		adminGroup.GET("/settings", r.adminHandler.GetSettings)
		adminGroup.PUT("/settings", r.adminHandler.UpdateSettings)
	}
}
