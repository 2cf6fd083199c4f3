// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sos/internal/delivery/http/middleware"
	"sos/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AlertHandler   *handler.AlertHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	alertHandler   *handler.AlertHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		alertHandler:   params.AlertHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Every SOS route acts on the signed-in caller's own alert
	sosGroup := e.Group("/sos")
	sosGroup.Use(r.authMiddleware.Authenticate)

	alertsGroup := sosGroup.Group("/alerts")
	{
		alertsGroup.POST("", r.alertHandler.TriggerAlert)
		alertsGroup.GET("/current", r.alertHandler.GetCurrentAlert)
		alertsGroup.GET("/current/stream", r.alertHandler.StreamCurrentAlert)
		alertsGroup.GET("/current/deliveries", r.alertHandler.ListDeliveries)
		alertsGroup.POST("/current/cancel", r.alertHandler.CancelAlert)
		alertsGroup.POST("/current/resolve", r.alertHandler.ResolveAlert)
	}
}
