package routes

import (
	"github.com/gin-gonic/gin"

	"gurukul/internal/interfaces/http/handlers"
	"gurukul/internal/interfaces/http/middleware"
)

// CheckoutRouteConfig holds dependencies for checkout routes.
type CheckoutRouteConfig struct {
	CheckoutHandler *handlers.CheckoutHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupCheckoutRoutes configures the payment flow routes.
func SetupCheckoutRoutes(engine *gin.Engine, cfg *CheckoutRouteConfig) {
	checkout := engine.Group("")
	checkout.Use(cfg.AuthMiddleware.RequireAuth())
	{
		checkout.POST("/create-order", cfg.CheckoutHandler.CreateOrder)
		checkout.POST("/verify-payment", cfg.CheckoutHandler.VerifyPayment)
	}
}
