package routes

import (
	"github.com/gin-gonic/gin"

	"gurukul/internal/interfaces/http/handlers"
	"gurukul/internal/interfaces/http/middleware"
)

// EnrollmentRouteConfig holds dependencies for entitlement routes.
type EnrollmentRouteConfig struct {
	EnrollmentHandler *handlers.EnrollmentHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// SetupEnrollmentRoutes configures entitlement and admin routes.
func SetupEnrollmentRoutes(engine *gin.Engine, cfg *EnrollmentRouteConfig) {
	users := engine.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.GET("/:id/entitlements", cfg.EnrollmentHandler.ListEntitlements)
		users.GET("/:id/access/:courseId", cfg.EnrollmentHandler.EvaluateAccess)
	}

	admin := engine.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireAdmin())
	{
		admin.POST("/entitlements", cfg.EnrollmentHandler.GrantEntitlement)
		admin.DELETE("/entitlements", cfg.EnrollmentHandler.RevokeEntitlement)
	}
}
