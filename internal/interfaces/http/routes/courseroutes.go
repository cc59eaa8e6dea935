package routes

import (
	"github.com/gin-gonic/gin"

	"gurukul/internal/interfaces/http/handlers"
)

// CourseRouteConfig holds dependencies for catalog routes.
type CourseRouteConfig struct {
	CourseHandler *handlers.CourseHandler
}

// SetupCourseRoutes configures the public catalog routes.
func SetupCourseRoutes(engine *gin.Engine, cfg *CourseRouteConfig) {
	courses := engine.Group("/courses")
	{
		courses.GET("", cfg.CourseHandler.ListCourses)
		courses.GET("/:id", cfg.CourseHandler.GetCourse)
	}
}
