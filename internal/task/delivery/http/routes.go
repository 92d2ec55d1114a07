package http

import (
	"smart-task-dashboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Writes and analysis go through the rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("/analyze", mw.RateLimit(), h.Analyze)
		tasks.GET("/insights", h.Insights)
		tasks.GET("/today", h.Today)
		tasks.POST("", mw.RateLimit(), h.Create)
		tasks.GET("", h.List)
		tasks.PATCH("/:id/toggle", mw.RateLimit(), h.ToggleComplete)
		tasks.DELETE("/:id", mw.RateLimit(), h.Delete)
	}
}
