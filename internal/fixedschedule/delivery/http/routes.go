package http

import (
	"github.com/gin-gonic/gin"

	"smart-daily-planner/internal/middleware"
)

// RegisterRoutes mounts /fixed-schedules. Every route requires authentication.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	fixed := rg.Group("/fixed-schedules", mw.Auth())
	{
		fixed.POST("", h.Create)
		fixed.GET("", h.List)
		fixed.PUT("/:id", h.Update)
		fixed.DELETE("/:id", h.Delete)
	}
}
