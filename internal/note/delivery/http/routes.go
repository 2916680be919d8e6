package http

import (
	"github.com/gin-gonic/gin"

	"smart-daily-planner/internal/middleware"
)

// RegisterRoutes mounts /notes. Every route requires authentication.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	notes := rg.Group("/notes", mw.Auth())
	{
		notes.POST("", h.Create)
		notes.GET("", h.List)
		notes.GET("/:id", h.Detail)
		notes.PUT("/:id", h.Update)
		notes.DELETE("/:id", h.Delete)
	}
}
