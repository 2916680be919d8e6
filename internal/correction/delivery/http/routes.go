package http

import (
	"github.com/gin-gonic/gin"

	"smart-daily-planner/internal/middleware"
)

// RegisterRoutes maps the correction endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	corrections := rg.Group("/corrections", mw.Auth())
	{
		corrections.POST("", h.Record)
		corrections.GET("", h.List)
	}
}
