package http

import (
	"github.com/gin-gonic/gin"

	"smart-daily-planner/internal/middleware"
)

// RegisterRoutes mounts the note summary and coaching endpoints under /ai.
// Coaching works anonymously.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	ai := rg.Group("/ai")
	{
		ai.POST("/summarize", mw.Auth(), mw.RateLimit(), h.Summarize)
		ai.POST("/coach", mw.OptionalAuth(), mw.RateLimit(), h.Advise)
	}
}
