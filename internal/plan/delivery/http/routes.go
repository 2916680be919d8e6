package http

import (
	"github.com/gin-gonic/gin"

	"smart-daily-planner/internal/middleware"
)

// RegisterRoutes mounts /plans (authenticated) and /ai (optional identity,
// rate limited).
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	plans := rg.Group("/plans", mw.Auth())
	{
		plans.GET("", h.ListPlans)
		plans.GET("/:date", h.GetPlan)

		sessions := plans.Group("/sessions")
		sessions.POST("", h.StartSession)
		sessions.GET("/:id", h.GetSession)
		sessions.POST("/:id/analyze", h.AnalyzeDurations)
		sessions.PUT("/:id/tasks/:task_id/duration", h.AdjustDuration)
		sessions.POST("/:id/suggestions", h.GenerateSuggestions)
		sessions.PUT("/:id/suggestions/:index", h.SetSuggestion)
		sessions.POST("/:id/schedule", h.GenerateSchedule)
		sessions.POST("/:id/save", h.Save)
	}

	ai := rg.Group("/ai", mw.OptionalAuth(), mw.RateLimit())
	{
		ai.POST("/analyze-durations", h.EstimateDurations)
		ai.POST("/suggestions", h.Suggest)
		ai.POST("/schedule", h.BuildSchedule)
	}
}
