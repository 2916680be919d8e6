package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"smart-daily-planner/internal/coach"
	insightHTTP "smart-daily-planner/internal/insight/delivery/http"
	insightUC "smart-daily-planner/internal/insight/usecase"
	"smart-daily-planner/internal/middleware"
	"smart-daily-planner/internal/note"
	"smart-daily-planner/internal/task"
)

// setupInsightDomain registers /api/v1/ai/summarize and /api/v1/ai/coach.
func (srv HTTPServer) setupInsightDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, taskUC task.UseCase, noteUC note.UseCase) {
	uc := insightUC.New(srv.l, taskUC, noteUC, coach.New(srv.llm, srv.l))
	h := insightHTTP.New(srv.l, uc)
	insightHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Insight domain registered")
}
