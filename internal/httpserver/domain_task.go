package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"smart-daily-planner/internal/middleware"
	"smart-daily-planner/internal/task"
	taskHTTP "smart-daily-planner/internal/task/delivery/http"
	taskRepo "smart-daily-planner/internal/task/repository/postgre"
	taskUC "smart-daily-planner/internal/task/usecase"
)

// setupTaskDomain registers /api/v1/tasks and returns the use case for planning.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) task.UseCase {
	repo := taskRepo.New(srv.postgresDB, srv.l)
	uc := taskUC.New(repo, srv.l)
	h := taskHTTP.New(srv.l, uc)
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return uc
}
