package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"smart-daily-planner/internal/middleware"
	"smart-daily-planner/internal/note"
	noteHTTP "smart-daily-planner/internal/note/delivery/http"
	noteRepo "smart-daily-planner/internal/note/repository/postgre"
	noteUC "smart-daily-planner/internal/note/usecase"
)

// setupNoteDomain registers /api/v1/notes and returns the use case for summaries.
func (srv HTTPServer) setupNoteDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) note.UseCase {
	repo := noteRepo.New(srv.postgresDB, srv.l)
	uc := noteUC.New(repo, srv.l)
	h := noteHTTP.New(srv.l, uc)
	noteHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Note domain registered")
	return uc
}
