package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"smart-daily-planner/internal/fixedschedule"
	fixedHTTP "smart-daily-planner/internal/fixedschedule/delivery/http"
	fixedRepo "smart-daily-planner/internal/fixedschedule/repository/postgre"
	fixedUC "smart-daily-planner/internal/fixedschedule/usecase"
	"smart-daily-planner/internal/middleware"
)

func (srv HTTPServer) setupFixedScheduleDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) fixedschedule.UseCase {
	repo := fixedRepo.New(srv.postgresDB, srv.l)
	uc := fixedUC.New(repo, srv.l)
	h := fixedHTTP.New(srv.l, uc)
	fixedHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Fixed schedule domain registered")
	return uc
}
