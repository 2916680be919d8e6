package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"smart-daily-planner/internal/classifier"
	"smart-daily-planner/internal/correction"
	correctionHTTP "smart-daily-planner/internal/correction/delivery/http"
	correctionRepo "smart-daily-planner/internal/correction/repository/postgre"
	correctionUC "smart-daily-planner/internal/correction/usecase"
	"smart-daily-planner/internal/middleware"
)

// setupCorrectionDomain picks the reason classifier from planner.classifier_mode.
func (srv HTTPServer) setupCorrectionDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) correction.UseCase {
	cls := classifier.New(srv.planner.ClassifierMode, srv.llm, srv.l)

	repo := correctionRepo.New(srv.postgresDB, srv.l)
	uc := correctionUC.New(repo, cls, srv.l, srv.planner.CorrectionHistoryLimit, srv.planner.CorrectionListLimit)
	h := correctionHTTP.New(srv.l, uc)
	correctionHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Correction domain registered (classifier=%s)", srv.planner.ClassifierMode)
	return uc
}
