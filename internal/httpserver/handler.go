package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"smart-daily-planner/internal/middleware"
	"smart-daily-planner/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.jwtManager, srv.cors, srv.rateLimit)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.CORS())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production, origins=%v", srv.cors.AllowedOrigins)
	} else {
		srv.gin.Use(gin.Logger())
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	if srv.devLogin {
		srv.gin.POST("/api/v1/auth/token", srv.issueToken)
		srv.l.Warn(context.Background(), "Development token issuance enabled at POST /api/v1/auth/token")
	}
}

// registerDomainRoutes wires every domain under /api/v1.
// Planning and insights read from the other domains, so they go last.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	taskUC := srv.setupTaskDomain(ctx, api, mw)
	fixedUC := srv.setupFixedScheduleDomain(ctx, api, mw)
	correctionUC := srv.setupCorrectionDomain(ctx, api, mw)
	noteUC := srv.setupNoteDomain(ctx, api, mw)

	if err := srv.setupPlanDomain(ctx, api, mw, taskUC, fixedUC, correctionUC); err != nil {
		return err
	}
	srv.setupInsightDomain(ctx, api, mw, taskUC, noteUC)

	return nil
}
