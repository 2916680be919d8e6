package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"smart-daily-planner/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Smart Daily Planner API V1"
	HealthVersion = "1.0.0"
	ServiceName   = "smart-daily-planner"

	readyTimeout = 2 * time.Second
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck pings Postgres and, when configured, Redis.
// @Summary Readiness Check
// @Description Check if the API and its stores are ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is down"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	checks := gin.H{}
	ready := true

	if srv.postgresDB != nil {
		if err := srv.postgresDB.PingContext(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: postgres: %v", err)
			checks["postgres"] = "down"
			ready = false
		} else {
			checks["postgres"] = "up"
		}
	}

	if srv.redis != nil {
		if err := srv.redis.Ping(ctx).Err(); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: redis: %v", err)
			checks["redis"] = "down"
			ready = false
		} else {
			checks["redis"] = "up"
		}
	}

	body := gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"checks":  checks,
	}
	if !ready {
		body["status"] = "not_ready"
		response.ServiceUnavailable(c, body)
		return
	}

	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
