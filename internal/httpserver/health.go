package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"smart-task-dashboard/pkg/response"
)

const readyTimeout = 2 * time.Second

// ReadinessCheck reports whether a dependency named Name can serve requests.
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Smart Task Dashboard API"
	HealthVersion = "1.0.0"
	ServiceName   = "smart-task-dashboard"
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

// readyCheck runs every readiness check and answers 503 when any of them fails.
// @Summary Readiness Check
// @Description Check that the task store and cache can serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "A dependency is unreachable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	checks := make(map[string]string, len(srv.readiness))
	failed := make(map[string]string)
	for _, rc := range srv.readiness {
		if err := rc.Check(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck %s: %v", rc.Name, err)
			failed[rc.Name] = err.Error()
			checks[rc.Name] = "down"
			continue
		}
		checks[rc.Name] = "up"
	}

	if len(failed) > 0 {
		response.ServiceUnavailable(c, failed)
		return
	}
	response.OK(c, gin.H{
		"status":  "ready",
		"service": ServiceName,
		"checks":  checks,
	})
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
