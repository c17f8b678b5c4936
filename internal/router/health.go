package router

import (
	"mannamsalon/internal/handler"

	"github.com/gin-gonic/gin"
)

// HealthRouter k8s / Cloud Run 探針
type HealthRouter struct {
	healthHandler *handler.HealthHandler
}

func NewHealthRouter(healthHandler *handler.HealthHandler) *HealthRouter {
	return &HealthRouter{healthHandler: healthHandler}
}

func (hr *HealthRouter) RegisterHealthRoutes(r *gin.Engine) {
	probes := r.Group("/health")
	for path, h := range map[string]gin.HandlerFunc{
		"/liveness":  hr.healthHandler.Liveness,
		"/readiness": hr.healthHandler.Readiness,
	} {
		probes.GET(path, h)
		probes.HEAD(path, h)
	}
}
