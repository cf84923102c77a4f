package routers

import (
	"duty-service/internal/app/delivery/http/controllers"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func attachHealthRoutes(router chi.Router, ctrl *controllers.HealthController) {
	router.Get("/", ctrl.Liveness)
}

// attachMetricsRoutes skips registration when metrics are disabled.
func attachMetricsRoutes(router chi.Router, metricsPath string, handler http.Handler) {
	if metricsPath == "" || handler == nil {
		return
	}
	router.Method(http.MethodGet, metricsPath, handler)
}
