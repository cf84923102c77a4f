package routers

import (
	"duty-service/internal/app/config"
	"duty-service/internal/app/delivery/http/controllers"
	"duty-service/internal/app/delivery/http/middlewares"
	"duty-service/internal/pkg/constvars"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	dutyController *controllers.DutyController,
	healthController *controllers.HealthController,
	metricsHandler http.Handler,
) {

	corsOptions := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodOptions},
		AllowedHeaders: []string{"Accept", constvars.HeaderContentType, constvars.HeaderXRequestID},
		ExposedHeaders: []string{constvars.HeaderXRequestID},
		MaxAge:         300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	router.Group(func(r chi.Router) {
		r.Use(middlewares.SkillRecoverer)
		r.Use(middlewares.SkillRateLimit())
		r.Use(middlewares.BodyLimit)
		attachDutyRoutes(r, internalConfig.App.WebhookPath, dutyController)
	})

	router.Group(func(r chi.Router) {
		r.Use(middlewares.ErrorHandler)
		r.Use(middlewares.RateLimit())
		attachHealthRoutes(r, healthController)
		attachMetricsRoutes(r, internalConfig.App.MetricsPath, metricsHandler)
	})
}
