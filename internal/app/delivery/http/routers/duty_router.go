package routers

import (
	"duty-service/internal/app/delivery/http/controllers"
	"duty-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDutyRoutes(router chi.Router, webhookPath string, ctrl *controllers.DutyController) {
	if webhookPath == "" {
		webhookPath = constvars.DefaultWebhookPath
	}
	router.Post(webhookPath, ctrl.HandleSkill)
}
