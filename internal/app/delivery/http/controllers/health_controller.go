package controllers

import (
	"duty-service/internal/pkg/constvars"
	"duty-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type HealthController struct {
	Log *zap.Logger
}

func NewHealthController(logger *zap.Logger) *HealthController {
	return &HealthController{Log: logger}
}

func (ctrl *HealthController) Liveness(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseOK, nil)
}
