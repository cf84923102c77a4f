package controllers

import (
	"duty-service/internal/app/config"
	"duty-service/internal/app/contracts"
	"duty-service/internal/app/services/shared/metrics"
	"duty-service/internal/pkg/constvars"
	"duty-service/internal/pkg/dto/responses"
	"duty-service/internal/pkg/exceptions"
	"duty-service/internal/pkg/utils"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const utterancePath = "userRequest.utterance"

type DutyController struct {
	Log            *zap.Logger
	DutyUsecase    contracts.DutyUsecase
	InternalConfig *config.InternalConfig
	Metrics        *metrics.SkillMetrics
}

func NewDutyController(logger *zap.Logger, dutyUsecase contracts.DutyUsecase, internalConfig *config.InternalConfig, skillMetrics *metrics.SkillMetrics) *DutyController {
	return &DutyController{
		Log:            logger,
		DutyUsecase:    dutyUsecase,
		InternalConfig: internalConfig,
		Metrics:        skillMetrics,
	}
}

// HandleSkill answers POST {APP_WEBHOOK_PATH}. Every outcome, including an
// unreadable body or a failing usecase, is a 200 skill envelope.
func (ctrl *DutyController) HandleSkill(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		ctrl.Metrics.ObserveDuration(time.Since(start))
	}()

	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		ctrl.Log.Warn("DutyController.HandleSkill cannot read body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(exceptions.ErrReadBody(err)),
		)
		raw = nil
	}
	defer r.Body.Close()

	if len(raw) > 0 && !gjson.ValidBytes(raw) {
		ctrl.Log.Warn("DutyController.HandleSkill body is not valid JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(exceptions.ErrCannotParseJSON(nil)),
		)
	}
	utterance := extractUtterance(raw)
	text := constvars.SkillMessageApology

	reply, err := ctrl.DutyUsecase.Answer(r.Context(), utterance)
	if err != nil {
		ctrl.Log.Error("DutyController.HandleSkill usecase failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUtteranceKey, utterance),
			zap.Error(err),
		)
	} else {
		text = reply.Text
	}

	response := utils.BuildSkillTemplate(text, ctrl.InternalConfig.Skill.Version, ctrl.quickReplies())
	if err := utils.BuildSkillResponse(w, response); err != nil {
		ctrl.Log.Error("DutyController.HandleSkill cannot write response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(exceptions.ErrSkillResponseWrite(err)),
		)
	}
}

func (ctrl *DutyController) quickReplies() []responses.QuickReply {
	if !ctrl.InternalConfig.Skill.QuickRepliesEnabled {
		return nil
	}
	return utils.DefaultQuickReplies()
}

// extractUtterance returns "" for a malformed body or a missing or
// non-string utterance.
func extractUtterance(raw []byte) string {
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return ""
	}
	result := gjson.GetBytes(raw, utterancePath)
	if result.Type != gjson.String {
		return ""
	}
	return result.String()
}
