package middlewares

import (
	"duty-service/internal/pkg/constvars"
	"duty-service/internal/pkg/exceptions"
	"duty-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

// RateLimit limits each client IP to APP_MAX_REQUEST requests per second and
// answers over-limit requests with a 429 error response. A non-positive limit
// disables limiting.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	return m.limitByIP(func(w http.ResponseWriter, r *http.Request) {
		utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests())
	})
}

// SkillRateLimit is RateLimit for the chatbot route: over-limit requests get
// the apology text inside a 200 skill envelope.
func (m *Middlewares) SkillRateLimit() func(next http.Handler) http.Handler {
	return m.limitByIP(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		m.Log.Warn("Middlewares.SkillRateLimit request limit reached",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
		)

		response := utils.BuildSkillTemplate(constvars.SkillMessageApology, m.InternalConfig.Skill.Version, nil)
		if err := utils.BuildSkillResponse(w, response); err != nil {
			m.Log.Error("Middlewares.SkillRateLimit failed to write apology",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	})
}

func (m *Middlewares) limitByIP(onLimit http.HandlerFunc) func(next http.Handler) http.Handler {
	if m.InternalConfig.App.MaxRequests <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(onLimit),
	)
}
