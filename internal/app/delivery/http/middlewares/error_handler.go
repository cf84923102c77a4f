package middlewares

import (
	"duty-service/internal/pkg/constvars"
	"duty-service/internal/pkg/exceptions"
	"duty-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrPanicRecovered(rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// SkillRecoverer replaces ErrorHandler on the chatbot route: the platform only
// understands a 200 skill envelope, so a panic is answered with the apology text.
func (m *Middlewares) SkillRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
				m.Log.Error("Middlewares.SkillRecoverer recovered from panic",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(exceptions.ErrPanicRecovered(rec)),
				)

				response := utils.BuildSkillTemplate(constvars.SkillMessageApology, m.InternalConfig.Skill.Version, nil)
				if err := utils.BuildSkillResponse(w, response); err != nil {
					m.Log.Error("Middlewares.SkillRecoverer failed to write apology",
						zap.String(constvars.LoggingRequestIDKey, requestID),
						zap.Error(err),
					)
				}
			}
		}()
		next.ServeHTTP(w, r)
	})
}
