package utils

import (
	"duty-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSkillTemplate(t *testing.T) {
	t.Run("Version 2.0 Carries Quick Replies", func(t *testing.T) {
		response := BuildSkillTemplate("안내", constvars.SkillVersionV2, DefaultQuickReplies())
		assert.Equal(t, constvars.SkillVersionV2, response.Version)
		require.Len(t, response.Template.Outputs, 1)
		assert.Equal(t, "안내", response.Template.Outputs[0].SimpleText.Text)
		assert.Len(t, response.Template.QuickReplies, 4)
	})

	t.Run("Version 1.0 Omits Quick Replies", func(t *testing.T) {
		response := BuildSkillTemplate("안내", constvars.SkillVersionV1, DefaultQuickReplies())
		assert.Equal(t, constvars.SkillVersionV1, response.Version)
		assert.Empty(t, response.Template.QuickReplies)
	})

	t.Run("Unknown Version Uses 2.0", func(t *testing.T) {
		assert.Equal(t, constvars.SkillVersionV2, BuildSkillTemplate("안내", "", nil).Version)
	})
}

func TestBuildSkillResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	err := BuildSkillResponse(rr, BuildSkillTemplate("2025-09-01 청소당번: 3-2 김민수", constvars.SkillVersionV2, nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, constvars.MIMEApplicationJSONCharsetUTF8, rr.Header().Get(constvars.HeaderContentType))
	assert.JSONEq(t,
		`{"version":"2.0","template":{"outputs":[{"simpleText":{"text":"2025-09-01 청소당번: 3-2 김민수"}}]}}`,
		rr.Body.String(),
	)
}

func TestTodayIn(t *testing.T) {
	now := time.Date(2025, time.August, 31, 15, 30, 0, 0, time.UTC)

	today := TodayIn(now, KST())
	assert.Equal(t, "2025-09-01", FormatISODate(today))
	assert.Equal(t, "월", KoreanWeekday(today))
	assert.Equal(t, 0, today.Hour())
}
