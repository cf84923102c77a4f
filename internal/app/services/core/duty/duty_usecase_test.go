package duty

import (
	"context"
	"duty-service/internal/app/config"
	"duty-service/internal/app/contracts"
	"duty-service/internal/app/models"
	"duty-service/internal/app/services/shared/metrics"
	"duty-service/internal/pkg/constvars"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUsecase(t *testing.T, resolver contracts.DutyResolver, duty config.AppDuty, now time.Time) *dutyUsecase {
	t.Helper()
	internalConfig := &config.InternalConfig{Duty: duty}
	uc := NewDutyUsecase(resolver, internalConfig, metrics.NewSkillMetrics("test"), zap.NewNop()).(*dutyUsecase)
	uc.now = func() time.Time { return now }
	return uc
}

func TestDutyUsecase_Rotation(t *testing.T) {
	resolver, err := NewRotationResolver(testRoster, day(2025, time.September, 1), true)
	require.NoError(t, err)
	duty := config.AppDuty{Label: "청소당번"}

	t.Run("Today Is Computed In KST", func(t *testing.T) {
		// 2025-08-31 20:00 UTC is already Monday morning in Seoul.
		uc := newTestUsecase(t, resolver, duty, time.Date(2025, time.August, 31, 20, 0, 0, 0, time.UTC))

		reply, err := uc.Answer(context.Background(), "오늘 청소 누구야?")
		require.NoError(t, err)
		assert.Equal(t, "2025-09-01 청소당번: 3-2 김민수", reply.Text)
		assert.Equal(t, "date", reply.Intent)
	})

	t.Run("Tomorrow On Friday Is Weekend", func(t *testing.T) {
		uc := newTestUsecase(t, resolver, duty, time.Date(2025, time.September, 5, 3, 0, 0, 0, time.UTC))

		reply, err := uc.Answer(context.Background(), "내일")
		require.NoError(t, err)
		assert.Equal(t, "2025-09-06은 주말이라 당번이 없습니다.", reply.Text)
	})

	t.Run("Explicit Date", func(t *testing.T) {
		uc := newTestUsecase(t, resolver, duty, time.Date(2025, time.September, 1, 3, 0, 0, 0, time.UTC))

		reply, err := uc.Answer(context.Background(), "2025-09-08 당번")
		require.NoError(t, err)
		assert.Equal(t, "2025-09-08 청소당번: 3-2 김도윤", reply.Text)
	})

	t.Run("This Week Has Five Blocks", func(t *testing.T) {
		uc := newTestUsecase(t, resolver, duty, time.Date(2025, time.September, 10, 3, 0, 0, 0, time.UTC))

		reply, err := uc.Answer(context.Background(), "이번주 당번")
		require.NoError(t, err)
		assert.Equal(t, "week", reply.Intent)

		blocks := strings.Split(reply.Text, "\n\n")
		require.Len(t, blocks, 5)
		assert.Equal(t, "[2025-09-08 (월)]\n- 3-2 김도윤", blocks[0])
		assert.Equal(t, "[2025-09-12 (금)]\n- 3-2 이서연", blocks[4])
	})

	t.Run("Help And Unresolved Share The Usage Text", func(t *testing.T) {
		uc := newTestUsecase(t, resolver, duty, time.Date(2025, time.September, 1, 3, 0, 0, 0, time.UTC))

		help, err := uc.Answer(context.Background(), "도움말")
		require.NoError(t, err)
		unresolved, err := uc.Answer(context.Background(), "안녕하세요")
		require.NoError(t, err)
		empty, err := uc.Answer(context.Background(), "")
		require.NoError(t, err)

		assert.Equal(t, constvars.SkillMessageUsage, help.Text)
		assert.Equal(t, help.Text, unresolved.Text)
		assert.Equal(t, help.Text, empty.Text)
	})

	t.Run("Invalid Date Answers With Usage", func(t *testing.T) {
		uc := newTestUsecase(t, resolver, duty, time.Date(2025, time.September, 1, 3, 0, 0, 0, time.UTC))

		reply, err := uc.Answer(context.Background(), "2025-02-30 당번")
		require.NoError(t, err)
		assert.Equal(t, constvars.SkillMessageUsage, reply.Text)
		assert.Equal(t, "invalid", reply.Intent)
	})

	t.Run("Unresolved Falls Back To Today When Enabled", func(t *testing.T) {
		fallback := config.AppDuty{Label: "청소당번", UnresolvedAsToday: true}
		uc := newTestUsecase(t, resolver, fallback, time.Date(2025, time.September, 1, 3, 0, 0, 0, time.UTC))

		reply, err := uc.Answer(context.Background(), "청소 누구?")
		require.NoError(t, err)
		assert.Equal(t, "2025-09-01 청소당번: 3-2 김민수", reply.Text)

		help, err := uc.Answer(context.Background(), "help")
		require.NoError(t, err)
		assert.Equal(t, constvars.SkillMessageUsage, help.Text)
	})

	t.Run("Intents Are Counted", func(t *testing.T) {
		uc := newTestUsecase(t, resolver, duty, time.Date(2025, time.September, 1, 3, 0, 0, 0, time.UTC))

		_, _ = uc.Answer(context.Background(), "오늘")
		_, _ = uc.Answer(context.Background(), "내일")
		_, _ = uc.Answer(context.Background(), "help")

		assert.Equal(t, float64(2), testutil.ToFloat64(uc.Metrics.Requests.WithLabelValues("date")))
		assert.Equal(t, float64(1), testutil.ToFloat64(uc.Metrics.Requests.WithLabelValues("help")))
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		uc := newTestUsecase(t, resolver, duty, time.Date(2025, time.September, 1, 3, 0, 0, 0, time.UTC))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		reply, err := uc.Answer(ctx, "오늘")
		assert.Error(t, err)
		assert.Nil(t, reply)
	})
}

func TestDutyUsecase_Table(t *testing.T) {
	resolver := NewTableResolver(models.ScheduleTable{"2025-04-28": {"27 Woo", "13 Kim"}}, 6, nil)
	duty := config.AppDuty{Label: "당번"}
	uc := newTestUsecase(t, resolver, duty, time.Date(2025, time.April, 30, 3, 0, 0, 0, time.UTC))

	t.Run("Korean Date In Current Year", func(t *testing.T) {
		reply, err := uc.Answer(context.Background(), "4월 28일 당번")
		require.NoError(t, err)
		assert.Equal(t, "2025-04-28 당번:\n- 27 Woo\n- 13 Kim", reply.Text)
	})

	t.Run("Missing Date", func(t *testing.T) {
		reply, err := uc.Answer(context.Background(), "2025-04-29 당번")
		require.NoError(t, err)
		assert.Equal(t, "2025-04-29 당번 정보가 없습니다.", reply.Text)
	})

	t.Run("This Week", func(t *testing.T) {
		reply, err := uc.Answer(context.Background(), "이번주 당번")
		require.NoError(t, err)

		blocks := strings.Split(reply.Text, "\n\n")
		require.Len(t, blocks, 5)
		assert.Equal(t, "[2025-04-28 (월)]\n- 27 Woo\n- 13 Kim", blocks[0])
		assert.Equal(t, "[2025-04-29 (화)]\n- 정보 없음", blocks[1])
		assert.Equal(t, "[2025-05-02 (금)]\n- 정보 없음", blocks[4])
	})
}
