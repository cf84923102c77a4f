package config

import (
	"duty-service/internal/pkg/constvars"
	"duty-service/internal/pkg/exceptions"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfigs() (*DriverConfig, *InternalConfig) {
	driverConfig := &DriverConfig{Logger: Logger{Level: "info"}}
	internalConfig := &InternalConfig{
		App: App{
			Env:                        constvars.AppEnvDevelopment,
			Port:                       ":8000",
			WebhookPath:                "/kakao/cleaner",
			MetricsPath:                "/metrics",
			ShutdownTimeoutInSeconds:   10,
			ReadTimeoutInSeconds:       5,
			WriteTimeoutInSeconds:      5,
			RequestBodyLimitInKilobyte: 64,
		},
		Duty: AppDuty{
			Strategy:      constvars.DutyStrategyRotation,
			DataSource:    constvars.DutyDataSourceFile,
			Roster:        []string{"3-2 김민수"},
			RotationStart: "2025-09-01",
			SkipWeekends:  true,
			MaxGroupSize:  6,
			Label:         constvars.DefaultDutyLabel,
		},
		Skill: AppSkill{Version: constvars.SkillVersionV2},
	}
	return driverConfig, internalConfig
}

func TestValidate(t *testing.T) {
	t.Run("Valid Rotation Config", func(t *testing.T) {
		driverConfig, internalConfig := validConfigs()
		assert.NoError(t, Validate(driverConfig, internalConfig))
	})

	t.Run("Valid Table Config", func(t *testing.T) {
		driverConfig, internalConfig := validConfigs()
		internalConfig.Duty.Strategy = constvars.DutyStrategyTable
		internalConfig.Duty.Roster = nil
		internalConfig.Duty.ScheduleFile = "schedule.json"
		assert.NoError(t, Validate(driverConfig, internalConfig))
	})

	t.Run("Rotation Without Roster", func(t *testing.T) {
		driverConfig, internalConfig := validConfigs()
		internalConfig.Duty.Roster = nil
		err := Validate(driverConfig, internalConfig)
		require.Error(t, err)
		assert.Contains(t, err.Error(), constvars.ErrDevRotationRosterEmpty)
	})

	t.Run("Table Without Schedule File", func(t *testing.T) {
		driverConfig, internalConfig := validConfigs()
		internalConfig.Duty.Strategy = constvars.DutyStrategyTable
		err := Validate(driverConfig, internalConfig)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Contains(t, customErr.ClientMessage, "schedulefile")
	})

	t.Run("Unknown Strategy", func(t *testing.T) {
		driverConfig, internalConfig := validConfigs()
		internalConfig.Duty.Strategy = "random"
		assert.Error(t, Validate(driverConfig, internalConfig))
	})

	t.Run("Malformed Rotation Start", func(t *testing.T) {
		driverConfig, internalConfig := validConfigs()
		internalConfig.Duty.RotationStart = "2025-13-01"
		assert.Error(t, Validate(driverConfig, internalConfig))
	})

	t.Run("Rotation Start On Weekend", func(t *testing.T) {
		driverConfig, internalConfig := validConfigs()
		internalConfig.Duty.RotationStart = "2025-08-31"
		err := Validate(driverConfig, internalConfig)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "falls on a weekend")

		internalConfig.Duty.SkipWeekends = false
		assert.NoError(t, Validate(driverConfig, internalConfig))
	})

	t.Run("Unknown Skill Version", func(t *testing.T) {
		driverConfig, internalConfig := validConfigs()
		internalConfig.Skill.Version = "3.0"
		assert.Error(t, Validate(driverConfig, internalConfig))
	})

	t.Run("Webhook Path Must Be Absolute", func(t *testing.T) {
		driverConfig, internalConfig := validConfigs()
		internalConfig.App.WebhookPath = "kakao"
		assert.Error(t, Validate(driverConfig, internalConfig))
	})
}

func TestNewInternalConfigFromEnv(t *testing.T) {
	t.Setenv("DUTY_STRATEGY", constvars.DutyStrategyTable)
	t.Setenv("DUTY_ROSTER", " 3-2 김민수 , ,3-2 이서연")
	t.Setenv("DUTY_MAX_GROUP_SIZE", "4")
	t.Setenv("SKILL_QUICK_REPLIES_ENABLED", "true")

	internalConfig := NewInternalConfig()

	assert.Equal(t, constvars.DutyStrategyTable, internalConfig.Duty.Strategy)
	assert.Equal(t, []string{"3-2 김민수", "3-2 이서연"}, internalConfig.Duty.Roster)
	assert.Equal(t, 4, internalConfig.Duty.MaxGroupSize)
	assert.True(t, internalConfig.Skill.QuickRepliesEnabled)
	assert.Equal(t, constvars.SkillVersionV2, internalConfig.Skill.Version)
}
