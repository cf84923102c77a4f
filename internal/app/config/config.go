package config

import (
	"duty-service/internal/pkg/constvars"
	"duty-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		Minio: Minio{
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Username:   utils.GetEnvString("MINIO_USERNAME", ""),
			Password:   utils.GetEnvString("MINIO_PASSWORD", ""),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "duty"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", ":8000"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			WebhookPath:                utils.GetEnvString("APP_WEBHOOK_PATH", constvars.DefaultWebhookPath),
			MetricsPath:                utils.GetEnvString("APP_METRICS_PATH", "/metrics"),
			MetricsNamespace:           utils.GetEnvString("APP_METRICS_NAMESPACE", "duty"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			ReadTimeoutInSeconds:       utils.GetEnvInt("APP_READ_TIMEOUT", 5),
			WriteTimeoutInSeconds:      utils.GetEnvInt("APP_WRITE_TIMEOUT", 5),
			RequestBodyLimitInKilobyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_KILOBYTE", 64),
		},
		Duty: AppDuty{
			Strategy:          utils.GetEnvString("DUTY_STRATEGY", constvars.DutyStrategyRotation),
			DataSource:        utils.GetEnvString("DUTY_DATA_SOURCE", constvars.DutyDataSourceFile),
			DataDir:           utils.GetEnvString("DUTY_DATA_DIR", "configs"),
			RosterFile:        utils.GetEnvString("DUTY_ROSTER_FILE", ""),
			Roster:            utils.GetEnvStringSlice("DUTY_ROSTER", nil),
			ScheduleFile:      utils.GetEnvString("DUTY_SCHEDULE_FILE", ""),
			NameMapFile:       utils.GetEnvString("DUTY_NAME_MAP_FILE", ""),
			RotationStart:     utils.GetEnvString("DUTY_ROTATION_START", "2025-09-01"),
			SkipWeekends:      utils.GetEnvBool("DUTY_SKIP_WEEKENDS", true),
			MaxGroupSize:      utils.GetEnvInt("DUTY_MAX_GROUP_SIZE", constvars.DefaultDutyMaxGroupSize),
			Label:             utils.GetEnvString("DUTY_LABEL", constvars.DefaultDutyLabel),
			UnresolvedAsToday: utils.GetEnvBool("DUTY_UNRESOLVED_AS_TODAY", false),
		},
		Skill: AppSkill{
			Version:             utils.GetEnvString("SKILL_RESPONSE_VERSION", constvars.SkillVersionV2),
			QuickRepliesEnabled: utils.GetEnvBool("SKILL_QUICK_REPLIES_ENABLED", false),
		},
	}
}
