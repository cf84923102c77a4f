package config

type (
	DriverConfig struct {
		Logger Logger
		Minio  Minio
	}
	Logger struct {
		Level               string `validate:"oneof=debug info warn error"`
		OutputFileName      string
		OutputErrorFileName string
	}
	Minio struct {
		Host       string
		Port       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
)

type InternalConfig struct {
	App   App
	Duty  AppDuty
	Skill AppSkill
}

type App struct {
	Env                        string `validate:"required"`
	Port                       string `validate:"required"`
	Version                    string
	WebhookPath                string `validate:"required,startswith=/"`
	MetricsPath                string `validate:"required,startswith=/"`
	MetricsNamespace           string
	MaxRequests                int `validate:"gte=0"`
	ShutdownTimeoutInSeconds   int `validate:"gt=0"`
	ReadTimeoutInSeconds       int `validate:"gt=0"`
	WriteTimeoutInSeconds      int `validate:"gt=0"`
	RequestBodyLimitInKilobyte int `validate:"gt=0"`
}

// AppDuty selects the resolution strategy and where its data comes from.
type AppDuty struct {
	Strategy   string `validate:"required,oneof=rotation table"`
	DataSource string `validate:"required,oneof=file minio"`
	// DataDir is the base directory for file sources and the object prefix for minio.
	DataDir      string
	RosterFile   string
	Roster       []string
	ScheduleFile string `validate:"required_if=Strategy table"`
	NameMapFile  string
	// RotationStart is the YYYY-MM-DD date on which Roster[0] is on duty.
	RotationStart     string `validate:"required,datetime=2006-01-02"`
	SkipWeekends      bool
	MaxGroupSize      int    `validate:"gte=0"`
	Label             string `validate:"required"`
	UnresolvedAsToday bool
}

type AppSkill struct {
	Version             string `validate:"oneof=1.0 2.0"`
	QuickRepliesEnabled bool
}
