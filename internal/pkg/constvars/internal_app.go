package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "DUTY_SVC_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	DutyStrategyRotation = "rotation"
	DutyStrategyTable    = "table"

	DutyDataSourceFile  = "file"
	DutyDataSourceMinio = "minio"
)

const (
	// KST is UTC+9 and has no daylight saving time.
	TimezoneKSTName          = "KST"
	TimezoneKSTOffsetSeconds = 9 * 60 * 60

	DateLayoutISO = "2006-01-02"
)

const (
	SkillVersionV1 = "1.0"
	SkillVersionV2 = "2.0"

	SkillQuickReplyActionMessage = "message"
)

const (
	DefaultDutyMaxGroupSize = 6
	DefaultDutyLabel        = "청소당번"
	DefaultWebhookPath      = "/kakao/cleaner"
)
