package constvars

var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"required_if": "is required when %s",
	"oneof":       "must be one of [%s]",
	"gte":         "must be greater than or equal to %s",
	"gt":          "must be greater than %s",
	"datetime":    "must match the layout %s",
	"startswith":  "must start with %s",
}

var TagsWithParams = map[string]bool{
	"required_if": true,
	"oneof":       true,
	"gte":         true,
	"gt":          true,
	"datetime":    true,
	"startswith":  true,
}

const (
	ErrClientSomethingWrongWithApplication = "something went wrong with the application"
	ErrClientCannotProcessRequest          = "cannot process the request"
	ErrClientTooManyRequests               = "too many requests, please try again later"
)

const (
	ErrDevCannotReadBody             = "failed to read request body"
	ErrDevCannotParseJSON            = "failed to parse JSON"
	ErrDevCannotMarshalJSON          = "failed to marshal JSON"
	ErrDevConfigValidationFailed     = "configuration validation failed"
	ErrDevRotationRosterEmpty        = "rotation strategy requires a non-empty roster"
	ErrDevRotationStartInvalid       = "rotation start date is not a valid YYYY-MM-DD date"
	ErrDevUnknownDutyStrategy        = "unknown duty strategy %s"
	ErrDevDutyDataOpen               = "failed to open duty data %s from %s source"
	ErrDevDutyDataRead               = "failed to read duty data %s"
	ErrDevDutyDataDecode             = "failed to decode duty data %s"
	ErrDevDutyDataUnsupportedFormat  = "unsupported duty data format for %s"
	ErrDevDutyDataInvalidScheduleKey = "schedule key %s is not a YYYY-MM-DD date"
	ErrDevInvalidCalendarDate        = "invalid calendar date %04d-%02d-%02d"
	ErrDevTooManyRequests            = "request limit per IP reached"
	ErrDevRotationStartWeekend       = "rotation start date %s falls on a weekend while weekends are skipped"
	ErrDevPanicRecovered             = "recovered from panic: %v"
	ErrDevSkillResponseWrite         = "failed to write skill response"
)
