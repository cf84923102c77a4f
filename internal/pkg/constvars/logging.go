package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingUtteranceKey  = "utterance"
	LoggingIntentKey     = "intent"
	LoggingDateKey       = "date"
	LoggingStrategyKey   = "strategy"
	LoggingSourceKey     = "source"
	LoggingObjectKey     = "object"
)
