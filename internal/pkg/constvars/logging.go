package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingSessionIDKey     = "session_id"
	LoggingRoleKey          = "role"
	LoggingUserIDKey        = "user_id"
	LoggingClinicIDKey      = "clinic_id"
	LoggingAccessStateKey   = "access_state"
	LoggingRedirectKey      = "redirect"
	LoggingBackendURLKey    = "backend_url"
	LoggingBackendStatusKey = "backend_status"
	LoggingResourceKey      = "resource"
	LoggingCountKey         = "count"
	LoggingEventKey         = "event"
	LoggingQueueKey         = "queue"
	LoggingPanicKey         = "panic"
	LoggingServiceKey       = "service"
	LoggingEnvKey           = "env"
	LoggingVersionKey       = "version"
)

const ServiceName = "dentflow-service"
