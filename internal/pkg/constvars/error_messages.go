package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"numeric":   "must be a number",
	"oneof":     "must be one of [%s]",
	"gt":        "must be greater than %s",
	"gte":       "must be greater than or equal to %s",
	"datetime":  "must be a date in %s format",
	"digits":    "must contain digits only",
	"notfuture": "cannot be in the future",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"gt":       true,
	"gte":      true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientAccountNotActive              = "account not active, please verify your account"
	ErrClientBackendUnavailable            = "the clinic service is unavailable right now"
	ErrClientDeleteNotConfirmed            = "please confirm the deletion first"
	ErrClientClinicRequired                = "clinic not found, please complete clinic setup first"
	ErrClientAccessNotGranted              = "your clinic does not have an active subscription"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevCannotParseJSON            = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON          = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm   = "cannot parse multipart form body"
	ErrDevValidationFailed           = "validation failed"
	ErrDevURLParamIDValidationFailed = "url param %s validation failed"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevPanicRecovered             = "handler panicked on %s %s"
	ErrDevAuthTokenMissing           = "auth token missing"
	ErrDevAuthTokenInvalid           = "auth token invalid"
	ErrDevAuthTokenInvalidOrExpired  = "auth token invalid or expired"
	ErrDevAuthGenerateToken          = "failed to generate auth token"
	ErrDevAuthSigningMethod          = "unexpected token signing method"
	ErrDevAuthSessionNotFound        = "session not found in store"
	ErrDevAuthAccountNotActive       = "backend reports account not active"
	ErrDevRoleNotPermitted           = "role %s is not permitted to %s %s"
	ErrDevRBACEnforce                = "failed to enforce RBAC policy"
	ErrDevAccessNotGranted           = "access gate resolved to %s"
	ErrDevDeleteNotConfirmed         = "delete request without confirm=true"
	ErrDevClinicMissingInSession     = "session does not carry a clinic id"
	ErrDevCreateHTTPRequest          = "failed to create HTTP request"
	ErrDevSendHTTPRequest            = "failed to send HTTP request to %s"
	ErrDevBackendResponse            = "backend responded %d for %s: %s"
	ErrDevDecodeResponse             = "failed to decode %s response"
	ErrDevReadResponse               = "failed to read %s response body"
	ErrDevRedisSetData               = "failed to set data in redis"
	ErrDevRedisGetData               = "failed to get data from redis"
	ErrDevRedisDeleteData            = "failed to delete data from redis"
	ErrDevRabbitMQPublishMessage     = "failed to publish message to rabbitmq queue %s"
)
