package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"eqfield":   "must match %s",
	"oneof":     "must be one of [%s]",
	"specialty": "must be one of the supported specialties",
	"dive":      "is invalid",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"eqfield": true,
	"oneof":   true,
}

// Error messages for clients
const (
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientDashboardUnavailable          = "dashboard data is temporarily unavailable, please try again"
	ErrClientUserNotFound                  = "user not found"
	ErrClientRegistrationInProgress        = "a registration for this email is already in progress"
)

// Error messages for developers
const (
	ErrDevInvalidInput         = "invalid input"
	ErrDevCannotParseJSON      = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON    = "cannot convert struct or other data types to JSON"
	ErrDevFailedToHashPassword = "failed to hash password"
	ErrDevMissingRequestID     = "request id is missing from context"
	ErrDevMissingSessionData   = "session data is missing from context"
	ErrDevRoleTypeDoesntMatch  = "invalid role type, request done by user with different type"

	// Usecase messages
	ErrDevPasswordsDoNotMatch = "passwords do not match"
	ErrDevEmailAlreadyExists  = "email already exists"
	ErrDevRegistrationLocked  = "registration lock for '%s' is held by another request"

	// Validation messages
	ErrDevValidationFailed = "validation failed"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthGenerateToken         = "failed to generate token"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBDuplicateKey             = "document with the same unique key already exists"
	ErrDevDBDocumentNotFound         = "document not found in database"
	ErrDevDBInvalidObjectID          = "'%s' is not a valid object id"

	// Document store messages
	ErrDevDocstoreQueryFailed    = "document store query on '%s' failed"
	ErrDevDocstoreInvalidPath    = "document store path '%s' is not a collection path"
	ErrDevDocstoreInvalidFilter  = "document store filter operator '%s' is not supported"
	ErrDevDashboardFetchFailed   = "dashboard fetcher '%s' failed"
	ErrDevDashboardInvalidTZ     = "cannot load dashboard time zone '%s'"
	ErrDevFixtureCannotBeLoaded  = "cannot load document fixtures from '%s'"
	ErrDevFixtureUnsupportedPath = "fixture path '%s' is not supported"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisGetNoData  = "failed to GET data from redis, there is no data associated with key %s"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"
	ErrDevRedisUnlock     = "failed to release lock %s, it is held by another owner"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into queue '%s'"

	// Server messages
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerParseSessionData = "failed to parse session data"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)

const (
	ErrEnvParsing = "Error parsing %s: %v, will use default value"
)
