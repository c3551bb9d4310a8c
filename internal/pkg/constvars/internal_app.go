package constvars

type ContextKey string

const (
	ResourceAuth       = "auth"
	ResourceDashboard  = "dashboard"
	ResourceTherapists = "therapists"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "MNDCR_SVC_"
)

const (
	RoleTherapist = "therapist"
	RolePatient   = "patient"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)
