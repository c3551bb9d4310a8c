package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingOperationKey  = "operation"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingStatusCodeKey = "status_code"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingRedisKey      = "redis_key"
	LoggingLockOwnerKey  = "lock_owner"
	LoggingLockTTLKey    = "lock_ttl"
	LoggingQueueKey      = "queue"

	LoggingPractitionerIDKey = "practitioner_id"
	LoggingCollectionPathKey = "collection_path"
	LoggingConversationIDKey = "conversation_id"
	LoggingMessagesKey       = "messages"
	LoggingConversationsKey  = "conversations"
	LoggingGenerationKey     = "generation"
	LoggingPendingCountKey   = "pending_count"
	LoggingUpcomingCountKey  = "upcoming_count"
	LoggingPatientCountKey   = "patient_count"
	LoggingMessageCountKey   = "message_count"
	LoggingEmailKey          = "email"
	LoggingUserIDKey         = "user_id"
)
