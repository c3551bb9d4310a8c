package config

import (
	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "mindcare"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                              utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                             utils.GetEnvString("APP_PORT", "8080"),
			Version:                          utils.GetEnvString("APP_VERSION", "v1"),
			Address:                          utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                         utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:                   utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			MaxRequests:                      utils.GetEnvInt("APP_MAX_REQUESTS", 60),
			ShutdownTimeoutInSeconds:         utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:        utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestBodyLimitInMegabyte:       utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			DocstoreQueryTimeoutInSeconds:    utils.GetEnvInt("APP_DOCSTORE_QUERY_TIMEOUT_IN_SECONDS", constvars.DefaultDocstoreQueryTimeoutInSeconds),
			RegistrationLockTimeoutInSeconds: utils.GetEnvInt("APP_REGISTRATION_LOCK_TIMEOUT_IN_SECONDS", 10),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Mailer: AppMailer{
			EmailSender: utils.GetEnvString("APP_MAILER_EMAIL_SENDER", "no-reply@mindcare.local"),
		},
		RabbitMQ: AppRabbitMQ{
			MailerQueue: utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "mailer"),
		},
		Dashboard: AppDashboard{
			PendingLimit:            utils.GetEnvInt("DASHBOARD_PENDING_LIMIT", constvars.DefaultDashboardPendingLimit),
			UpcomingLimit:           utils.GetEnvInt("DASHBOARD_UPCOMING_LIMIT", constvars.DefaultDashboardUpcomingLimit),
			ConversationScanLimit:   utils.GetEnvInt("DASHBOARD_CONVERSATION_SCAN_LIMIT", constvars.DefaultDashboardConversationScanLimit),
			MessagesPerConversation: utils.GetEnvInt("DASHBOARD_MESSAGES_PER_CONVERSATION", constvars.DefaultDashboardMessagesPerConversation),
			RecentMessageLimit:      utils.GetEnvInt("DASHBOARD_RECENT_MESSAGE_LIMIT", constvars.DefaultDashboardRecentMessageLimit),
			LegacyConversationScan:  utils.GetEnvBool("DASHBOARD_LEGACY_CONVERSATION_SCAN", false),
		},
	}
}
