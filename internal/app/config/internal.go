package config

type InternalConfig struct {
	App       App
	JWT       AppJWT
	Mailer    AppMailer
	RabbitMQ  AppRabbitMQ
	Dashboard AppDashboard
}

type App struct {
	Env                              string
	Port                             string
	Version                          string
	Address                          string
	Timezone                         string
	EndpointPrefix                   string
	MaxRequests                      int
	ShutdownTimeoutInSeconds         int
	MaxTimeRequestsPerSeconds        int
	RequestBodyLimitInMegabyte       int
	DocstoreQueryTimeoutInSeconds    int
	RegistrationLockTimeoutInSeconds int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppMailer struct {
	EmailSender string
}

type AppRabbitMQ struct {
	MailerQueue string
}

// AppDashboard holds the windows applied by the dashboard fetchers.
type AppDashboard struct {
	PendingLimit            int
	UpcomingLimit           int
	ConversationScanLimit   int
	MessagesPerConversation int
	RecentMessageLimit      int
	// LegacyConversationScan scans chats without a participant filter, for
	// stores whose chats predate the participants field.
	LegacyConversationScan bool
}
