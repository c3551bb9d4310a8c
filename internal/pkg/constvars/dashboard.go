package constvars

const (
	MongoCollectionAppointments = "appointments"
	MongoCollectionChats        = "chats"
	MongoCollectionMessages     = "messages"
	MongoCollectionUsers        = "users"
)

// Sub-collections are flattened into "<parent>_<child>" collections holding a
// parent reference field.
const (
	MongoSubCollectionSeparator = "_"
	MongoParentIDField          = "parentId"
)

const (
	AppointmentFieldTherapistID = "therapistId"
	AppointmentFieldPatientID   = "patientId"
	AppointmentFieldPatientName = "patientName"
	AppointmentFieldDate        = "date"
	AppointmentFieldTime        = "time"
	AppointmentFieldStatus      = "status"
	AppointmentFieldCreatedAt   = "createdAt"

	ConversationFieldParticipants = "participants"

	MessageFieldSenderName = "senderName"
	MessageFieldSenderID   = "senderId"
	MessageFieldReceiverID = "receiverId"
	MessageFieldText       = "text"
	MessageFieldTimestamp  = "timestamp"
	MessageFieldRead       = "read"
)

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusAccepted  = "accepted"
)

// ConversationKeySeparator joins the two participant ids of a legacy chat key.
const ConversationKeySeparator = "_"

const (
	DashboardDateLayout = "2006-01-02"

	DefaultDashboardPendingLimit            = 3
	DefaultDashboardUpcomingLimit           = 5
	DefaultDashboardConversationScanLimit   = 10
	DefaultDashboardMessagesPerConversation = 5
	DefaultDashboardRecentMessageLimit      = 5
	DefaultDocstoreQueryTimeoutInSeconds    = 10
)

const (
	DashboardFetcherPendingRequests      = "pending_requests"
	DashboardFetcherUpcomingAppointments = "upcoming_appointments"
	DashboardFetcherPatientCount         = "patient_count"
	DashboardFetcherRecentMessages       = "recent_messages"
)

// TherapistSpecialties lists the specialties a therapist can register with.
var TherapistSpecialties = []string{
	"Anxiety",
	"Depression",
	"Trauma",
	"Relationships",
	"Addiction",
	"Grief",
	"Stress",
	"LGBTQ+",
	"Family",
	"Career",
}

const (
	WelcomeEmailSubject    = "Welcome to MindCare"
	WelcomeEmailHTMLFormat = "<p>Hi %s,</p><p>your therapist account is ready. Complete your profile from the dashboard to start receiving patient requests.</p>"
)
