package responses

import "time"

type Dashboard struct {
	Ready   bool           `json:"ready"`
	Loading bool           `json:"loading"`
	Failed  bool           `json:"failed"`
	View    *DashboardView `json:"view"`
}

type DashboardView struct {
	Summary              DashboardSummary      `json:"summary"`
	PendingRequests      []PendingRequest      `json:"pending_requests"`
	UpcomingAppointments []UpcomingAppointment `json:"upcoming_appointments"`
	RecentMessages       []RecentMessage       `json:"recent_messages"`
	GeneratedAt          time.Time             `json:"generated_at"`
}

type DashboardSummary struct {
	PendingRequestCount      int `json:"pending_request_count"`
	PatientCount             int `json:"patient_count"`
	UpcomingAppointmentCount int `json:"upcoming_appointment_count"`
	UnreadMessageCount       int `json:"unread_message_count"`
}

type PendingRequest struct {
	ID          string     `json:"id"`
	PatientName string     `json:"patient_name"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

type UpcomingAppointment struct {
	ID          string `json:"id"`
	PatientName string `json:"patient_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

type RecentMessage struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	SenderName     string    `json:"sender_name"`
	Text           string    `json:"text"`
	Timestamp      time.Time `json:"timestamp"`
	Read           bool      `json:"read"`
}
