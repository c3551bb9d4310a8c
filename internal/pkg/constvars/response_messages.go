package constvars

const (
	// Dashboard messages
	GetDashboardSuccessMessage        = "get dashboard successfully"
	GetDashboardSummarySuccessMessage = "get dashboard summary successfully"
	GetDashboardNotReadyMessage       = "dashboard is not ready, practitioner identity is not resolved"
	RegisterTherapistSuccessMessage   = "therapist registered successfully"
	GetTherapistProfileSuccessMessage = "get therapist profile successfully"
)
