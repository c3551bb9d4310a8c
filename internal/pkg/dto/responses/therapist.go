package responses

import "time"

type RegisterTherapist struct {
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	Token       string    `json:"token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type TherapistProfile struct {
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	Bio         string    `json:"bio"`
	Specialties []string  `json:"specialties"`
	License     string    `json:"license"`
	CreatedAt   time.Time `json:"created_at"`
}
