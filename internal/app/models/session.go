package models

import "time"

type Session struct {
	SessionID      string    `json:"session_id"`
	UserID         string    `json:"user_id"`
	PractitionerID string    `json:"practitioner_id"`
	Role           string    `json:"role"`
	ExpiresAt      time.Time `json:"expires_at"`
}

func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
