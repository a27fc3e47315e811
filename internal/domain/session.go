package domain

import "time"

type Session struct {
	ID        string     `json:"id"`
	UserID    int        `json:"user_id"`
	User      *User      `json:"user,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

// IsActive indica se a sessão ainda pode ser usada no instante informado
func (s *Session) IsActive(now time.Time) bool {
	if s == nil || s.RevokedAt != nil {
		return false
	}
	return now.Before(s.ExpiresAt)
}

type SessionEventType string

const (
	SessionSignedIn  SessionEventType = "SIGNED_IN"
	SessionSignedOut SessionEventType = "SIGNED_OUT"
)

// SessionEvent é publicado a cada mudança de estado de uma sessão
type SessionEvent struct {
	Type       SessionEventType `json:"type"`
	SessionID  string           `json:"session_id"`
	UserID     int              `json:"user_id"`
	OccurredAt time.Time        `json:"occurred_at"`
}
