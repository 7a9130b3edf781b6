package domain

import "time"

// Session represents a logged-in user's bearer token. Only a SHA-256 hash
// of the token is stored.
type Session struct {
	ID        string
	UserID    int64
	TokenHash string
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// IsActive returns true if the session is not revoked and not expired.
func (s Session) IsActive() bool {
	if s.RevokedAt != nil {
		return false
	}
	return time.Now().Before(s.ExpiresAt)
}
