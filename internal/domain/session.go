package domain

import "time"

// Session links a bearer token to a user identity. Only the SHA-256
// fingerprint of the token is persisted; the opaque token itself is
// returned once at sign-in.
type Session struct {
	ID        string
	TokenHash string
	UserID    string
	ExpiresAt time.Time
	IPAddress string
	UserAgent string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
