package domain

import "time"

// Verification is a short-lived challenge value, currently used for email
// verification tokens minted at sign-up. Identifier is the email address,
// Value the opaque token fingerprint.
type Verification struct {
	ID         string
	Identifier string
	Value      string
	ExpiresAt  time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Expired reports whether the verification is past its expiry at now.
func (v Verification) Expired(now time.Time) bool {
	return !now.Before(v.ExpiresAt)
}
