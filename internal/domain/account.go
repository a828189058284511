package domain

import "time"

// ProviderCredential is the provider id for email/password accounts.
// The password hash lives on the account row, not the user row.
const ProviderCredential = "credential"

// Account ties a user to an authentication provider. For credential
// accounts AccountID equals the user id and PasswordHash holds the
// argon2id PHC string; OAuth providers would fill the token fields.
type Account struct {
	ID           string
	AccountID    string
	ProviderID   string
	UserID       string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
