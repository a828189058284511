package service

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// sign-in failures do not reveal which one it was.
	ErrInvalidCredentials = errors.New("service: invalid email or password")

	// ErrEmailTaken is returned when sign-up hits an existing email.
	ErrEmailTaken = errors.New("service: email already registered")

	// ErrUserBanned rejects sign-in and session resolution for banned users.
	ErrUserBanned = errors.New("service: user is banned")

	// ErrSessionInvalid covers unknown and expired session tokens.
	ErrSessionInvalid = errors.New("service: session invalid or expired")

	// ErrPasswordTooShort mirrors the client-side minimum length rule.
	ErrPasswordTooShort = errors.New("Password must be at least 8 characters")

	// ErrInvalidInput is returned for missing or malformed request fields.
	ErrInvalidInput = errors.New("service: invalid input")

	// ErrVerificationInvalid covers unknown and expired verification tokens.
	ErrVerificationInvalid = errors.New("service: verification invalid or expired")
)
