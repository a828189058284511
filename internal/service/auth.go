package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/rdmapp/rdm-server/internal/domain"
	"github.com/rdmapp/rdm-server/internal/store"
	"github.com/rdmapp/rdm-server/pkg/cryptox"
	"github.com/rdmapp/rdm-server/pkg/idx"
)

const (
	// MinPasswordLength matches the client-side validation rule.
	MinPasswordLength = 8

	DefaultSessionTTL      = 7 * 24 * time.Hour
	DefaultVerificationTTL = 24 * time.Hour
)

// AuthService owns the email/password authentication boundary: sign-up,
// sign-in, sign-out, session resolution and email verification. Sessions
// are opaque bearer tokens stored fingerprinted.
type AuthService struct {
	Store           store.Store
	SessionTTL      time.Duration
	VerificationTTL time.Duration
}

type SignUpParams struct {
	Name     string
	Email    string
	Password string

	IPAddress string
	UserAgent string
}

type SignInParams struct {
	Email    string
	Password string

	IPAddress string
	UserAgent string
}

// AuthResult is returned by sign-up and sign-in: the user record plus a
// freshly issued session token. The token is only ever available here.
type AuthResult struct {
	User             domain.User
	SessionToken     string
	SessionExpiresAt time.Time

	// VerificationToken is set on sign-up only; it would normally be
	// delivered by email rather than returned to the caller.
	VerificationToken string
}

func (s *AuthService) sessionTTL() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return DefaultSessionTTL
}

func (s *AuthService) verificationTTL() time.Duration {
	if s.VerificationTTL > 0 {
		return s.VerificationTTL
	}
	return DefaultVerificationTTL
}

// SignUpEmail registers a new user with the default grants: role "user",
// 100 RDM minted into the base purse, zeroed reward/charity/remorse purses.
// The user, credential account and email-verification token are created in
// a single transaction, then a session is opened.
func (s *AuthService) SignUpEmail(ctx context.Context, p SignUpParams) (AuthResult, error) {
	name := strings.TrimSpace(p.Name)
	email := strings.ToLower(strings.TrimSpace(p.Email))

	if name == "" {
		return AuthResult{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return AuthResult{}, fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}
	if len(p.Password) < MinPasswordLength {
		return AuthResult{}, ErrPasswordTooShort
	}

	hash, err := cryptox.HashPassword(p.Password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:                idx.New().String(),
		Name:              name,
		Email:             email,
		Role:              domain.DefaultRole,
		BasePurse:         domain.SignUpBaseGrant,
		WalletDisplayMode: domain.DisplayModeRDM,
	}

	verificationToken, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		return AuthResult{}, fmt.Errorf("generate verification token: %w", err)
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return err
		}

		account := domain.Account{
			ID:           idx.New().String(),
			AccountID:    user.ID,
			ProviderID:   domain.ProviderCredential,
			UserID:       user.ID,
			PasswordHash: hash,
		}
		if err := tx.Accounts().CreateAccount(ctx, account); err != nil {
			return err
		}

		verification := domain.Verification{
			ID:         idx.New().String(),
			Identifier: email,
			Value:      cryptox.FingerprintToken(verificationToken),
			ExpiresAt:  time.Now().UTC().Add(s.verificationTTL()),
		}
		return tx.Verifications().CreateVerification(ctx, verification)
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return AuthResult{}, ErrEmailTaken
		}
		return AuthResult{}, err
	}

	result, err := s.issueSession(ctx, user, p.IPAddress, p.UserAgent)
	if err != nil {
		return AuthResult{}, err
	}
	result.VerificationToken = verificationToken
	return result, nil
}

// SignInEmail authenticates an email/password pair and opens a session.
// Unknown email and wrong password collapse into ErrInvalidCredentials;
// banned users are rejected with ErrUserBanned while the ban is active.
func (s *AuthService) SignInEmail(ctx context.Context, p SignInParams) (AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(p.Email))

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, err
	}

	now := time.Now().UTC()
	if user.IsBanned(now) {
		return AuthResult{}, ErrUserBanned
	}
	if user.Banned {
		// Ban expiry has elapsed; lift the flag so the record reflects it.
		if err := s.Store.Users().SetBan(ctx, user.ID, false, "", nil); err != nil {
			return AuthResult{}, err
		}
		user.Banned = false
		user.BanReason = ""
		user.BanExpires = nil
	}

	account, err := s.Store.Accounts().GetCredentialAccount(ctx, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, err
	}

	if err := cryptox.VerifyPassword(p.Password, account.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, err
	}

	return s.issueSession(ctx, user, p.IPAddress, p.UserAgent)
}

// issueSession mints an opaque session token and persists its fingerprint.
func (s *AuthService) issueSession(
	ctx context.Context,
	user domain.User,
	ipAddress, userAgent string,
) (AuthResult, error) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return AuthResult{}, fmt.Errorf("generate session token: %w", err)
	}

	expiresAt := time.Now().UTC().Add(s.sessionTTL())
	session := domain.Session{
		ID:        idx.New().String(),
		TokenHash: cryptox.FingerprintToken(token),
		UserID:    user.ID,
		ExpiresAt: expiresAt,
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
	if err := s.Store.Sessions().CreateSession(ctx, session); err != nil {
		return AuthResult{}, err
	}

	return AuthResult{
		User:             user,
		SessionToken:     token,
		SessionExpiresAt: expiresAt,
	}, nil
}

// Session resolves an opaque session token to its session and user records.
// Expired sessions are deleted on sight; banned users resolve to
// ErrUserBanned even if a stale session survived the ban's revocation.
func (s *AuthService) Session(
	ctx context.Context,
	token string,
) (domain.Session, domain.User, error) {
	hash := cryptox.FingerprintToken(token)

	session, err := s.Store.Sessions().GetSessionByTokenHash(ctx, hash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, domain.User{}, ErrSessionInvalid
		}
		return domain.Session{}, domain.User{}, err
	}

	now := time.Now().UTC()
	if session.Expired(now) {
		_ = s.Store.Sessions().DeleteSessionByTokenHash(ctx, hash)
		return domain.Session{}, domain.User{}, ErrSessionInvalid
	}

	user, err := s.Store.Users().GetUserByID(ctx, session.UserID)
	if err != nil {
		return domain.Session{}, domain.User{}, err
	}
	if user.IsBanned(now) {
		return domain.Session{}, domain.User{}, ErrUserBanned
	}

	return session, user, nil
}

// SignOut revokes a single session by its token. Unknown tokens are not an
// error; sign-out is idempotent.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	return s.Store.Sessions().DeleteSessionByTokenHash(ctx, cryptox.FingerprintToken(token))
}

// RevokeUserSessions removes every session of a user.
func (s *AuthService) RevokeUserSessions(ctx context.Context, userID string) error {
	return s.Store.Sessions().DeleteUserSessions(ctx, userID)
}

// ChangePassword verifies the current password and replaces the credential
// hash with one for the new password.
func (s *AuthService) ChangePassword(
	ctx context.Context,
	userID, currentPassword, newPassword string,
) error {
	if len(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	account, err := s.Store.Accounts().GetCredentialAccount(ctx, userID)
	if err != nil {
		return err
	}

	if err := cryptox.VerifyPassword(currentPassword, account.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return ErrInvalidCredentials
		}
		return err
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.Store.Accounts().UpdatePasswordHash(ctx, account.ID, hash)
}

// VerifyEmail consumes a verification token minted at sign-up and flags the
// user's email as verified.
func (s *AuthService) VerifyEmail(ctx context.Context, identifier, token string) error {
	identifier = strings.ToLower(strings.TrimSpace(identifier))
	value := cryptox.FingerprintToken(token)

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		verification, err := tx.Verifications().GetVerification(ctx, identifier, value)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrVerificationInvalid
			}
			return err
		}
		if verification.Expired(time.Now().UTC()) {
			return ErrVerificationInvalid
		}

		user, err := tx.Users().GetUserByEmail(ctx, identifier)
		if err != nil {
			return err
		}
		if err := tx.Users().SetEmailVerified(ctx, user.ID); err != nil {
			return err
		}
		return tx.Verifications().DeleteVerification(ctx, verification.ID)
	})
}
