package store

import (
	"context"
	"errors"
	"time"

	"github.com/rdmapp/rdm-server/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and a transaction helper for multi-step mutations that must be
// atomic (wallet transfers, streak updates, sign-up).
type Store interface {
	Users() Users
	Sessions() Sessions
	Accounts() Accounts
	Verifications() Verifications

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to guard per-user read-modify-write sequences.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during sign-in.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateRole replaces the persisted comma-separated role string.
	UpdateRole(ctx context.Context, userID, role string) error

	// SetBan updates the ban state. Clearing a ban resets reason and expiry.
	SetBan(ctx context.Context, userID string, banned bool, reason string, expires *time.Time) error

	// UpdateWallet writes all purse balances, the contribution counter and
	// the legacy tokens counter in one statement. Call inside a Tx.
	UpdateWallet(ctx context.Context, userID string, w domain.Wallet, tokens int64) error

	// UpdateStreak writes the streak count and last-active date. Call inside a Tx.
	UpdateStreak(ctx context.Context, userID string, streak int64, lastActiveDate string) error

	// SetWalletDisplayMode switches the display-only wallet rendering mode.
	SetWalletDisplayMode(ctx context.Context, userID, mode string) error

	// SetEmailVerified flags the user's email as verified.
	SetEmailVerified(ctx context.Context, userID string) error

	// ListUsers returns all users ordered by creation (newest first).
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CountUsers returns the total number of user records.
	CountUsers(ctx context.Context) (int64, error)
}

type Sessions interface {
	// CreateSession stores a new session record (token already fingerprinted).
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSessionByTokenHash returns the session for a token fingerprint.
	GetSessionByTokenHash(ctx context.Context, hash string) (domain.Session, error)

	// DeleteSessionByTokenHash removes a single session (sign-out).
	DeleteSessionByTokenHash(ctx context.Context, hash string) error

	// DeleteUserSessions removes every session of a user (ban, password reset).
	DeleteUserSessions(ctx context.Context, userID string) error

	// DeleteExpiredSessions is housekeeping.
	DeleteExpiredSessions(ctx context.Context) error
}

type Accounts interface {
	// CreateAccount inserts a provider account row.
	CreateAccount(ctx context.Context, a domain.Account) error

	// GetCredentialAccount returns the email/password account for a user.
	GetCredentialAccount(ctx context.Context, userID string) (domain.Account, error)

	// UpdatePasswordHash sets a new argon2 hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, accountID, newHash string) error
}

type Verifications interface {
	// CreateVerification stores a new verification challenge.
	CreateVerification(ctx context.Context, v domain.Verification) error

	// GetVerification returns the challenge for an identifier/value pair.
	GetVerification(ctx context.Context, identifier, value string) (domain.Verification, error)

	// DeleteVerification consumes a challenge.
	DeleteVerification(ctx context.Context, id string) error

	// DeleteExpiredVerifications is housekeeping.
	DeleteExpiredVerifications(ctx context.Context) error
}
