package service

import (
	"context"
	"testing"
	"time"

	"github.com/rdmapp/rdm-server/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestSignUpEmail(t *testing.T) {
	st := newTestStore(t)
	auth := &AuthService{Store: st}
	ctx := context.Background()

	t.Run("creates user with default grants and opens a session", func(t *testing.T) {
		result := signUp(t, auth, "Alice", "alice@example.com", "password123")

		require.Equal(t, "alice@example.com", result.User.Email)
		require.Equal(t, domain.DefaultRole, result.User.Role)
		require.Equal(t, int64(domain.SignUpBaseGrant), result.User.BasePurse)
		require.Zero(t, result.User.RewardPurse)
		require.Equal(t, domain.DisplayModeRDM, result.User.WalletDisplayMode)
		require.NotEmpty(t, result.SessionToken)
		require.NotEmpty(t, result.VerificationToken)

		// Session resolves back to the same user.
		_, user, err := auth.Session(ctx, result.SessionToken)
		require.NoError(t, err)
		require.Equal(t, result.User.ID, user.ID)

		// Password lives on the credential account, hashed.
		account, err := st.Accounts().GetCredentialAccount(ctx, result.User.ID)
		require.NoError(t, err)
		require.Contains(t, account.PasswordHash, "$argon2id$")
		require.NotContains(t, account.PasswordHash, "password123")
	})

	t.Run("short password rejected", func(t *testing.T) {
		_, err := auth.SignUpEmail(ctx, SignUpParams{
			Name: "Bob", Email: "bob@example.com", Password: "short",
		})
		require.ErrorIs(t, err, ErrPasswordTooShort)
		require.EqualError(t, err, "Password must be at least 8 characters")
	})

	t.Run("duplicate email rejected without a partial record", func(t *testing.T) {
		_, err := auth.SignUpEmail(ctx, SignUpParams{
			Name: "Other Alice", Email: "Alice@Example.com", Password: "password123",
		})
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("invalid input rejected", func(t *testing.T) {
		_, err := auth.SignUpEmail(ctx, SignUpParams{
			Name: "", Email: "x@example.com", Password: "password123",
		})
		require.ErrorIs(t, err, ErrInvalidInput)

		_, err = auth.SignUpEmail(ctx, SignUpParams{
			Name: "X", Email: "not-an-email", Password: "password123",
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestSignInEmail(t *testing.T) {
	st := newTestStore(t)
	auth := &AuthService{Store: st}
	ctx := context.Background()

	signUp(t, auth, "Alice", "alice@example.com", "password123")

	t.Run("valid credentials open a session", func(t *testing.T) {
		result, err := auth.SignInEmail(ctx, SignInParams{
			Email: "alice@example.com", Password: "password123",
		})
		require.NoError(t, err)
		require.NotEmpty(t, result.SessionToken)
	})

	t.Run("email matching is case-insensitive", func(t *testing.T) {
		_, err := auth.SignInEmail(ctx, SignInParams{
			Email: "ALICE@example.com", Password: "password123",
		})
		require.NoError(t, err)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, err := auth.SignInEmail(ctx, SignInParams{
			Email: "alice@example.com", Password: "wrongpassword",
		})
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = auth.SignInEmail(ctx, SignInParams{
			Email: "nobody@example.com", Password: "password123",
		})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestSignInBannedUser(t *testing.T) {
	st := newTestStore(t)
	auth := &AuthService{Store: st}
	admin := &AdminService{Store: st}
	ctx := context.Background()

	result := signUp(t, auth, "Alice", "alice@example.com", "password123")

	t.Run("active ban rejects sign-in and kills sessions", func(t *testing.T) {
		require.NoError(t, admin.BanUser(ctx, result.User.ID, "abuse", nil))

		_, err := auth.SignInEmail(ctx, SignInParams{
			Email: "alice@example.com", Password: "password123",
		})
		require.ErrorIs(t, err, ErrUserBanned)

		// The pre-ban session was revoked.
		_, _, err = auth.Session(ctx, result.SessionToken)
		require.ErrorIs(t, err, ErrSessionInvalid)
	})

	t.Run("elapsed ban expiry lifts the ban on sign-in", func(t *testing.T) {
		expired := time.Now().UTC().Add(-time.Hour)
		require.NoError(t, st.Users().SetBan(ctx, result.User.ID, true, "cooldown", &expired))

		got, err := auth.SignInEmail(ctx, SignInParams{
			Email: "alice@example.com", Password: "password123",
		})
		require.NoError(t, err)
		require.False(t, got.User.Banned)

		stored, err := st.Users().GetUserByID(ctx, result.User.ID)
		require.NoError(t, err)
		require.False(t, stored.Banned)
		require.Nil(t, stored.BanExpires)
	})
}

func TestSessionLifecycle(t *testing.T) {
	st := newTestStore(t)
	auth := &AuthService{Store: st}
	ctx := context.Background()

	result := signUp(t, auth, "Alice", "alice@example.com", "password123")

	t.Run("unknown token is invalid", func(t *testing.T) {
		_, _, err := auth.Session(ctx, "no-such-token")
		require.ErrorIs(t, err, ErrSessionInvalid)
	})

	t.Run("sign-out revokes the session idempotently", func(t *testing.T) {
		require.NoError(t, auth.SignOut(ctx, result.SessionToken))

		_, _, err := auth.Session(ctx, result.SessionToken)
		require.ErrorIs(t, err, ErrSessionInvalid)

		require.NoError(t, auth.SignOut(ctx, result.SessionToken))
	})

	t.Run("expired session is rejected and removed", func(t *testing.T) {
		short := &AuthService{Store: st, SessionTTL: time.Nanosecond}
		got, err := short.SignInEmail(ctx, SignInParams{
			Email: "alice@example.com", Password: "password123",
		})
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)

		_, _, err = short.Session(ctx, got.SessionToken)
		require.ErrorIs(t, err, ErrSessionInvalid)
	})
}

func TestVerifyEmail(t *testing.T) {
	st := newTestStore(t)
	auth := &AuthService{Store: st}
	ctx := context.Background()

	result := signUp(t, auth, "Alice", "alice@example.com", "password123")
	require.False(t, result.User.EmailVerified)

	t.Run("wrong token rejected", func(t *testing.T) {
		err := auth.VerifyEmail(ctx, "alice@example.com", "bogus")
		require.ErrorIs(t, err, ErrVerificationInvalid)
	})

	t.Run("valid token verifies and is single-use", func(t *testing.T) {
		require.NoError(t, auth.VerifyEmail(ctx, "alice@example.com", result.VerificationToken))

		user, err := st.Users().GetUserByID(ctx, result.User.ID)
		require.NoError(t, err)
		require.True(t, user.EmailVerified)

		err = auth.VerifyEmail(ctx, "alice@example.com", result.VerificationToken)
		require.ErrorIs(t, err, ErrVerificationInvalid)
	})
}

func TestChangePassword(t *testing.T) {
	st := newTestStore(t)
	auth := &AuthService{Store: st}
	ctx := context.Background()

	user := signUp(t, auth, "Alice", "alice@example.com", "password123").User

	t.Run("wrong current password rejected", func(t *testing.T) {
		err := auth.ChangePassword(ctx, user.ID, "wrong-password", "newpassword456")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("short new password rejected", func(t *testing.T) {
		err := auth.ChangePassword(ctx, user.ID, "password123", "short")
		require.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("valid change swaps the credential", func(t *testing.T) {
		require.NoError(t, auth.ChangePassword(ctx, user.ID, "password123", "newpassword456"))

		_, err := auth.SignInEmail(ctx, SignInParams{
			Email:    "alice@example.com",
			Password: "password123",
		})
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = auth.SignInEmail(ctx, SignInParams{
			Email:    "alice@example.com",
			Password: "newpassword456",
		})
		require.NoError(t, err)
	})
}
