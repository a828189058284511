package service

import (
	"context"
	"testing"
	"time"

	"github.com/rdmapp/rdm-server/internal/domain"
	"github.com/rdmapp/rdm-server/internal/store"
	"github.com/stretchr/testify/require"
)

func TestAdminSetRole(t *testing.T) {
	st := newTestStore(t)
	auth := &AuthService{Store: st}
	admin := &AdminService{Store: st}
	ctx := context.Background()

	user := signUp(t, auth, "Alice", "alice@example.com", "password123").User

	set, err := admin.SetRole(ctx, user.ID, []string{"user", "admin", "user"})
	require.NoError(t, err)
	require.True(t, set.ContainsAdmin())

	stored, err := st.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, stored.Roles().Has(domain.RoleAdmin))
	require.True(t, stored.Roles().Has(domain.RoleUser))

	// An empty role set is rejected.
	_, err = admin.SetRole(ctx, user.ID, []string{" ", ""})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = admin.SetRole(ctx, "missing", []string{"user"})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestAdminBanUser(t *testing.T) {
	st := newTestStore(t)
	auth := &AuthService{Store: st}
	admin := &AdminService{Store: st}
	ctx := context.Background()

	result := signUp(t, auth, "Alice", "alice@example.com", "password123")

	// The sign-up session works before the ban.
	_, _, err := auth.Session(ctx, result.SessionToken)
	require.NoError(t, err)

	expires := time.Now().Add(24 * time.Hour)
	require.NoError(t, admin.BanUser(ctx, result.User.ID, "spam", &expires))

	// Banning revokes existing sessions in the same transaction.
	_, _, err = auth.Session(ctx, result.SessionToken)
	require.ErrorIs(t, err, ErrSessionInvalid)

	stored, err := st.Users().GetUserByID(ctx, result.User.ID)
	require.NoError(t, err)
	require.True(t, stored.IsBanned(time.Now()))
	require.Equal(t, "spam", stored.BanReason)

	require.NoError(t, admin.UnbanUser(ctx, result.User.ID))

	stored, err = st.Users().GetUserByID(ctx, result.User.ID)
	require.NoError(t, err)
	require.False(t, stored.Banned)
	require.Empty(t, stored.BanReason)
	require.Nil(t, stored.BanExpires)

	_, err = auth.SignInEmail(ctx, SignInParams{
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
}

func TestAdminListUsers(t *testing.T) {
	st := newTestStore(t)
	auth := &AuthService{Store: st}
	admin := &AdminService{Store: st}
	ctx := context.Background()

	signUp(t, auth, "Alice", "alice@example.com", "password123")
	signUp(t, auth, "Bob", "bob@example.com", "password123")

	users, err := admin.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
}
