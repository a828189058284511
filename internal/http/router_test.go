package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rdmapp/rdm-server/internal/domain"
	"github.com/rdmapp/rdm-server/internal/service"
	"github.com/rdmapp/rdm-server/internal/store"
	"github.com/rdmapp/rdm-server/internal/store/drivers/sqlite"
	"github.com/rdmapp/rdm-server/pkg/cryptox"
	"github.com/rdmapp/rdm-server/pkg/rdmclient"
	"github.com/rdmapp/rdm-server/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "http-test-*")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// newTestServer wires a full router over an in-memory store and returns an
// SDK client pointed at it.
func newTestServer(t *testing.T) (*rdmclient.Client, store.Store) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slogx.New(slogx.Config{
		Service: "rdm-server",
		Env:     "test",
		Level:   "error",
		Format:  "text",
	})

	router := NewRouter("test", st, logger)
	router.AuthService = &service.AuthService{Store: st}
	router.UserService = &service.UserService{Store: st}
	router.WalletService = &service.WalletService{Store: st}
	router.StreakService = &service.StreakService{Store: st}
	router.AdminService = &service.AdminService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return rdmclient.NewClient(srv.URL), st
}

func signUpUser(t *testing.T, client *rdmclient.Client, name, email string) *rdmclient.Session {
	t.Helper()

	session, err := client.SignUp(context.Background(), rdmclient.SignUpForm{
		Name:            name,
		Email:           email,
		Password:        "password123",
		ConfirmPassword: "password123",
	})
	require.NoError(t, err)
	return session
}

// promoteToAdmin flips a user's role set directly in the store; the next
// request re-resolves roles from the record.
func promoteToAdmin(t *testing.T, st store.Store, userID string) {
	t.Helper()
	require.NoError(t, st.Users().UpdateRole(context.Background(), userID, "user,admin"))
}

func TestHealthCheckIsPublic(t *testing.T) {
	client, _ := newTestServer(t)

	result, err := client.HealthCheck(context.Background())
	require.NoError(t, err)
	require.Equal(t, "OK", result)
}

func TestGatesWithoutSession(t *testing.T) {
	client, _ := newTestServer(t)
	ctx := context.Background()

	anon := client.NewSessionFromToken("")

	// Every gated procedure rejects with UNAUTHORIZED, never FORBIDDEN.
	_, err := anon.PrivateData(ctx)
	require.True(t, rdmclient.IsUnauthorized(err))

	_, err = anon.AdminOnlyData(ctx)
	require.True(t, rdmclient.IsUnauthorized(err))

	_, err = anon.UserRoleData(ctx)
	require.True(t, rdmclient.IsUnauthorized(err))

	_, err = anon.WalletBalance(ctx)
	require.True(t, rdmclient.IsUnauthorized(err))

	// A garbage token behaves exactly like no token.
	garbage := client.NewSessionFromToken("not-a-real-token")
	_, err = garbage.PrivateData(ctx)
	require.True(t, rdmclient.IsUnauthorized(err))
}

func TestGatesWithUserRole(t *testing.T) {
	client, _ := newTestServer(t)
	ctx := context.Background()

	session := signUpUser(t, client, "Alice", "alice@example.com")

	private, err := session.PrivateData(ctx)
	require.NoError(t, err)
	require.Equal(t, "This is private", private.Message)
	require.Equal(t, "alice@example.com", private.User.Email)

	roleData, err := session.UserRoleData(ctx)
	require.NoError(t, err)
	require.Equal(t, "This is accessible to users and admins", roleData.Message)

	_, err = session.AdminOnlyData(ctx)
	require.True(t, rdmclient.IsForbidden(err))
	require.EqualError(t, err, "Admin access required")
}

func TestGatesWithAdminRole(t *testing.T) {
	client, st := newTestServer(t)
	ctx := context.Background()

	session := signUpUser(t, client, "Alice", "alice@example.com")
	promoteToAdmin(t, st, session.User.ID)

	adminData, err := session.AdminOnlyData(ctx)
	require.NoError(t, err)
	require.Equal(t, "This is admin only data", adminData.Message)
	require.Equal(t, "Only admins can see this", adminData.AdminInfo)

	// The multi-role user still passes the user-or-admin gate.
	_, err = session.UserRoleData(ctx)
	require.NoError(t, err)
}

func TestSignUpFlow(t *testing.T) {
	client, _ := newTestServer(t)
	ctx := context.Background()

	session := signUpUser(t, client, "Alice", "alice@example.com")
	require.Equal(t, "user", session.User.Role)
	require.Equal(t, int64(100), session.User.BasePurse)
	require.Equal(t, "RDM", session.User.WalletDisplayMode)
	require.NotEmpty(t, session.Token())

	// Duplicate email surfaces the server's conflict message verbatim.
	_, err := client.SignUp(ctx, rdmclient.SignUpForm{
		Name:            "Alice Again",
		Email:           "alice@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	})
	require.EqualError(t, err, "Email already registered")

	var apiErr *rdmclient.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.StatusCode)
	require.Equal(t, "CONFLICT", apiErr.Code)
}

func TestSignInAndSessionLifecycle(t *testing.T) {
	client, _ := newTestServer(t)
	ctx := context.Background()

	signUpUser(t, client, "Alice", "alice@example.com")

	session, err := client.SignIn(ctx, "alice@example.com", "password123")
	require.NoError(t, err)

	resp, err := session.Refresh(ctx)
	require.NoError(t, err)
	require.Equal(t, session.User.ID, resp.Session.UserID)

	require.NoError(t, session.SignOut(ctx))

	// get-session resolves to null after sign-out.
	resp, err = session.Refresh(ctx)
	require.NoError(t, err)
	require.Empty(t, resp.Session.ID)

	_, err = client.SignIn(ctx, "alice@example.com", "wrong-password")
	require.EqualError(t, err, "Invalid email or password")
	require.True(t, rdmclient.IsUnauthorized(err))
}

func TestChangePasswordEndpoint(t *testing.T) {
	client, _ := newTestServer(t)
	ctx := context.Background()

	session := signUpUser(t, client, "Alice", "alice@example.com")

	// Local validation short-circuits before the server sees anything.
	err := session.ChangePassword(ctx, "password123", "short")
	require.ErrorIs(t, err, rdmclient.ErrPasswordTooShort)

	err = session.ChangePassword(ctx, "wrong-password", "newpassword456")
	require.EqualError(t, err, "Invalid email or password")

	require.NoError(t, session.ChangePassword(ctx, "password123", "newpassword456"))

	_, err = client.SignIn(ctx, "alice@example.com", "newpassword456")
	require.NoError(t, err)
}

func TestWalletProcedures(t *testing.T) {
	client, _ := newTestServer(t)
	ctx := context.Background()

	session := signUpUser(t, client, "Alice", "alice@example.com")

	wallet, err := session.WalletBalance(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(100), wallet.Base)
	require.Equal(t, int64(100), wallet.Total)
	require.Equal(t, float64(100), wallet.DisplayTotal)

	wallet, err = session.WalletTransfer(ctx, "base", "charity", 40)
	require.NoError(t, err)
	require.Equal(t, int64(60), wallet.Base)
	require.Equal(t, int64(40), wallet.Charity)
	require.Equal(t, int64(100), wallet.Total)

	wallet, err = session.WalletDonate(ctx, 15)
	require.NoError(t, err)
	require.Equal(t, int64(25), wallet.Charity)
	require.Equal(t, int64(15), wallet.CharityContribution)

	// Overdraft maps to the dedicated error code.
	_, err = session.WalletTransfer(ctx, "reward", "base", 1)
	var apiErr *rdmclient.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "INSUFFICIENT_FUNDS", apiErr.Code)
	require.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	require.EqualError(t, err, "Insufficient funds")

	// Unknown purse is a plain bad request.
	_, err = session.WalletTransfer(ctx, "base", "offshore", 1)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "BAD_REQUEST", apiErr.Code)

	// Display mode switch converts the rendered total, 100 RDM = 1 USDT.
	wallet, err = session.SetWalletDisplayMode(ctx, "USDT")
	require.NoError(t, err)
	require.Equal(t, "USDT", wallet.DisplayMode)
	require.Equal(t, int64(85), wallet.Total)
	require.InEpsilon(t, 0.85, wallet.DisplayTotal, 1e-9)

	_, err = session.SetWalletDisplayMode(ctx, "EUR")
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "BAD_REQUEST", apiErr.Code)
}

func TestRecordActivityProcedure(t *testing.T) {
	client, _ := newTestServer(t)
	ctx := context.Background()

	session := signUpUser(t, client, "Alice", "alice@example.com")

	first, err := session.RecordActivity(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), first.Streak)
	require.NotEmpty(t, first.LastActiveDate)

	// Same-day repeat stays at 1.
	again, err := session.RecordActivity(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), again.Streak)
	require.Equal(t, first.LastActiveDate, again.LastActiveDate)
}

func TestAdminProcedures(t *testing.T) {
	client, st := newTestServer(t)
	ctx := context.Background()

	admin := signUpUser(t, client, "Root", "root@example.com")
	promoteToAdmin(t, st, admin.User.ID)
	target := signUpUser(t, client, "Bob", "bob@example.com")

	// Non-admins are rejected with the role message.
	_, err := target.AdminListUsers(ctx)
	require.True(t, rdmclient.IsForbidden(err))
	require.EqualError(t, err, "Admin access required")

	users, err := admin.AdminListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users.Users, 2)
	require.Equal(t, int64(2), users.Total)

	// Banning revokes the target's session immediately.
	require.NoError(t, admin.AdminBanUser(ctx, rdmclient.BanUserRequest{
		UserID: target.User.ID,
		Reason: "spam",
	}))
	_, err = target.PrivateData(ctx)
	require.True(t, rdmclient.IsUnauthorized(err))

	_, err = client.SignIn(ctx, "bob@example.com", "password123")
	require.EqualError(t, err, "Account is banned")
	require.True(t, rdmclient.IsForbidden(err))

	require.NoError(t, admin.AdminUnbanUser(ctx, target.User.ID))
	_, err = client.SignIn(ctx, "bob@example.com", "password123")
	require.NoError(t, err)

	roles, err := admin.AdminSetRole(ctx, target.User.ID, []string{"admin", "user"})
	require.NoError(t, err)
	require.Equal(t, []string{"admin", "user"}, roles.Roles)

	stored, err := st.Users().GetUserByID(ctx, target.User.ID)
	require.NoError(t, err)
	require.True(t, stored.Roles().Has(domain.RoleAdmin))

	_, err = admin.AdminSetRole(ctx, target.User.ID, nil)
	require.ErrorContains(t, err, "at least one role")

	var apiErr *rdmclient.APIError
	err = admin.AdminBanUser(ctx, rdmclient.BanUserRequest{UserID: "missing"})
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "NOT_FOUND", apiErr.Code)
}

func TestVerifyEmailRejectsBadToken(t *testing.T) {
	client, _ := newTestServer(t)
	ctx := context.Background()

	signUpUser(t, client, "Alice", "alice@example.com")

	err := client.VerifyEmail(ctx, "alice@example.com", "bogus")
	require.EqualError(t, err, "Verification token is invalid or expired")
}

func TestHealthProbes(t *testing.T) {
	client, _ := newTestServer(t)
	ctx := context.Background()

	live, err := client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks.Database)
}
