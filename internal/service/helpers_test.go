package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rdmapp/rdm-server/internal/store"
	"github.com/rdmapp/rdm-server/internal/store/drivers/sqlite"
	"github.com/rdmapp/rdm-server/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "service-test-*")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

// signUp registers a user through the real auth flow and returns the result.
func signUp(t *testing.T, auth *AuthService, name, email, password string) AuthResult {
	t.Helper()

	result, err := auth.SignUpEmail(context.Background(), SignUpParams{
		Name:     name,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return result
}
