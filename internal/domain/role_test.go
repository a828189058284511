package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRoles(t *testing.T) {
	t.Parallel()

	t.Run("splits on commas and deduplicates", func(t *testing.T) {
		set := ParseRoles("user,admin,user")
		require.Len(t, set, 2)
		require.True(t, set.Has("user"))
		require.True(t, set.Has("admin"))
	})

	t.Run("blank input yields the empty set", func(t *testing.T) {
		require.Empty(t, ParseRoles(""))
		require.Empty(t, ParseRoles(" , ,"))
	})

	t.Run("casing is preserved, not normalized", func(t *testing.T) {
		set := ParseRoles("Admin")
		require.False(t, set.Has("admin"))
		require.True(t, set.Has("Admin"))
	})

	t.Run("whitespace around tokens is trimmed", func(t *testing.T) {
		set := ParseRoles(" user , admin ")
		require.True(t, set.Has("user"))
		require.True(t, set.Has("admin"))
	})
}

func TestParseRolesIdempotent(t *testing.T) {
	t.Parallel()

	// resolve(join(resolve(r))) == resolve(r) as sets.
	for _, raw := range []string{"user", "user,admin", "admin,user,admin", "", "a,,b"} {
		set := ParseRoles(raw)
		require.Equal(t, set, ParseRoles(set.String()), "input %q", raw)
	}
}

func TestParseRoleList(t *testing.T) {
	t.Parallel()

	set := ParseRoleList([]string{"user", "", "admin", "user"})
	require.Len(t, set, 2)
	require.Equal(t, "admin,user", set.String())
}

func TestRoleSetChecks(t *testing.T) {
	t.Parallel()

	t.Run("admin membership implies elevated access", func(t *testing.T) {
		require.True(t, ParseRoles("user,admin").ContainsAdmin())
		require.False(t, ParseRoles("user").ContainsAdmin())
	})

	t.Run("intersects allowed list", func(t *testing.T) {
		set := ParseRoles("user")
		require.True(t, set.Intersects([]string{"user", "admin"}))
		require.False(t, set.Intersects([]string{"admin"}))
	})

	t.Run("empty set fails every check", func(t *testing.T) {
		empty := ParseRoles("")
		require.False(t, empty.ContainsAdmin())
		require.False(t, empty.Intersects([]string{"user", "admin"}))
		require.False(t, empty.Intersects(nil))
	})
}

func TestRoleSetStringIsDeterministic(t *testing.T) {
	t.Parallel()

	require.Equal(t, "admin,user", ParseRoles("user,admin").String())
	require.Equal(t, "admin,user", ParseRoles("admin,user").String())
}
