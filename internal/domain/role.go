package domain

import (
	"sort"
	"strings"
)

// RoleAdmin grants elevated access wherever it appears in a user's role set.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// DefaultRole is assigned at sign-up.
const DefaultRole = RoleUser

// RoleSet is a deduplicated set of role tokens resolved from the persisted
// comma-separated role string. The delimited format never leaves this type:
// parse at the boundary, re-serialize only at the persistence edge.
type RoleSet map[string]struct{}

// ParseRoles splits a raw role string on commas into a RoleSet. Blank and
// duplicate tokens collapse; casing is preserved as stored. An empty or
// absent value yields the empty set, which fails every role check.
func ParseRoles(raw string) RoleSet {
	set := make(RoleSet)
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		set[tok] = struct{}{}
	}
	return set
}

// ParseRoleList builds a RoleSet from an already list-like value.
func ParseRoleList(roles []string) RoleSet {
	set := make(RoleSet)
	for _, tok := range roles {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		set[tok] = struct{}{}
	}
	return set
}

// Has reports whether the set contains the given role token.
func (s RoleSet) Has(role string) bool {
	_, ok := s[role]
	return ok
}

// ContainsAdmin reports whether the set grants elevated access.
func (s RoleSet) ContainsAdmin() bool {
	return s.Has(RoleAdmin)
}

// Intersects reports whether any of the allowed tokens is in the set.
func (s RoleSet) Intersects(allowed []string) bool {
	for _, role := range allowed {
		if s.Has(role) {
			return true
		}
	}
	return false
}

// Tokens returns the role tokens in sorted order.
func (s RoleSet) Tokens() []string {
	out := make([]string, 0, len(s))
	for tok := range s {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

// String re-serializes the set to the on-disk comma-separated form.
func (s RoleSet) String() string {
	return strings.Join(s.Tokens(), ",")
}
