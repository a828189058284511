package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rdmapp/rdm-server/internal/domain"
	"github.com/rdmapp/rdm-server/internal/store"
)

// AdminService implements the admin-gated user management operations.
type AdminService struct {
	Store store.Store
}

// ListUsers returns every user record, newest first.
func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

// CountUsers returns the total number of registered users.
func (s *AdminService) CountUsers(ctx context.Context) (int64, error) {
	return s.Store.Users().CountUsers(ctx)
}

// SetRole replaces a user's role set. The tokens are deduplicated and
// re-serialized to the comma-separated storage form; an empty set is
// rejected since every user must hold at least one role.
func (s *AdminService) SetRole(ctx context.Context, userID string, roles []string) (domain.RoleSet, error) {
	set := domain.ParseRoleList(roles)
	if len(set) == 0 {
		return nil, fmt.Errorf("%w: at least one role is required", ErrInvalidInput)
	}

	if err := s.Store.Users().UpdateRole(ctx, userID, set.String()); err != nil {
		return nil, err
	}
	return set, nil
}

// BanUser bans a user (optionally until expires) and revokes their
// sessions in the same transaction so the ban takes effect immediately.
func (s *AdminService) BanUser(
	ctx context.Context,
	userID, reason string,
	expires *time.Time,
) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().SetBan(ctx, userID, true, reason, expires); err != nil {
			return err
		}
		return tx.Sessions().DeleteUserSessions(ctx, userID)
	})
}

// UnbanUser lifts a ban and clears its metadata.
func (s *AdminService) UnbanUser(ctx context.Context, userID string) error {
	return s.Store.Users().SetBan(ctx, userID, false, "", nil)
}
