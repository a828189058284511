package service

import (
	"context"
	"fmt"

	"github.com/rdmapp/rdm-server/internal/domain"
	"github.com/rdmapp/rdm-server/internal/store"
)

type UserService struct {
	Store store.Store
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// SetWalletDisplayMode switches how balances are rendered for the user.
// Stored amounts are untouched; RDM and USDT are views of the same units.
func (s *UserService) SetWalletDisplayMode(ctx context.Context, userID, mode string) error {
	if mode != domain.DisplayModeRDM && mode != domain.DisplayModeUSDT {
		return fmt.Errorf("%w: unknown display mode %q", ErrInvalidInput, mode)
	}
	return s.Store.Users().SetWalletDisplayMode(ctx, userID, mode)
}
