package service

import (
	"context"

	"github.com/rdmapp/rdm-server/internal/domain"
	"github.com/rdmapp/rdm-server/internal/store"
)

// WalletService applies purse mutations. Every operation is a read-modify-
// write on a single user row guarded by a store transaction, so concurrent
// requests from the same user cannot lose updates.
type WalletService struct {
	Store store.Store
}

// Transfer moves amount between two purses of the same user.
func (s *WalletService) Transfer(
	ctx context.Context,
	userID string,
	from, to domain.Purse,
	amount int64,
) (domain.Wallet, error) {
	var wallet domain.Wallet
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByID(ctx, userID)
		if err != nil {
			return err
		}

		wallet = user.Wallet()
		if err := wallet.Transfer(from, to, amount); err != nil {
			return err
		}
		return tx.Users().UpdateWallet(ctx, userID, wallet, user.Tokens)
	})
	return wallet, err
}

// Donate moves amount from the charity purse into the cumulative
// contribution counter.
func (s *WalletService) Donate(
	ctx context.Context,
	userID string,
	amount int64,
) (domain.Wallet, error) {
	var wallet domain.Wallet
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByID(ctx, userID)
		if err != nil {
			return err
		}

		wallet = user.Wallet()
		if err := wallet.Donate(amount); err != nil {
			return err
		}
		return tx.Users().UpdateWallet(ctx, userID, wallet, user.Tokens)
	})
	return wallet, err
}

// EarnReward mints amount into the reward purse and bumps the legacy
// tokens counter by the same amount.
func (s *WalletService) EarnReward(
	ctx context.Context,
	userID string,
	amount int64,
) (domain.Wallet, error) {
	var wallet domain.Wallet
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByID(ctx, userID)
		if err != nil {
			return err
		}

		wallet = user.Wallet()
		if err := wallet.Credit(domain.PurseReward, amount); err != nil {
			return err
		}
		return tx.Users().UpdateWallet(ctx, userID, wallet, user.Tokens+amount)
	})
	return wallet, err
}
