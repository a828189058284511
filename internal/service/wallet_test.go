package service

import (
	"context"
	"testing"

	"github.com/rdmapp/rdm-server/internal/domain"
	"github.com/rdmapp/rdm-server/internal/store"
	"github.com/stretchr/testify/require"
)

func TestWalletTransferPersists(t *testing.T) {
	st := newTestStore(t)
	auth := &AuthService{Store: st}
	wallets := &WalletService{Store: st}
	ctx := context.Background()

	user := signUp(t, auth, "Alice", "alice@example.com", "password123").User

	wallet, err := wallets.Transfer(ctx, user.ID, domain.PurseBase, domain.PurseCharity, 40)
	require.NoError(t, err)
	require.Equal(t, int64(60), wallet.Base)
	require.Equal(t, int64(40), wallet.Charity)

	stored, err := st.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, wallet, stored.Wallet())
	require.Equal(t, int64(domain.SignUpBaseGrant), stored.Wallet().Total())
}

func TestWalletTransferOverdraft(t *testing.T) {
	st := newTestStore(t)
	auth := &AuthService{Store: st}
	wallets := &WalletService{Store: st}
	ctx := context.Background()

	user := signUp(t, auth, "Alice", "alice@example.com", "password123").User

	_, err := wallets.Transfer(ctx, user.ID, domain.PurseReward, domain.PurseBase, 1)
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	// Nothing persisted.
	stored, err := st.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, int64(domain.SignUpBaseGrant), stored.BasePurse)
	require.Zero(t, stored.RewardPurse)
}

func TestWalletDonate(t *testing.T) {
	st := newTestStore(t)
	auth := &AuthService{Store: st}
	wallets := &WalletService{Store: st}
	ctx := context.Background()

	user := signUp(t, auth, "Alice", "alice@example.com", "password123").User

	_, err := wallets.Transfer(ctx, user.ID, domain.PurseBase, domain.PurseCharity, 50)
	require.NoError(t, err)

	wallet, err := wallets.Donate(ctx, user.ID, 30)
	require.NoError(t, err)
	require.Equal(t, int64(20), wallet.Charity)
	require.Equal(t, int64(30), wallet.CharityContribution)

	_, err = wallets.Donate(ctx, user.ID, 21)
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestWalletEarnReward(t *testing.T) {
	st := newTestStore(t)
	auth := &AuthService{Store: st}
	wallets := &WalletService{Store: st}
	ctx := context.Background()

	user := signUp(t, auth, "Alice", "alice@example.com", "password123").User

	wallet, err := wallets.EarnReward(ctx, user.ID, 25)
	require.NoError(t, err)
	require.Equal(t, int64(25), wallet.Reward)

	stored, err := st.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, int64(25), stored.Tokens) // legacy counter tracks mints
}

func TestWalletUnknownUser(t *testing.T) {
	st := newTestStore(t)
	wallets := &WalletService{Store: st}

	_, err := wallets.Transfer(context.Background(), "missing", domain.PurseBase, domain.PurseReward, 1)
	require.ErrorIs(t, err, store.ErrNotFound)
}
