package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWalletTransfer(t *testing.T) {
	t.Parallel()

	t.Run("moves value and conserves the total", func(t *testing.T) {
		w := Wallet{Base: 100}

		require.NoError(t, w.Transfer(PurseBase, PurseCharity, 30))
		require.Equal(t, int64(70), w.Base)
		require.Equal(t, int64(30), w.Charity)
		require.Equal(t, int64(100), w.Total())
	})

	t.Run("overdraft fails and leaves the wallet untouched", func(t *testing.T) {
		w := Wallet{Base: 10, Reward: 5}
		before := w

		require.ErrorIs(t, w.Transfer(PurseBase, PurseReward, 11), ErrInsufficientFunds)
		require.Equal(t, before, w)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		w := Wallet{Base: 100}
		require.ErrorIs(t, w.Transfer(PurseBase, PurseReward, 0), ErrInvalidAmount)
		require.ErrorIs(t, w.Transfer(PurseBase, PurseReward, -5), ErrInvalidAmount)
	})

	t.Run("rejects self-transfer", func(t *testing.T) {
		w := Wallet{Base: 100}
		require.ErrorIs(t, w.Transfer(PurseBase, PurseBase, 10), ErrInvalidAmount)
	})
}

func TestWalletDonate(t *testing.T) {
	t.Parallel()

	w := Wallet{Charity: 40, CharityContribution: 10}

	require.NoError(t, w.Donate(25))
	require.Equal(t, int64(15), w.Charity)
	require.Equal(t, int64(35), w.CharityContribution)

	require.ErrorIs(t, w.Donate(16), ErrInsufficientFunds)
}

func TestWalletCreditDebit(t *testing.T) {
	t.Parallel()

	var w Wallet

	require.NoError(t, w.Credit(PurseReward, 50))
	require.Equal(t, int64(50), w.Balance(PurseReward))

	require.NoError(t, w.Debit(PurseReward, 50))
	require.ErrorIs(t, w.Debit(PurseReward, 1), ErrInsufficientFunds)
}

func TestParsePurse(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"base", "reward", "charity", "remorse"} {
		p, err := ParsePurse(name)
		require.NoError(t, err)
		require.Equal(t, Purse(name), p)
	}

	_, err := ParsePurse("savings")
	require.ErrorIs(t, err, ErrUnknownPurse)
}

func TestDisplayAmount(t *testing.T) {
	t.Parallel()

	require.Equal(t, float64(250), DisplayAmount(250, DisplayModeRDM))
	require.Equal(t, 2.5, DisplayAmount(250, DisplayModeUSDT))

	// Unknown modes fall back to raw RDM units.
	require.Equal(t, float64(250), DisplayAmount(250, "AUD"))
}
