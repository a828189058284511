package domain

import (
	"errors"
	"fmt"
)

// RDMPerUSDT is the fixed peg between the internal unit and the external
// stablecoin: 100 RDM = 1 USDT.
const RDMPerUSDT = 100

var (
	// ErrInsufficientFunds is returned when a debit would overdraw a purse.
	ErrInsufficientFunds = errors.New("wallet: insufficient funds")

	// ErrInvalidAmount is returned for zero or negative amounts.
	ErrInvalidAmount = errors.New("wallet: amount must be a positive integer")

	// ErrUnknownPurse is returned for purse names outside the four known purses.
	ErrUnknownPurse = errors.New("wallet: unknown purse")
)

// Purse names one of the four balances belonging to a user.
type Purse string

const (
	PurseBase    Purse = "base"
	PurseReward  Purse = "reward"
	PurseCharity Purse = "charity"
	PurseRemorse Purse = "remorse"
)

// ParsePurse validates a purse name from the wire.
func ParsePurse(s string) (Purse, error) {
	switch Purse(s) {
	case PurseBase, PurseReward, PurseCharity, PurseRemorse:
		return Purse(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPurse, s)
}

// Wallet is the multi-purse balance state of a single user, all amounts in
// whole RDM units. Mutations reject overdrafts so balances stay non-negative.
type Wallet struct {
	Base    int64
	Reward  int64
	Charity int64
	Remorse int64

	// CharityContribution is the cumulative amount donated; it only grows.
	CharityContribution int64
}

func (w *Wallet) balance(p Purse) *int64 {
	switch p {
	case PurseBase:
		return &w.Base
	case PurseReward:
		return &w.Reward
	case PurseCharity:
		return &w.Charity
	case PurseRemorse:
		return &w.Remorse
	}
	return nil
}

// Balance returns the current balance of the given purse.
func (w Wallet) Balance(p Purse) int64 {
	if b := w.balance(p); b != nil {
		return *b
	}
	return 0
}

// Total is the sum across all four purses. Transfers conserve it.
func (w Wallet) Total() int64 {
	return w.Base + w.Reward + w.Charity + w.Remorse
}

// Credit mints amount into the given purse.
func (w *Wallet) Credit(p Purse, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	b := w.balance(p)
	if b == nil {
		return fmt.Errorf("%w: %q", ErrUnknownPurse, p)
	}
	*b += amount
	return nil
}

// Debit burns amount from the given purse, failing on overdraft.
func (w *Wallet) Debit(p Purse, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	b := w.balance(p)
	if b == nil {
		return fmt.Errorf("%w: %q", ErrUnknownPurse, p)
	}
	if *b < amount {
		return ErrInsufficientFunds
	}
	*b -= amount
	return nil
}

// Transfer moves amount between purses as an atomic debit-credit pair.
// On any error the wallet is left unmodified.
func (w *Wallet) Transfer(from, to Purse, amount int64) error {
	if from == to {
		return fmt.Errorf("%w: transfer between identical purses", ErrInvalidAmount)
	}
	if err := w.Debit(from, amount); err != nil {
		return err
	}
	if err := w.Credit(to, amount); err != nil {
		// Credit only fails on bad input; restore the debit.
		*w.balance(from) += amount
		return err
	}
	return nil
}

// Donate moves amount out of the charity purse into the cumulative
// contribution counter. This is the one sanctioned burn path.
func (w *Wallet) Donate(amount int64) error {
	if err := w.Debit(PurseCharity, amount); err != nil {
		return err
	}
	w.CharityContribution += amount
	return nil
}

// DisplayAmount converts a stored RDM amount for the given display mode.
// Stored units are unaffected; USDT is a rendering of the same balance.
func DisplayAmount(rdm int64, mode string) float64 {
	if mode == DisplayModeUSDT {
		return float64(rdm) / RDMPerUSDT
	}
	return float64(rdm)
}
