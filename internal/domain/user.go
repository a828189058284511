package domain

import "time"

// Wallet display modes. Display-only: stored balances are always RDM units.
const (
	DisplayModeRDM  = "RDM"
	DisplayModeUSDT = "USDT"
)

// SignUpBaseGrant is the RDM balance minted into the base purse when a user
// record is created (100 RDM = 1 USDT).
const SignUpBaseGrant = 100

type User struct {
	ID            string
	Name          string
	Email         string // unique
	EmailVerified bool
	Image         string

	// Role is the persisted comma-separated role string ("user,admin").
	// Business logic never reads this directly; see RoleSet.
	Role string

	Banned    bool
	BanReason string
	BanExpires *time.Time

	// Legacy flat counter, kept alongside the purse balances.
	Tokens int64

	Streak         int64
	LastActiveDate string // YYYY-MM-DD, local wall-clock; empty until first activity

	CharityContribution int64
	BasePurse           int64
	RewardPurse         int64
	CharityPurse        int64
	RemorsePurse        int64
	WalletDisplayMode   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Roles resolves the persisted role string into a RoleSet.
func (u User) Roles() RoleSet {
	return ParseRoles(u.Role)
}

// IsBanned reports whether the user's ban is active at the given instant.
// A ban with an elapsed expiry no longer applies.
func (u User) IsBanned(now time.Time) bool {
	if !u.Banned {
		return false
	}
	if u.BanExpires != nil && !now.Before(*u.BanExpires) {
		return false
	}
	return true
}

// Wallet returns the user's purse balances as a Wallet value object.
func (u User) Wallet() Wallet {
	return Wallet{
		Base:                u.BasePurse,
		Reward:              u.RewardPurse,
		Charity:             u.CharityPurse,
		Remorse:             u.RemorsePurse,
		CharityContribution: u.CharityContribution,
	}
}

// ApplyWallet writes a Wallet value object back onto the user record.
func (u *User) ApplyWallet(w Wallet) {
	u.BasePurse = w.Base
	u.RewardPurse = w.Reward
	u.CharityPurse = w.Charity
	u.RemorsePurse = w.Remorse
	u.CharityContribution = w.CharityContribution
}
