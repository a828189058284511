package http

import (
	"github.com/rdmapp/rdm-server/internal/domain"
	"github.com/rdmapp/rdm-server/pkg/rdmclient"
)

// userPayload maps a user record to its wire shape. Role stays in the flat
// comma-separated form clients already understand.
func userPayload(u domain.User) rdmclient.User {
	return rdmclient.User{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
		Image:         u.Image,
		Role:          u.Role,

		Banned:     u.Banned,
		BanReason:  u.BanReason,
		BanExpires: u.BanExpires,

		Tokens:         u.Tokens,
		Streak:         u.Streak,
		LastActiveDate: u.LastActiveDate,

		CharityContribution: u.CharityContribution,
		BasePurse:           u.BasePurse,
		RewardPurse:         u.RewardPurse,
		CharityPurse:        u.CharityPurse,
		RemorsePurse:        u.RemorsePurse,
		WalletDisplayMode:   u.WalletDisplayMode,

		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// walletPayload renders a user's purse balances, applying the display-mode
// conversion to the total.
func walletPayload(u domain.User) rdmclient.Wallet {
	w := u.Wallet()
	return rdmclient.Wallet{
		Base:                w.Base,
		Reward:              w.Reward,
		Charity:             w.Charity,
		Remorse:             w.Remorse,
		CharityContribution: w.CharityContribution,
		Total:               w.Total(),
		DisplayMode:         u.WalletDisplayMode,
		DisplayTotal:        domain.DisplayAmount(w.Total(), u.WalletDisplayMode),
	}
}

func sessionPayload(s domain.Session) rdmclient.SessionInfo {
	return rdmclient.SessionInfo{
		ID:        s.ID,
		UserID:    s.UserID,
		ExpiresAt: s.ExpiresAt,
		IPAddress: s.IPAddress,
		UserAgent: s.UserAgent,
	}
}
