package rdmclient

import (
	"context"
	"net/http"
)

// Typed wrappers for the RPC surface. All procedures are POST and require
// the session's bearer token except healthCheck (see Client.HealthCheck).

// PrivateData calls the session-gated example procedure.
func (s *Session) PrivateData(ctx context.Context) (*PrivateDataResponse, error) {
	var resp PrivateDataResponse
	if err := s.rpc(ctx, "privateData", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AdminOnlyData calls the admin-gated example procedure.
func (s *Session) AdminOnlyData(ctx context.Context) (*AdminOnlyDataResponse, error) {
	var resp AdminOnlyDataResponse
	if err := s.rpc(ctx, "adminOnlyData", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UserRoleData calls the role-set-gated example procedure.
func (s *Session) UserRoleData(ctx context.Context) (*UserRoleDataResponse, error) {
	var resp UserRoleDataResponse
	if err := s.rpc(ctx, "userRoleData", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RecordActivity marks the user active today and returns the streak.
func (s *Session) RecordActivity(ctx context.Context) (*RecordActivityResponse, error) {
	var resp RecordActivityResponse
	if err := s.rpc(ctx, "recordActivity", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// WalletBalance fetches the purse balances.
func (s *Session) WalletBalance(ctx context.Context) (*Wallet, error) {
	var resp Wallet
	if err := s.rpc(ctx, "walletBalance", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// WalletTransfer moves an amount between two of the caller's purses.
func (s *Session) WalletTransfer(ctx context.Context, from, to string, amount int64) (*Wallet, error) {
	var resp Wallet
	err := s.rpc(ctx, "walletTransfer", WalletTransferRequest{
		From:   from,
		To:     to,
		Amount: amount,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// WalletDonate donates an amount from the charity purse.
func (s *Session) WalletDonate(ctx context.Context, amount int64) (*Wallet, error) {
	var resp Wallet
	if err := s.rpc(ctx, "walletDonate", WalletDonateRequest{Amount: amount}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetWalletDisplayMode switches balance rendering between RDM and USDT.
func (s *Session) SetWalletDisplayMode(ctx context.Context, mode string) (*Wallet, error) {
	var resp Wallet
	if err := s.rpc(ctx, "setWalletDisplayMode", SetWalletDisplayModeRequest{Mode: mode}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AdminListUsers lists all users. Requires the admin role.
func (s *Session) AdminListUsers(ctx context.Context) (*ListUsersResponse, error) {
	var resp ListUsersResponse
	if err := s.rpc(ctx, "admin.listUsers", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AdminBanUser bans a user, optionally until expiresAt. Requires admin.
func (s *Session) AdminBanUser(ctx context.Context, req BanUserRequest) error {
	return s.rpc(ctx, "admin.banUser", req, nil)
}

// AdminUnbanUser lifts a user's ban. Requires admin.
func (s *Session) AdminUnbanUser(ctx context.Context, userID string) error {
	return s.rpc(ctx, "admin.unbanUser", UnbanUserRequest{UserID: userID}, nil)
}

// AdminSetRole replaces a user's role set. Requires admin.
func (s *Session) AdminSetRole(ctx context.Context, userID string, roles []string) (*SetRoleResponse, error) {
	var resp SetRoleResponse
	err := s.rpc(ctx, "admin.setRole", SetRoleRequest{UserID: userID, Roles: roles}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *Session) rpc(ctx context.Context, procedure string, in, out any) error {
	return s.client.doJSON(ctx, http.MethodPost, "/rpc/"+procedure, s.token, in, out)
}
