package rdmclient

import "time"

// User is the wire shape of a user record. Role keeps the flat
// comma-separated form the server persists ("user" or "user,admin").
type User struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"emailVerified"`
	Image         string `json:"image,omitempty"`
	Role          string `json:"role"`

	Banned     bool       `json:"banned,omitempty"`
	BanReason  string     `json:"banReason,omitempty"`
	BanExpires *time.Time `json:"banExpires,omitempty"`

	Tokens         int64  `json:"tokens"`
	Streak         int64  `json:"streak"`
	LastActiveDate string `json:"lastActiveDate,omitempty"`

	CharityContribution int64  `json:"charityContribution"`
	BasePurse           int64  `json:"basePurse"`
	RewardPurse         int64  `json:"rewardPurse"`
	CharityPurse        int64  `json:"charityPurse"`
	RemorsePurse        int64  `json:"remorsePurse"`
	WalletDisplayMode   string `json:"walletDisplayMode"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SessionInfo describes an active session. The bearer token itself is only
// returned at sign-up/sign-in time.
type SessionInfo struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
	IPAddress string    `json:"ipAddress,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
}

// Wallet is the wire shape of a user's purse balances. Amounts are stored
// RDM units; DisplayTotal renders Total per the user's display mode
// (100 RDM = 1 USDT).
type Wallet struct {
	Base                int64 `json:"base"`
	Reward              int64 `json:"reward"`
	Charity             int64 `json:"charity"`
	Remorse             int64 `json:"remorse"`
	CharityContribution int64 `json:"charityContribution"`
	Total               int64 `json:"total"`

	DisplayMode  string  `json:"displayMode"`
	DisplayTotal float64 `json:"displayTotal"`
}

// Auth boundary payloads.

type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VerifyEmailRequest struct {
	Identifier string `json:"identifier"`
	Token      string `json:"token"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// AuthResponse is returned by sign-up and sign-in.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}

// SessionResponse is returned by get-session.
type SessionResponse struct {
	Session SessionInfo `json:"session"`
	User    User        `json:"user"`
}

// RPC payloads.

type PrivateDataResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

type AdminOnlyDataResponse struct {
	Message   string `json:"message"`
	User      User   `json:"user"`
	AdminInfo string `json:"adminInfo"`
}

type UserRoleDataResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

type RecordActivityResponse struct {
	Streak         int64  `json:"streak"`
	LastActiveDate string `json:"lastActiveDate"`
}

type WalletTransferRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

type WalletDonateRequest struct {
	Amount int64 `json:"amount"`
}

type SetWalletDisplayModeRequest struct {
	Mode string `json:"mode"`
}

type ListUsersResponse struct {
	Users []User `json:"users"`
	Total int64  `json:"total"`
}

type BanUserRequest struct {
	UserID    string     `json:"userId"`
	Reason    string     `json:"reason,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

type UnbanUserRequest struct {
	UserID string `json:"userId"`
}

type SetRoleRequest struct {
	UserID string   `json:"userId"`
	Roles  []string `json:"roles"`
}

type SetRoleResponse struct {
	UserID string   `json:"userId"`
	Roles  []string `json:"roles"`
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
