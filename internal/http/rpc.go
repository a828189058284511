package http

import (
	"net/http"
	"time"

	"github.com/rdmapp/rdm-server/internal/domain"
	"github.com/rdmapp/rdm-server/internal/service"
	"github.com/rdmapp/rdm-server/pkg/httpx"
	"github.com/rdmapp/rdm-server/pkg/rdmclient"
	"github.com/rdmapp/rdm-server/pkg/slogx"
)

// RPCHandler serves the procedure-style surface the mobile app calls. Each
// procedure is a POST under /rpc/; the gates run as route middleware, so by
// the time a handler body executes the identity requirements already hold.
type RPCHandler struct {
	UserService   *service.UserService
	WalletService *service.WalletService
	StreakService *service.StreakService
}

// user fetches the full record behind the request identity.
func (h *RPCHandler) user(w http.ResponseWriter, r *http.Request) (domain.User, bool) {
	ctx := r.Context()

	identity, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		// Gates guarantee an identity on protected routes.
		httpx.ErrUnauthorized.WriteError(w)
		return domain.User{}, false
	}

	user, err := h.UserService.GetUserByID(ctx, identity.UserID)
	if err != nil {
		slogx.FromContext(ctx).Error("load user failed", "err", err, "user_id", identity.UserID)
		httpx.ErrInternal.WriteError(w)
		return domain.User{}, false
	}
	return user, true
}

// HandleHealthCheck godoc
//
//	@Summary		Health Check Procedure
//	@Description	Public liveness probe for app clients. Always returns "OK".
//	@Tags			RPC
//	@Produce		json
//	@Success		200	{string}	string	"OK"
//	@Router			/rpc/healthCheck [post].
func (h *RPCHandler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, "OK")
}

// HandlePrivateData godoc
//
//	@Summary		Private Data Procedure
//	@Description	Requires a valid session. Returns the caller's user record.
//	@Tags			RPC
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	rdmclient.PrivateDataResponse	"message, user"
//	@Failure		401	{object}	httpx.Error						"no session"
//	@Router			/rpc/privateData [post].
func (h *RPCHandler) HandlePrivateData(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	httpx.WriteJSON(w, http.StatusOK, rdmclient.PrivateDataResponse{
		Message: "This is private",
		User:    userPayload(user),
	})
}

// HandleAdminOnlyData godoc
//
//	@Summary		Admin Only Data Procedure
//	@Description	Requires the admin role.
//	@Tags			RPC
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	rdmclient.AdminOnlyDataResponse	"message, user, adminInfo"
//	@Failure		401	{object}	httpx.Error						"no session"
//	@Failure		403	{object}	httpx.Error						"not an admin"
//	@Router			/rpc/adminOnlyData [post].
func (h *RPCHandler) HandleAdminOnlyData(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	httpx.WriteJSON(w, http.StatusOK, rdmclient.AdminOnlyDataResponse{
		Message:   "This is admin only data",
		User:      userPayload(user),
		AdminInfo: "Only admins can see this",
	})
}

// HandleUserRoleData godoc
//
//	@Summary		User Role Data Procedure
//	@Description	Requires any of the user or admin roles.
//	@Tags			RPC
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	rdmclient.UserRoleDataResponse	"message, user"
//	@Failure		401	{object}	httpx.Error						"no session"
//	@Failure		403	{object}	httpx.Error						"role not allowed"
//	@Router			/rpc/userRoleData [post].
func (h *RPCHandler) HandleUserRoleData(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	httpx.WriteJSON(w, http.StatusOK, rdmclient.UserRoleDataResponse{
		Message: "This is accessible to users and admins",
		User:    userPayload(user),
	})
}

// HandleRecordActivity godoc
//
//	@Summary		Record Activity Procedure
//	@Description	Marks the caller active today (local time) and returns the
//	@Description	resulting streak: unchanged same-day, +1 consecutive, reset
//	@Description	to 1 after a gap.
//	@Tags			RPC
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	rdmclient.RecordActivityResponse	"streak, lastActiveDate"
//	@Failure		401	{object}	httpx.Error							"no session"
//	@Router			/rpc/recordActivity [post].
func (h *RPCHandler) HandleRecordActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.ErrUnauthorized.WriteError(w)
		return
	}

	now := time.Now()
	streak, err := h.StreakService.RecordActivity(ctx, identity.UserID, now)
	if err != nil {
		writeDomainError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, rdmclient.RecordActivityResponse{
		Streak:         streak,
		LastActiveDate: domain.LocalDate(now),
	})
}

// HandleWalletBalance godoc
//
//	@Summary		Wallet Balance Procedure
//	@Description	Returns the caller's purse balances with the display-mode
//	@Description	conversion applied to the total (100 RDM = 1 USDT).
//	@Tags			RPC
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	rdmclient.Wallet	"purse balances"
//	@Failure		401	{object}	httpx.Error			"no session"
//	@Router			/rpc/walletBalance [post].
func (h *RPCHandler) HandleWalletBalance(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}
	httpx.WriteJSON(w, http.StatusOK, walletPayload(user))
}

// HandleWalletTransfer godoc
//
//	@Summary		Wallet Transfer Procedure
//	@Description	Moves an amount between two of the caller's purses. The
//	@Description	transfer is atomic and rejects overdrafts.
//	@Tags			RPC
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		rdmclient.WalletTransferRequest	true	"from, to, amount"
//	@Success		200		{object}	rdmclient.Wallet				"updated balances"
//	@Failure		400		{object}	httpx.Error						"bad purse or amount"
//	@Failure		422		{object}	httpx.Error						"insufficient funds"
//	@Router			/rpc/walletTransfer [post].
func (h *RPCHandler) HandleWalletTransfer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.ErrUnauthorized.WriteError(w)
		return
	}

	var req rdmclient.WalletTransferRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.ErrBadRequest.WithMessage("Invalid JSON body").WriteError(w)
		return
	}

	from, err := domain.ParsePurse(req.From)
	if err != nil {
		writeDomainError(ctx, w, err)
		return
	}
	to, err := domain.ParsePurse(req.To)
	if err != nil {
		writeDomainError(ctx, w, err)
		return
	}

	if _, err := h.WalletService.Transfer(ctx, identity.UserID, from, to, req.Amount); err != nil {
		writeDomainError(ctx, w, err)
		return
	}
	h.writeWallet(w, r, identity.UserID)
}

// HandleWalletDonate godoc
//
//	@Summary		Wallet Donate Procedure
//	@Description	Donates an amount from the charity purse, growing the
//	@Description	caller's cumulative contribution.
//	@Tags			RPC
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		rdmclient.WalletDonateRequest	true	"amount"
//	@Success		200		{object}	rdmclient.Wallet				"updated balances"
//	@Failure		422		{object}	httpx.Error						"insufficient funds"
//	@Router			/rpc/walletDonate [post].
func (h *RPCHandler) HandleWalletDonate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.ErrUnauthorized.WriteError(w)
		return
	}

	var req rdmclient.WalletDonateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.ErrBadRequest.WithMessage("Invalid JSON body").WriteError(w)
		return
	}

	if _, err := h.WalletService.Donate(ctx, identity.UserID, req.Amount); err != nil {
		writeDomainError(ctx, w, err)
		return
	}
	h.writeWallet(w, r, identity.UserID)
}

// HandleSetWalletDisplayMode godoc
//
//	@Summary		Set Wallet Display Mode Procedure
//	@Description	Switches balance rendering between RDM and USDT. Stored
//	@Description	amounts are unaffected.
//	@Tags			RPC
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		rdmclient.SetWalletDisplayModeRequest	true	"mode: RDM or USDT"
//	@Success		200		{object}	rdmclient.Wallet						"balances under the new mode"
//	@Failure		400		{object}	httpx.Error								"unknown mode"
//	@Router			/rpc/setWalletDisplayMode [post].
func (h *RPCHandler) HandleSetWalletDisplayMode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.ErrUnauthorized.WriteError(w)
		return
	}

	var req rdmclient.SetWalletDisplayModeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.ErrBadRequest.WithMessage("Invalid JSON body").WriteError(w)
		return
	}

	if err := h.UserService.SetWalletDisplayMode(ctx, identity.UserID, req.Mode); err != nil {
		writeDomainError(ctx, w, err)
		return
	}
	h.writeWallet(w, r, identity.UserID)
}

// writeWallet re-reads the user and renders the wallet payload; mutations
// respond with the post-mutation balances.
func (h *RPCHandler) writeWallet(w http.ResponseWriter, r *http.Request, userID string) {
	ctx := r.Context()

	user, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil {
		slogx.FromContext(ctx).Error("load user failed", "err", err, "user_id", userID)
		httpx.ErrInternal.WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, walletPayload(user))
}
