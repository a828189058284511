package http

import (
	"net/http"

	"github.com/rdmapp/rdm-server/internal/service"
	"github.com/rdmapp/rdm-server/pkg/httpx"
	"github.com/rdmapp/rdm-server/pkg/rdmclient"
	"github.com/rdmapp/rdm-server/pkg/slogx"
)

// AdminHandler serves the admin.* procedures. Routes are registered behind
// the admin gate, so handler bodies can assume an admin caller.
type AdminHandler struct {
	AdminService *service.AdminService
}

// HandleListUsers godoc
//
//	@Summary		List Users Procedure
//	@Description	Returns every user record, newest first. Requires admin.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	rdmclient.ListUsersResponse	"users"
//	@Failure		403	{object}	httpx.Error					"not an admin"
//	@Router			/rpc/admin.listUsers [post].
func (h *AdminHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.AdminService.ListUsers(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("list users failed", "err", err)
		httpx.ErrInternal.WriteError(w)
		return
	}
	total, err := h.AdminService.CountUsers(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("count users failed", "err", err)
		httpx.ErrInternal.WriteError(w)
		return
	}

	payload := rdmclient.ListUsersResponse{
		Users: make([]rdmclient.User, 0, len(users)),
		Total: total,
	}
	for _, u := range users {
		payload.Users = append(payload.Users, userPayload(u))
	}
	httpx.WriteJSON(w, http.StatusOK, payload)
}

// HandleBanUser godoc
//
//	@Summary		Ban User Procedure
//	@Description	Bans a user, optionally until expiresAt, and revokes their
//	@Description	sessions. Requires admin.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body	rdmclient.BanUserRequest	true	"userId, reason, expiresAt"
//	@Success		204		"user banned"
//	@Failure		404		{object}	httpx.Error	"unknown user"
//	@Router			/rpc/admin.banUser [post].
func (h *AdminHandler) HandleBanUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req rdmclient.BanUserRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.ErrBadRequest.WithMessage("Invalid JSON body").WriteError(w)
		return
	}
	if req.UserID == "" {
		httpx.ErrBadRequest.WithMessage("userId is required").WriteError(w)
		return
	}

	if err := h.AdminService.BanUser(ctx, req.UserID, req.Reason, req.ExpiresAt); err != nil {
		writeDomainError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleUnbanUser godoc
//
//	@Summary		Unban User Procedure
//	@Description	Lifts a user's ban and clears its metadata. Requires admin.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body	rdmclient.UnbanUserRequest	true	"userId"
//	@Success		204		"ban lifted"
//	@Failure		404		{object}	httpx.Error	"unknown user"
//	@Router			/rpc/admin.unbanUser [post].
func (h *AdminHandler) HandleUnbanUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req rdmclient.UnbanUserRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.ErrBadRequest.WithMessage("Invalid JSON body").WriteError(w)
		return
	}
	if req.UserID == "" {
		httpx.ErrBadRequest.WithMessage("userId is required").WriteError(w)
		return
	}

	if err := h.AdminService.UnbanUser(ctx, req.UserID); err != nil {
		writeDomainError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSetRole godoc
//
//	@Summary		Set Role Procedure
//	@Description	Replaces a user's role set. Roles are deduplicated and
//	@Description	stored in the flat comma-separated form. Requires admin.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		rdmclient.SetRoleRequest	true	"userId, roles"
//	@Success		200		{object}	rdmclient.SetRoleResponse	"userId, roles"
//	@Failure		400		{object}	httpx.Error					"empty role set"
//	@Failure		404		{object}	httpx.Error					"unknown user"
//	@Router			/rpc/admin.setRole [post].
func (h *AdminHandler) HandleSetRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req rdmclient.SetRoleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.ErrBadRequest.WithMessage("Invalid JSON body").WriteError(w)
		return
	}
	if req.UserID == "" {
		httpx.ErrBadRequest.WithMessage("userId is required").WriteError(w)
		return
	}

	set, err := h.AdminService.SetRole(ctx, req.UserID, req.Roles)
	if err != nil {
		writeDomainError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, rdmclient.SetRoleResponse{
		UserID: req.UserID,
		Roles:  set.Tokens(),
	})
}
