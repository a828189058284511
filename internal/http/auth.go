package http

import (
	"errors"
	"net/http"

	"github.com/rdmapp/rdm-server/internal/service"
	"github.com/rdmapp/rdm-server/pkg/httpx"
	"github.com/rdmapp/rdm-server/pkg/rdmclient"
	"github.com/rdmapp/rdm-server/pkg/slogx"
)

// AuthHandler serves the email/password auth boundary.
type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleSignUp godoc
//
//	@Summary		Sign Up with Email
//	@Description	Register a new account with name, email and password.
//	@Description	New users start with the "user" role and 100 RDM in the base purse.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rdmclient.SignUpRequest	true	"Sign-up fields"
//	@Success		200		{object}	rdmclient.AuthResponse	"token, expiresAt, user"
//	@Failure		400		{object}	httpx.Error				"invalid fields"
//	@Failure		409		{object}	httpx.Error				"email already registered"
//	@Router			/api/auth/sign-up/email [post].
func (h *AuthHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req rdmclient.SignUpRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.ErrBadRequest.WithMessage("Invalid JSON body").WriteError(w)
		return
	}

	result, err := h.AuthService.SignUpEmail(ctx, service.SignUpParams{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: httpx.IPKeyExtractor(r),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		writeAuthError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, rdmclient.AuthResponse{
		Token:     result.SessionToken,
		ExpiresAt: result.SessionExpiresAt,
		User:      userPayload(result.User),
	})
}

// HandleSignIn godoc
//
//	@Summary		Sign In with Email
//	@Description	Authenticate an email/password pair and open a session.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rdmclient.SignInRequest	true	"Credentials"
//	@Success		200		{object}	rdmclient.AuthResponse	"token, expiresAt, user"
//	@Failure		401		{object}	httpx.Error				"invalid credentials"
//	@Failure		403		{object}	httpx.Error				"account banned"
//	@Router			/api/auth/sign-in/email [post].
func (h *AuthHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req rdmclient.SignInRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.ErrBadRequest.WithMessage("Invalid JSON body").WriteError(w)
		return
	}

	result, err := h.AuthService.SignInEmail(ctx, service.SignInParams{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: httpx.IPKeyExtractor(r),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		writeAuthError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, rdmclient.AuthResponse{
		Token:     result.SessionToken,
		ExpiresAt: result.SessionExpiresAt,
		User:      userPayload(result.User),
	})
}

// HandleSignOut godoc
//
//	@Summary		Sign Out
//	@Description	Revoke the bearer session. Idempotent.
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		204	"session revoked"
//	@Failure		401	{object}	httpx.Error	"no session"
//	@Router			/api/auth/sign-out [post].
func (h *AuthHandler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := httpx.BearerToken(r)
	if token == "" {
		httpx.ErrUnauthorized.WriteError(w)
		return
	}

	if err := h.AuthService.SignOut(ctx, token); err != nil {
		slogx.FromContext(ctx).Error("sign-out failed", "err", err)
		httpx.ErrInternal.WriteError(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleGetSession godoc
//
//	@Summary		Get Session
//	@Description	Resolve the bearer token to its session and user. Returns
//	@Description	a JSON null body when no valid session is attached.
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	rdmclient.SessionResponse	"session, user (or null)"
//	@Router			/api/auth/get-session [get].
func (h *AuthHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := httpx.BearerToken(r)
	if token == "" {
		httpx.WriteJSON(w, http.StatusOK, nil)
		return
	}

	session, user, err := h.AuthService.Session(ctx, token)
	if err != nil {
		if errors.Is(err, service.ErrSessionInvalid) || errors.Is(err, service.ErrUserBanned) {
			httpx.WriteJSON(w, http.StatusOK, nil)
			return
		}
		slogx.FromContext(ctx).Error("session lookup failed", "err", err)
		httpx.ErrInternal.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, rdmclient.SessionResponse{
		Session: sessionPayload(session),
		User:    userPayload(user),
	})
}

// HandleChangePassword godoc
//
//	@Summary		Change Password
//	@Description	Verify the current password and replace it. Runs behind the
//	@Description	session gate.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body	rdmclient.ChangePasswordRequest	true	"current and new password"
//	@Success		204		"password changed"
//	@Failure		400		{object}	httpx.Error	"new password too short"
//	@Failure		401		{object}	httpx.Error	"wrong current password"
//	@Router			/api/auth/change-password [post].
func (h *AuthHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.ErrUnauthorized.WriteError(w)
		return
	}

	var req rdmclient.ChangePasswordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.ErrBadRequest.WithMessage("Invalid JSON body").WriteError(w)
		return
	}

	if err := h.AuthService.ChangePassword(ctx, identity.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		writeAuthError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleVerifyEmail godoc
//
//	@Summary		Verify Email
//	@Description	Consume an email-verification token minted at sign-up.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body	rdmclient.VerifyEmailRequest	true	"identifier and token"
//	@Success		204		"email verified"
//	@Failure		400		{object}	httpx.Error	"token invalid or expired"
//	@Router			/api/auth/verify-email [post].
func (h *AuthHandler) HandleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req rdmclient.VerifyEmailRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.ErrBadRequest.WithMessage("Invalid JSON body").WriteError(w)
		return
	}

	if err := h.AuthService.VerifyEmail(ctx, req.Identifier, req.Token); err != nil {
		writeAuthError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
