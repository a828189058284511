package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/rdmapp/rdm-server/internal/domain"
	"github.com/rdmapp/rdm-server/internal/service"
	"github.com/rdmapp/rdm-server/internal/store"
	"github.com/rdmapp/rdm-server/pkg/httpx"
	"github.com/rdmapp/rdm-server/pkg/slogx"
)

// writeAuthError maps auth service failures onto the wire error taxonomy.
// Unexpected errors collapse into a 500 with no internals leaked.
func writeAuthError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrPasswordTooShort):
		httpx.ErrBadRequest.WithMessage("Password must be at least 8 characters").WriteError(w)
	case errors.Is(err, service.ErrInvalidInput):
		httpx.ErrBadRequest.WithMessage(err.Error()).WriteError(w)
	case errors.Is(err, service.ErrEmailTaken):
		httpx.ErrConflict.WithMessage("Email already registered").WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.ErrUnauthorized.WithMessage("Invalid email or password").WriteError(w)
	case errors.Is(err, service.ErrUserBanned):
		httpx.ErrForbidden.WithMessage("Account is banned").WriteError(w)
	case errors.Is(err, service.ErrSessionInvalid):
		httpx.ErrUnauthorized.WriteError(w)
	case errors.Is(err, service.ErrVerificationInvalid):
		httpx.ErrBadRequest.WithMessage("Verification token is invalid or expired").WriteError(w)
	default:
		slogx.FromContext(ctx).Error("auth request failed", "err", err)
		httpx.ErrInternal.WriteError(w)
	}
}

// writeDomainError maps wallet/streak/admin failures. Wallet rule breaches
// are client errors; overdrafts get their own code so the app can react.
func writeDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		httpx.ErrInsufficientFunds.WithMessage("Insufficient funds").WriteError(w)
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrUnknownPurse):
		httpx.ErrBadRequest.WithMessage(err.Error()).WriteError(w)
	case errors.Is(err, service.ErrInvalidInput):
		httpx.ErrBadRequest.WithMessage(err.Error()).WriteError(w)
	case errors.Is(err, store.ErrNotFound):
		httpx.ErrNotFound.WithMessage("User not found").WriteError(w)
	default:
		slogx.FromContext(ctx).Error("request failed", "err", err)
		httpx.ErrInternal.WriteError(w)
	}
}
