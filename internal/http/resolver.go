package http

import (
	"context"

	"github.com/rdmapp/rdm-server/internal/service"
	"github.com/rdmapp/rdm-server/pkg/httpx"
)

// sessionResolver adapts AuthService session resolution to the shape the
// session middleware expects.
type sessionResolver struct {
	Auth *service.AuthService
}

func (sr *sessionResolver) ResolveSession(ctx context.Context, token string) (httpx.Identity, error) {
	session, user, err := sr.Auth.Session(ctx, token)
	if err != nil {
		return httpx.Identity{}, err
	}

	return httpx.Identity{
		SessionID: session.ID,
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Roles:     user.Roles().Tokens(),
	}, nil
}
