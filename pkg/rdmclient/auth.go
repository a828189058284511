package rdmclient

import (
	"context"
	"net/http"
)

// SignUpForm carries the sign-up fields as the mobile form collects them,
// including the confirmation field that never leaves the device.
type SignUpForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Validate runs the client-side form checks: minimum password length and
// password confirmation. These run before any network call.
func (f SignUpForm) Validate() error {
	if len(f.Password) < 8 {
		return ErrPasswordTooShort
	}
	if f.Password != f.ConfirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}

// SignUp validates the form locally, then registers the user and returns an
// authenticated Session.
func (c *Client) SignUp(ctx context.Context, form SignUpForm) (*Session, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	var resp AuthResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/sign-up/email", "", SignUpRequest{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return newSession(c, resp), nil
}

// SignIn authenticates an email/password pair and returns a Session.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var resp AuthResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/sign-in/email", "", SignInRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return newSession(c, resp), nil
}

// VerifyEmail consumes an email-verification token.
func (c *Client) VerifyEmail(ctx context.Context, identifier, token string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/verify-email", "", VerifyEmailRequest{
		Identifier: identifier,
		Token:      token,
	}, nil)
}

// NewSessionFromToken wraps an existing bearer token, e.g. one restored
// from the device keychain.
func (c *Client) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

// Session is an authenticated handle on the RDM server.
type Session struct {
	client *Client
	token  string

	// User is a snapshot from the auth response; Refresh updates it.
	User User
}

func newSession(c *Client, resp AuthResponse) *Session {
	return &Session{client: c, token: resp.Token, User: resp.User}
}

// Token returns the bearer token, e.g. for persisting to the keychain.
func (s *Session) Token() string {
	return s.token
}

// Refresh re-fetches the session and user snapshot from the server.
func (s *Session) Refresh(ctx context.Context) (*SessionResponse, error) {
	var resp SessionResponse
	err := s.client.doJSON(ctx, http.MethodGet, "/api/auth/get-session", s.token, nil, &resp)
	if err != nil {
		return nil, err
	}
	s.User = resp.User
	return &resp, nil
}

// SignOut revokes the session server-side.
func (s *Session) SignOut(ctx context.Context) error {
	return s.client.doJSON(ctx, http.MethodPost, "/api/auth/sign-out", s.token, nil, nil)
}

// ChangePassword replaces the account password. The new password passes the
// same local length check as the sign-up form before any network call.
func (s *Session) ChangePassword(ctx context.Context, current, newPassword string) error {
	if len(newPassword) < 8 {
		return ErrPasswordTooShort
	}
	return s.client.doJSON(ctx, http.MethodPost, "/api/auth/change-password", s.token, ChangePasswordRequest{
		CurrentPassword: current,
		NewPassword:     newPassword,
	}, nil)
}
