package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/api"
	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/core"
	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/session"
)

// Login authenticates with email and password and installs the returned
// credential as the active session.
func (c *Client) Login(ctx context.Context, email, password string) (*session.Credential, error) {
	if err := required("email", email); err != nil {
		return nil, err
	}
	if err := required("password", password); err != nil {
		return nil, err
	}

	tokens, err := sendJSON[core.LoginResponse](ctx, c, http.MethodPost, c.loginPath, core.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	if tokens.AccessToken == "" {
		return nil, fmt.Errorf("login response carries no access token")
	}

	cred := &session.Credential{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}
	if err := c.session.Set(ctx, cred); err != nil {
		return cred, err
	}
	return cred, nil
}

// Refresh renews the access token explicitly, sharing the renewal with any
// request currently recovering from a 401.
func (c *Client) Refresh(ctx context.Context) error {
	var refreshToken string
	role, wait := c.renewal.join(func() renewalRole {
		refreshToken = c.session.RefreshToken()
		if refreshToken == "" {
			return roleExpired
		}
		return roleLeader
	})
	switch role {
	case roleExpired:
		return fmt.Errorf("%w: no refresh token held", ErrAuthRequired)
	case roleWaiter:
		select {
		case err := <-wait:
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	err := c.renew(context.WithoutCancel(ctx), refreshToken)
	if err != nil {
		c.expireSession(ctx, err)
	}
	c.renewal.settle(err)
	return err
}

// Logout ends the session on the server and always clears it locally.
// An expired token is not renewed just to log out.
func (c *Client) Logout(ctx context.Context) error {
	var remoteErr error
	if c.session.Authenticated() {
		_, remoteErr = c.Send(ctx, http.MethodPost, api.LogoutRoute, nil, withoutRecovery())
	}
	if err := c.session.Clear(ctx); err != nil {
		return err
	}
	if remoteErr != nil {
		return fmt.Errorf("remote logout: %w", remoteErr)
	}
	return nil
}
