package api

import (
	"context"
	"net/http"

	"github.com/kitnetmanager/kitnet-client/internal/domain"
	customError "github.com/kitnetmanager/kitnet-client/pkg/errors"
)

// Login authenticates against the backend and stores the returned user and
// token in the injected session.
func (c *Client) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	if err := c.validator.Struct(req); err != nil {
		return nil, customError.WrapInvalidArgument(err.Error())
	}

	var result domain.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &result); err != nil {
		return nil, err
	}

	if err := c.session.Set(&result.User, result.Token); err != nil {
		return nil, err
	}

	return &result, nil
}

// Logout tells the backend to invalidate the token and clears the session.
// The session is cleared even when the backend call fails; a dead token on
// the server is the backend's problem, a dead token on disk is ours.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)

	if clearErr := c.session.Clear(); clearErr != nil {
		return clearErr
	}

	return err
}

// Me fetches the authenticated user's profile
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
