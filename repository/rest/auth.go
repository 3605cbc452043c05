package rest

import (
	"context"
	"net/http"

	"github.com/nutritrack/cli/domain"
	"github.com/nutritrack/cli/repository"
)

var _ repository.AuthAPI = (*Client)(nil)

func (c *Client) Login(ctx context.Context, email, password string) (domain.Credential, *domain.UserProfile, error) {
	var out authResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return "", nil, err
	}
	if out.Token == "" || out.User == nil {
		return "", nil, domain.NewError(domain.ErrCodeServer, "login response missing token or user")
	}
	return out.Token, out.User, nil
}

func (c *Client) Signup(ctx context.Context, input repository.SignupInput) (domain.Credential, *domain.UserProfile, error) {
	var out authResponse
	err := c.do(ctx, http.MethodPost, "/auth/signup", input, &out)
	if err != nil {
		return "", nil, err
	}
	if out.Token == "" || out.User == nil {
		return "", nil, domain.NewError(domain.ErrCodeServer, "signup response missing token or user")
	}
	return out.Token, out.User, nil
}

func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	var out dataEnvelope
	err := c.do(ctx, http.MethodPost, "/auth/forgot-password", forgotPasswordRequest{Email: email}, &out)
	if err != nil {
		return "", err
	}
	return out.Data, nil
}

func (c *Client) ResetPassword(ctx context.Context, token, password string) (string, error) {
	var out dataEnvelope
	err := c.do(ctx, http.MethodPut, "/auth/reset-password/"+token, resetPasswordRequest{Password: password}, &out)
	if err != nil {
		return "", err
	}
	return out.Data, nil
}
