package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/nutritrack/cli/domain"
	"github.com/nutritrack/cli/repository"
)

var _ repository.AdminAPI = (*Client)(nil)

func (c *Client) ListUsers(ctx context.Context, limit int) ([]domain.UserProfile, error) {
	if limit <= 0 {
		limit = 50
	}
	var out usersResponse
	err := c.do(ctx, http.MethodGet, "/admin/users?limit="+strconv.Itoa(limit), nil, &out)
	if err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) UpdateStatus(ctx context.Context, userID string, status domain.Status) (*domain.UserProfile, error) {
	var out domain.UserProfile
	err := c.do(ctx, http.MethodPut, "/admin/users/"+userID+"/status", updateStatusRequest{Status: status}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ChangeRole(ctx context.Context, userID string, role domain.Role) (*domain.UserProfile, error) {
	var out domain.UserProfile
	err := c.do(ctx, http.MethodPut, "/admin/users/"+userID+"/role", changeRoleRequest{Role: role}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
