package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/api"
	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/core"
)

type ListUsersOpts struct {
	Query  string
	Role   core.Role
	Status string
	Page   int
	Size   int
	Sort   string
}

type deleteResult struct {
	Deleted bool `json:"deleted"`
}

func (c *Client) ListUsers(ctx context.Context, opts ListUsersOpts) ([]core.AdminUser, error) {
	return sendEnvelope[[]core.AdminUser](ctx, c, http.MethodGet, route(api.AdminUsers).
		addQueryParam("query", opts.Query).
		addQueryParam("role", string(opts.Role)).
		addQueryParam("status", opts.Status).
		addQueryParam("page", opts.Page).
		addQueryParam("size", opts.Size).
		addQueryParam("sort", opts.Sort).
		build(), nil)
}

func (c *Client) GetUser(ctx context.Context, id string) (*core.AdminUser, error) {
	if err := required("user id", id); err != nil {
		return nil, err
	}
	u, err := sendEnvelope[core.AdminUser](ctx, c, http.MethodGet, api.AdminUserRoute, nil, WithParam("id", id))
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) CreateUser(ctx context.Context, in core.UserCreate) (*core.AdminUser, error) {
	if err := required("email", in.Email); err != nil {
		return nil, err
	}
	if err := required("password", in.Password); err != nil {
		return nil, err
	}
	if err := required("name", in.Name); err != nil {
		return nil, err
	}
	if err := validRole(in.Role); err != nil {
		return nil, err
	}
	u, err := sendEnvelope[core.AdminUser](ctx, c, http.MethodPost, api.AdminUsers, in)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, in core.UserUpdate) (*core.AdminUser, error) {
	if err := required("user id", id); err != nil {
		return nil, err
	}
	if in.Role != nil {
		if err := validRole(*in.Role); err != nil {
			return nil, err
		}
	}
	u, err := sendEnvelope[core.AdminUser](ctx, c, http.MethodPut, api.AdminUserRoute, in, WithParam("id", id))
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if err := required("user id", id); err != nil {
		return err
	}
	res, err := sendEnvelope[deleteResult](ctx, c, http.MethodDelete, api.AdminUserRoute, nil, WithParam("id", id))
	if err != nil {
		return err
	}
	if !res.Deleted {
		return fmt.Errorf("server did not confirm deletion of user %s", id)
	}
	return nil
}

func (c *Client) ResetPassword(ctx context.Context, id string) (*core.PasswordReset, error) {
	if err := required("user id", id); err != nil {
		return nil, err
	}
	r, err := sendEnvelope[core.PasswordReset](ctx, c, http.MethodPost, api.AdminUserPasswordReset, struct{}{}, WithParam("id", id))
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func validRole(r core.Role) error {
	switch r {
	case core.RoleAdmin, core.RoleStaff, core.RoleUser:
		return nil
	}
	return fmt.Errorf("%w: unknown role %q", ErrValidation, r)
}
