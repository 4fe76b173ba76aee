package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/api"
	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/core"
)

func (c *Client) ListItems(ctx context.Context) ([]core.Item, error) {
	return sendJSON[[]core.Item](ctx, c, http.MethodGet, api.ListItemsRoute, nil)
}

func (c *Client) GetItem(ctx context.Context, id int) (*core.Item, error) {
	item, err := sendJSON[core.Item](ctx, c, http.MethodGet, api.ItemRoute, nil, WithParam("id", id))
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) CreateItem(ctx context.Context, in core.ItemCreate) (*core.Item, error) {
	if err := required("location", in.Location); err != nil {
		return nil, err
	}
	if in.Status != "" && !in.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, in.Status)
	}
	item, err := sendJSON[core.Item](ctx, c, http.MethodPost, api.ListItemsRoute, in)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem patches the given fields of an item.
func (c *Client) UpdateItem(ctx context.Context, id int, in core.ItemUpdate) (*core.Item, error) {
	if in.Status != nil && !in.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *in.Status)
	}
	item, err := sendJSON[core.Item](ctx, c, http.MethodPatch, api.ItemRoute, in, WithParam("id", id))
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteItem(ctx context.Context, id int) error {
	_, err := c.Send(ctx, http.MethodDelete, api.ItemRoute, nil, WithParam("id", id))
	return err
}

// RegisterItem registers a found item through the admin endpoint.
// At least one tag is required.
func (c *Client) RegisterItem(ctx context.Context, in core.ItemRegistration) (*core.Item, error) {
	if err := required("photo_url", in.PhotoURL); err != nil {
		return nil, err
	}
	if err := required("location", in.Location); err != nil {
		return nil, err
	}
	if len(in.Tags) == 0 {
		return nil, fmt.Errorf("%w: at least one tag is required", ErrValidation)
	}
	if in.DeviceName == "" {
		in.DeviceName = core.ManualRegisterDevice
	}
	item, err := sendJSON[core.Item](ctx, c, http.MethodPost, api.AdminItemRoute, in)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
