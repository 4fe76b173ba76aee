package client

import (
	"context"
	"net/http"

	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/api"
	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/core"
)

type tagPayload struct {
	Name string `json:"name"`
}

func (c *Client) ListTags(ctx context.Context) ([]core.Tag, error) {
	return sendJSON[[]core.Tag](ctx, c, http.MethodGet, api.ListTagsRoute, nil)
}

func (c *Client) CreateTag(ctx context.Context, name string) (*core.Tag, error) {
	if err := required("name", name); err != nil {
		return nil, err
	}
	tag, err := sendJSON[core.Tag](ctx, c, http.MethodPost, api.AdminTags, tagPayload{Name: name})
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (c *Client) UpdateTag(ctx context.Context, id int, name string) (*core.Tag, error) {
	if err := required("name", name); err != nil {
		return nil, err
	}
	tag, err := sendJSON[core.Tag](ctx, c, http.MethodPut, api.AdminTagRoute, tagPayload{Name: name}, WithParam("id", id))
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (c *Client) DeleteTag(ctx context.Context, id int) error {
	_, err := c.Send(ctx, http.MethodDelete, api.AdminTagRoute, nil, WithParam("id", id))
	return err
}
