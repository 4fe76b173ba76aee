package client

import (
	"context"
	"fmt"
	"strings"
)

// envelope is the {"data": ...} wrapper used by the admin endpoints.
type envelope[T any] struct {
	Data T `json:"data"`
}

func sendJSON[T any](ctx context.Context, c *Client, method, path string, payload any, opts ...RequestOption) (T, error) {
	var result T
	resp, err := c.Send(ctx, method, path, payload, opts...)
	if err != nil {
		return result, err
	}
	err = resp.Decode(&result)
	return result, err
}

func sendEnvelope[T any](ctx context.Context, c *Client, method, path string, payload any, opts ...RequestOption) (T, error) {
	env, err := sendJSON[envelope[T]](ctx, c, method, path, payload, opts...)
	return env.Data, err
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	return nil
}
