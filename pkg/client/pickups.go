package client

import (
	"context"
	"net/http"

	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/api"
	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/core"
)

func (c *Client) PickupLogs(ctx context.Context) ([]core.PickupLog, error) {
	return sendJSON[[]core.PickupLog](ctx, c, http.MethodGet, api.PickupLogsRoute, nil)
}
