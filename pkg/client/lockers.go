package client

import (
	"context"
	"net/http"
	"time"

	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/api"
	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/core"
)

type LockerLogsOpts struct {
	LockerID string
	From     time.Time
	To       time.Time
	Result   core.OpenResult
	Page     int
	Size     int
}

func (c *Client) OpenLocker(ctx context.Context, lockerID, code string) (*core.LockerOpenResponse, error) {
	if err := required("locker id", lockerID); err != nil {
		return nil, err
	}
	if err := required("code", code); err != nil {
		return nil, err
	}
	res, err := sendEnvelope[core.LockerOpenResponse](ctx, c, http.MethodPost, api.LockerOpenRoute, core.LockerCode{Code: code}, WithParam("id", lockerID))
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) LockerStatus(ctx context.Context, lockerID string) (*core.LockerStatus, error) {
	if err := required("locker id", lockerID); err != nil {
		return nil, err
	}
	res, err := sendEnvelope[core.LockerStatus](ctx, c, http.MethodGet, api.LockerStatusRoute, nil, WithParam("id", lockerID))
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) ValidateLockerCode(ctx context.Context, lockerID, code string) (*core.CodeValidation, error) {
	if err := required("locker id", lockerID); err != nil {
		return nil, err
	}
	if err := required("code", code); err != nil {
		return nil, err
	}
	res, err := sendEnvelope[core.CodeValidation](ctx, c, http.MethodPost, api.LockerValidateCodeRoute, core.LockerCode{Code: code}, WithParam("id", lockerID))
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) LockerOpenLogs(ctx context.Context, opts LockerLogsOpts) ([]core.LockerOpenLog, error) {
	b := route(api.LockerOpenLogsRoute).
		addQueryParam("lockerId", opts.LockerID).
		addQueryParam("result", string(opts.Result)).
		addQueryParam("page", opts.Page).
		addQueryParam("size", opts.Size)
	if !opts.From.IsZero() {
		b.addQueryParam("from", opts.From.Format(time.RFC3339))
	}
	if !opts.To.IsZero() {
		b.addQueryParam("to", opts.To.Format(time.RFC3339))
	}
	return sendEnvelope[[]core.LockerOpenLog](ctx, c, http.MethodGet, b.build(), nil)
}
