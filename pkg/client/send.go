package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/core"
	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/session"
)

const CorrelationIDHeader = "X-Correlation-ID"

// Response is a successful (2xx) answer of the API.
type Response struct {
	StatusCode    int
	Header        http.Header
	Body          []byte
	CorrelationID string
}

// Decode unmarshals the JSON body into v. An empty body leaves v untouched.
func (r *Response) Decode(v any) error {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

type requestConfig struct {
	header     http.Header
	query      url.Values
	params     map[string]string
	noRecovery bool
}

type RequestOption func(*requestConfig)

func WithHeader(key, value string) RequestOption {
	return func(rc *requestConfig) {
		rc.header.Set(key, value)
	}
}

func WithQuery(values url.Values) RequestOption {
	return func(rc *requestConfig) {
		for k, vs := range values {
			for _, v := range vs {
				rc.query.Add(k, v)
			}
		}
	}
}

// WithParam expands the {name} placeholder of the path.
func WithParam(name string, value any) RequestOption {
	return func(rc *requestConfig) {
		rc.params[name] = fmt.Sprint(value)
	}
}

// withoutRecovery surfaces a 401 as is, without renewing or dropping the session.
func withoutRecovery() RequestOption {
	return func(rc *requestConfig) {
		rc.noRecovery = true
	}
}

// call is one logical request, replayable because the body is kept as bytes.
type call struct {
	method     string
	path       string
	payload    []byte
	header     http.Header
	query      url.Values
	retried    bool
	noRecovery bool
}

// Send issues a request against the base URL. body is JSON encoded unless it
// is nil, a []byte or an io.Reader. 401 answers trigger the renewal protocol,
// every other failure is returned unchanged.
func (c *Client) Send(ctx context.Context, method, path string, body any, opts ...RequestOption) (*Response, error) {
	rc := &requestConfig{
		header: http.Header{},
		query:  url.Values{},
		params: map[string]string{},
	}
	for _, opt := range opts {
		opt(rc)
	}

	b := route(path)
	for name, value := range rc.params {
		b.setPathParam(name, value)
	}

	payload, err := encodeBody(body)
	if err != nil {
		return nil, err
	}

	return c.send(ctx, &call{
		method:     method,
		path:       b.build(),
		payload:    payload,
		header:     rc.header,
		query:      rc.query,
		noRecovery: rc.noRecovery,
	})
}

func encodeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case io.Reader:
		data, err := io.ReadAll(b)
		if err != nil {
			return nil, fmt.Errorf("reading payload: %w", err)
		}
		return data, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling payload: %w", err)
	}
	return data, nil
}

func (c *Client) send(ctx context.Context, cl *call) (*Response, error) {
	token := c.session.AccessToken()
	resp, err := c.transmit(ctx, cl, token)
	if err == nil {
		return resp, nil
	}
	if !isUnauthorized(err) || cl.retried || cl.noRecovery || c.isAuthPath(cl.path) {
		return nil, err
	}

	cl.retried = true
	if err := c.recoverSession(ctx, token, err); err != nil {
		return nil, err
	}
	return c.send(ctx, cl)
}

// recoverSession runs after a 401 for a request sent with sentToken. A nil
// return means the request should be replayed with the current token.
func (c *Client) recoverSession(ctx context.Context, sentToken string, cause error) error {
	authErr := fmt.Errorf("%w: %w", ErrAuthRequired, cause)
	if c.mode == AuthModeTerminal {
		c.logger.Debug().Msg("terminal auth mode, dropping session")
		c.expireSession(ctx, authErr)
		return authErr
	}

	// the session is read under the renewal lock, so a renewal that failed and
	// cleared it is observed here and its refresh token is never retried
	var refreshToken string
	held := true
	role, wait := c.renewal.join(func() renewalRole {
		cred := c.session.Credential()
		switch {
		case cred == nil:
			held = false
			return roleExpired
		case cred.AccessToken != sentToken:
			return roleRenewed
		case cred.RefreshToken == "":
			return roleExpired
		}
		refreshToken = cred.RefreshToken
		return roleLeader
	})

	switch role {
	case roleRenewed:
		return nil
	case roleExpired:
		c.logger.Debug().Msg("no refresh token available, dropping session")
		// a session cleared after this request was sent was already reported
		if held || sentToken == "" {
			c.expireSession(ctx, authErr)
		}
		return authErr
	case roleWaiter:
		c.logger.Debug().Msg("session renewal in progress, request queued")
		select {
		case err := <-wait:
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	// the renewal is shared by every queued request, so the caller's
	// cancellation must not abort it. The HTTP client timeout still applies.
	err := c.renew(context.WithoutCancel(ctx), refreshToken)
	if err != nil {
		c.logger.Warn().Err(err).Msg("session renewal failed")
		c.expireSession(ctx, err)
		c.renewal.settle(err)
		return err
	}
	c.logger.Debug().Msg("session renewed")
	c.renewal.settle(nil)
	return nil
}

// renew exchanges the refresh token for a new access token and installs it.
// The refresh token is carried forward unchanged.
func (c *Client) renew(ctx context.Context, refreshToken string) error {
	payload, err := json.Marshal(core.RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRenewalFailed, err)
	}
	resp, err := c.transmit(ctx, &call{
		method:  http.MethodPost,
		path:    c.refreshPath,
		payload: payload,
	}, "")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRenewalFailed, err)
	}

	var tokens core.LoginResponse
	if err := resp.Decode(&tokens); err != nil {
		return fmt.Errorf("%w: %w", ErrRenewalFailed, err)
	}
	if tokens.AccessToken == "" {
		return fmt.Errorf("%w: response carries no access token", ErrRenewalFailed)
	}

	if err := c.session.Set(ctx, &session.Credential{
		AccessToken:  tokens.AccessToken,
		RefreshToken: refreshToken,
	}); err != nil {
		c.logger.Warn().Err(err).Msg("renewed session could not be persisted")
	}
	return nil
}

func (c *Client) expireSession(ctx context.Context, cause error) {
	if err := c.session.Clear(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("failed to clear stored session")
	}
	if c.onAuthRequired != nil {
		c.onAuthRequired(cause)
	}
}

// transmit performs exactly one HTTP round trip. token is attached as bearer
// credential when non-empty.
func (c *Client) transmit(ctx context.Context, cl *call, token string) (*Response, error) {
	u, err := url.Parse(c.baseURL + cl.path)
	if err != nil {
		return nil, fmt.Errorf("parsing request URL: %w", err)
	}
	if len(cl.query) > 0 {
		q := u.Query()
		for k, vs := range cl.query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	var body io.Reader
	if cl.payload != nil {
		body = bytes.NewReader(cl.payload)
	}
	req, err := http.NewRequestWithContext(ctx, cl.method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if cl.payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range cl.header {
		req.Header[k] = vs
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("connection failed: %w: %w", ErrNetwork, err)
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w: %w", ErrNetwork, err)
	}

	if resp.StatusCode >= 400 {
		return nil, parseErrorResponse(resp, data)
	}
	return &Response{
		StatusCode:    resp.StatusCode,
		Header:        resp.Header,
		Body:          data,
		CorrelationID: correlationFromResponse(resp),
	}, nil
}
