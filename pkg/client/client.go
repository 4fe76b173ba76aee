package client

import (
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/api"
	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/buildinfo"
	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/session"
)

// AuthMode selects how the client reacts to an expired access token.
type AuthMode string

const (
	// AuthModeRefresh renews the access token with the refresh token, if one is held.
	AuthModeRefresh AuthMode = "refresh"
	// AuthModeTerminal treats every 401 as the end of the session.
	AuthModeTerminal AuthMode = "terminal"
)

const DefaultTimeout = 30 * time.Second

// Client talks to the ILFC API. It attaches the session's access token to
// every request and renews it transparently when the server answers 401.
// A Client is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.State
	logger     zerolog.Logger
	userAgent  string

	mode           AuthMode
	loginPath      string
	refreshPath    string
	useCredentials bool
	timeout        time.Duration
	onAuthRequired func(err error)

	renewal renewal
}

type Option func(*Client)

// WithSession sets the session state the client reads and updates.
func WithSession(s *session.State) Option {
	return func(c *Client) {
		c.session = s
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

func WithAuthMode(m AuthMode) Option {
	return func(c *Client) {
		c.mode = m
	}
}

// WithLoginPath overrides the login endpoint, e.g. api.AdminLoginRoute.
func WithLoginPath(p string) Option {
	return func(c *Client) {
		if p != "" {
			c.loginPath = p
		}
	}
}

func WithRefreshPath(p string) Option {
	return func(c *Client) {
		if p != "" {
			c.refreshPath = p
		}
	}
}

// WithUseCredentials keeps cookies set by the API and sends them back on
// subsequent requests.
func WithUseCredentials(enabled bool) Option {
	return func(c *Client) {
		c.useCredentials = enabled
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithOnAuthRequired registers the hook invoked whenever the session is
// dropped because the user has to log in again.
func WithOnAuthRequired(fn func(err error)) Option {
	return func(c *Client) {
		c.onAuthRequired = fn
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{Timeout: DefaultTimeout},
		logger:      log.Logger,
		userAgent:   "ilfc/" + buildinfo.Version,
		mode:        AuthModeRefresh,
		loginPath:   api.LoginRoute,
		refreshPath: api.RefreshRoute,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.session == nil {
		c.session = session.New(nil)
	}

	// work on a copy, the caller's http.Client stays untouched
	hc := *c.httpClient
	hc.Transport = newLoggingTransport(hc.Transport, &c.logger)
	if c.timeout > 0 {
		hc.Timeout = c.timeout
	}
	if c.useCredentials && hc.Jar == nil {
		if jar, err := cookiejar.New(nil); err == nil {
			hc.Jar = jar
		}
	}
	c.httpClient = &hc
	return c
}

// Session returns the session state used by the client.
func (c *Client) Session() *session.State {
	return c.session
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// isAuthPath reports whether the path belongs to the login or renewal
// endpoints. Those never trigger a renewal.
func (c *Client) isAuthPath(path string) bool {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimRight(path, "/")
	for _, p := range []string{c.loginPath, c.refreshPath, api.LoginRoute, api.AdminLoginRoute, api.RefreshRoute} {
		if path == strings.TrimRight(p, "/") {
			return true
		}
	}
	return false
}
