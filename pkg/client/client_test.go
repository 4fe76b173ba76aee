package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/core"
	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/session"
)

// fakeAPI mimics the ILFC API: protected routes accept exactly one access
// token, the refresh endpoint hands out the next one.
type fakeAPI struct {
	mu          sync.Mutex
	valid       string
	next        string
	refreshOK   string
	refreshFail bool
	refreshGate chan struct{}
	logoutFail  bool

	// slowEntered is signalled when /slow receives a request, which then
	// blocks on slowGate before checking the token
	slowEntered chan struct{}
	slowGate    chan struct{}

	refreshCalls   atomic.Int32
	protectedCalls atomic.Int32
	lastAuth       atomic.Value
	lastHeader     atomic.Value
	lastPath       atomic.Value
	lastBody       atomic.Value

	server *httptest.Server
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	f := &fakeAPI{valid: "T1", next: "T2", refreshOK: "R1"}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/users/login", func(w http.ResponseWriter, r *http.Request) {
		var req core.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Email != "a@x.com" || req.Password != "p" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Incorrect email or password"})
			return
		}
		writeJSON(w, http.StatusOK, core.LoginResponse{AccessToken: "T1", TokenType: "bearer", RefreshToken: "R1"})
	})
	mux.HandleFunc("POST /api/users/refresh", func(w http.ResponseWriter, r *http.Request) {
		f.refreshCalls.Add(1)
		if r.Header.Get("Authorization") != "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "refresh must not carry a bearer token"})
			return
		}
		if f.refreshGate != nil {
			<-f.refreshGate
		}
		var req core.RefreshRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		f.mu.Lock()
		defer f.mu.Unlock()
		if f.refreshFail || req.RefreshToken != f.refreshOK {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "invalid refresh token"})
			return
		}
		f.valid = f.next
		writeJSON(w, http.StatusOK, core.LoginResponse{AccessToken: f.next})
	})
	protected := func(w http.ResponseWriter, r *http.Request) bool {
		f.protectedCalls.Add(1)
		auth := r.Header.Get("Authorization")
		f.lastAuth.Store(auth)
		f.lastHeader.Store(r.Header.Clone())
		f.lastPath.Store(r.URL.Path)
		f.mu.Lock()
		valid := f.valid
		f.mu.Unlock()
		if auth != "Bearer "+valid {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Could not validate credentials"})
			return false
		}
		return true
	}
	mux.HandleFunc("POST /api/users/logout", func(w http.ResponseWriter, r *http.Request) {
		if f.logoutFail {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "boom"})
			return
		}
		if !protected(w, r) {
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /api/session-cookie", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "sid", Value: "abc", Path: "/"})
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /api/echo-cookie", func(w http.ResponseWriter, r *http.Request) {
		sid := ""
		if ck, err := r.Cookie("sid"); err == nil {
			sid = ck.Value
		}
		writeJSON(w, http.StatusOK, map[string]string{"sid": sid})
	})
	mux.HandleFunc("GET /api/slow", func(w http.ResponseWriter, r *http.Request) {
		if f.slowEntered != nil {
			f.slowEntered <- struct{}{}
		}
		if f.slowGate != nil {
			<-f.slowGate
		}
		if !protected(w, r) {
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /api/items/", func(w http.ResponseWriter, r *http.Request) {
		if !protected(w, r) {
			return
		}
		writeJSON(w, http.StatusOK, []core.Item{{ID: 1, Location: "Library", Status: core.ItemStored}})
	})
	mux.HandleFunc("GET /api/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !protected(w, r) {
			return
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Item not found"})
	})
	mux.HandleFunc("POST /api/admin/tags", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.lastBody.Store(string(body))
		if !protected(w, r) {
			return
		}
		var p tagPayload
		_ = json.Unmarshal(body, &p)
		writeJSON(w, http.StatusOK, core.Tag{ID: 7, Name: p.Name})
	})
	mux.HandleFunc("POST /api/admin/items", func(w http.ResponseWriter, r *http.Request) {
		if !protected(w, r) {
			return
		}
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"detail": []map[string]any{{"loc": []any{"body", "location"}, "msg": "field required"}},
		})
	})
	mux.HandleFunc("GET /api/admin/pickup-logs", func(w http.ResponseWriter, r *http.Request) {
		if !protected(w, r) {
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "database unavailable"})
	})
	mux.HandleFunc("GET /api/always-401", func(w http.ResponseWriter, r *http.Request) {
		f.protectedCalls.Add(1)
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "nope"})
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeAPI) baseURL() string {
	return f.server.URL + "/api"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(CorrelationIDHeader, "corr-test")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type authHook struct {
	calls atomic.Int32
}

func (h *authHook) fn(error) {
	h.calls.Add(1)
}

func newTestClient(f *fakeAPI, cred *session.Credential, opts ...Option) (*Client, *session.MemoryStore, *authHook) {
	store := session.NewMemoryStore(nil)
	state := session.New(store)
	if cred != nil {
		_ = state.Set(context.Background(), cred)
	}
	hook := &authHook{}
	opts = append([]Option{
		WithSession(state),
		WithLogger(zerolog.Nop()),
		WithOnAuthRequired(hook.fn),
	}, opts...)
	return New(f.baseURL(), opts...), store, hook
}

func TestSend_AttachesBearerToken(t *testing.T) {
	f := newFakeAPI(t)
	c, _, _ := newTestClient(f, &session.Credential{AccessToken: "T1"})

	items, err := c.ListItems(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "Bearer T1", f.lastAuth.Load())

	header := f.lastHeader.Load().(http.Header)
	assert.NotEmpty(t, header.Get(CorrelationIDHeader))
	assert.True(t, strings.HasPrefix(header.Get("User-Agent"), "ilfc/"))
}

func TestSend_CallerHeadersAndQuery(t *testing.T) {
	f := newFakeAPI(t)
	c, _, _ := newTestClient(f, &session.Credential{AccessToken: "T1"})

	_, err := c.Send(context.Background(), http.MethodGet, "/items/", nil,
		WithHeader(CorrelationIDHeader, "fixed-id"),
		WithQuery(map[string][]string{"page": {"2"}}))
	require.NoError(t, err)

	header := f.lastHeader.Load().(http.Header)
	assert.Equal(t, "fixed-id", header.Get(CorrelationIDHeader))
}

func TestSend_NoCredential(t *testing.T) {
	f := newFakeAPI(t)
	c, store, hook := newTestClient(f, nil)

	_, err := c.ListItems(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.Equal(t, "", f.lastAuth.Load(), "no Authorization header expected")
	assert.EqualValues(t, 0, f.refreshCalls.Load())
	assert.EqualValues(t, 1, hook.calls.Load())

	_, loadErr := store.Load(context.Background())
	assert.ErrorIs(t, loadErr, session.ErrNoCredential)
}

func TestSend_NoRefreshTokenClearsSession(t *testing.T) {
	f := newFakeAPI(t)
	c, store, hook := newTestClient(f, &session.Credential{AccessToken: "expired"})

	_, err := c.ListItems(context.Background())
	require.ErrorIs(t, err, ErrAuthRequired)

	var apiErr APIError
	require.ErrorAs(t, err, &apiErr, "original 401 stays inspectable")
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	assert.False(t, c.Session().Authenticated())
	_, loadErr := store.Load(context.Background())
	assert.ErrorIs(t, loadErr, session.ErrNoCredential)
	assert.EqualValues(t, 0, f.refreshCalls.Load())
	assert.EqualValues(t, 1, hook.calls.Load())
}

func TestLoginRefreshReplayScenario(t *testing.T) {
	f := newFakeAPI(t)
	c, store, hook := newTestClient(f, nil)
	ctx := context.Background()

	cred, err := c.Login(ctx, "a@x.com", "p")
	require.NoError(t, err)
	assert.Equal(t, "T1", cred.AccessToken)

	// the server rotates its valid token, the stored T1 is now expired
	f.mu.Lock()
	f.valid = "expired-for-everyone"
	f.mu.Unlock()

	items, err := c.ListItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	assert.EqualValues(t, 1, f.refreshCalls.Load())
	assert.Equal(t, "Bearer T2", f.lastAuth.Load())
	assert.Equal(t, &session.Credential{AccessToken: "T2", RefreshToken: "R1"}, c.Session().Credential())

	stored, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T2", stored.AccessToken)
	assert.EqualValues(t, 0, hook.calls.Load())
}

func TestSend_ConcurrentRequestsShareOneRenewal(t *testing.T) {
	const n = 8
	f := newFakeAPI(t)
	f.valid = "T0"
	f.refreshGate = make(chan struct{})
	c, _, _ := newTestClient(f, &session.Credential{AccessToken: "T1", RefreshToken: "R1"})

	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = c.ListItems(context.Background())
		}(i)
	}

	require.Eventually(t, func() bool {
		return c.renewal.active() && c.renewal.pending() == n-1
	}, 5*time.Second, 5*time.Millisecond)
	close(f.refreshGate)
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "request %d", i)
	}
	assert.EqualValues(t, 1, f.refreshCalls.Load())
	assert.EqualValues(t, 2*n, f.protectedCalls.Load(), "every request is sent once and replayed once")
	assert.Equal(t, "T2", c.Session().AccessToken())
	assert.False(t, c.renewal.active())
}

func TestSend_RenewalFailureRejectsAllWaiters(t *testing.T) {
	const n = 5
	f := newFakeAPI(t)
	f.valid = "T0"
	f.refreshFail = true
	f.refreshGate = make(chan struct{})
	c, store, hook := newTestClient(f, &session.Credential{AccessToken: "T1", RefreshToken: "R1"})

	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = c.ListItems(context.Background())
		}(i)
	}

	require.Eventually(t, func() bool {
		return c.renewal.active() && c.renewal.pending() == n-1
	}, 5*time.Second, 5*time.Millisecond)
	close(f.refreshGate)
	wg.Wait()

	for i, err := range errs {
		assert.ErrorIs(t, err, ErrRenewalFailed, "request %d", i)
	}
	assert.EqualValues(t, 1, f.refreshCalls.Load())
	assert.EqualValues(t, 1, hook.calls.Load())
	assert.False(t, c.Session().Authenticated())
	_, loadErr := store.Load(context.Background())
	assert.ErrorIs(t, loadErr, session.ErrNoCredential)

	// no new renewal until the next login
	_, err := c.ListItems(context.Background())
	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.EqualValues(t, 1, f.refreshCalls.Load())
}

func TestSend_AuthEndpointsNeverRenew(t *testing.T) {
	f := newFakeAPI(t)
	c, _, hook := newTestClient(f, &session.Credential{AccessToken: "T1", RefreshToken: "R1"})
	ctx := context.Background()

	_, err := c.Login(ctx, "a@x.com", "wrong")
	require.Error(t, err)
	var apiErr APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Incorrect email or password", apiErr.Message)
	assert.Equal(t, "corr-test", apiErr.CorrelationID)

	f.mu.Lock()
	f.refreshFail = true
	f.mu.Unlock()
	_, err = c.Send(ctx, http.MethodPost, "/users/refresh", core.RefreshRequest{RefreshToken: "R1"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRenewalFailed)

	assert.EqualValues(t, 1, f.refreshCalls.Load(), "only the direct refresh call reached the server")
	assert.EqualValues(t, 0, hook.calls.Load())
	assert.True(t, c.Session().Authenticated())
}

func TestSend_RetriedRequestSurfacesSecond401(t *testing.T) {
	f := newFakeAPI(t)
	c, _, _ := newTestClient(f, &session.Credential{AccessToken: "T1", RefreshToken: "R1"})

	_, err := c.Send(context.Background(), http.MethodGet, "/always-401", nil)
	require.Error(t, err)
	var apiErr APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.NotErrorIs(t, err, ErrRenewalFailed)

	assert.EqualValues(t, 1, f.refreshCalls.Load())
	assert.EqualValues(t, 2, f.protectedCalls.Load())
	assert.Equal(t, "T2", c.Session().AccessToken())
}

func TestSend_TerminalModeIgnoresRefreshToken(t *testing.T) {
	f := newFakeAPI(t)
	f.valid = "T0"
	c, _, hook := newTestClient(f, &session.Credential{AccessToken: "T1", RefreshToken: "R1"},
		WithAuthMode(AuthModeTerminal))

	_, err := c.ListItems(context.Background())
	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.EqualValues(t, 0, f.refreshCalls.Load())
	assert.EqualValues(t, 1, hook.calls.Load())
	assert.False(t, c.Session().Authenticated())
}

func TestSend_ReplayResendsBody(t *testing.T) {
	f := newFakeAPI(t)
	f.valid = "T0"
	c, _, _ := newTestClient(f, &session.Credential{AccessToken: "T1", RefreshToken: "R1"})

	tag, err := c.CreateTag(context.Background(), "Umbrella")
	require.NoError(t, err)
	assert.Equal(t, "Umbrella", tag.Name)
	assert.JSONEq(t, `{"name":"Umbrella"}`, f.lastBody.Load().(string))
}

func TestSend_ErrorTaxonomy(t *testing.T) {
	f := newFakeAPI(t)
	c, _, _ := newTestClient(f, &session.Credential{AccessToken: "T1"})
	ctx := context.Background()

	_, err := c.GetItem(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "/api/items/42", f.lastPath.Load())

	_, err = c.RegisterItem(ctx, core.ItemRegistration{PhotoURL: "p.jpg", Location: "x", Tags: []int{1}})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "body.location: field required")

	_, err = c.PickupLogs(ctx)
	assert.ErrorIs(t, err, ErrServer)
	assert.Contains(t, err.Error(), "database unavailable")

	assert.EqualValues(t, 0, f.refreshCalls.Load())
	assert.True(t, c.Session().Authenticated(), "non-auth failures keep the session")
}

func TestSend_NetworkError(t *testing.T) {
	f := newFakeAPI(t)
	c, _, _ := newTestClient(f, &session.Credential{AccessToken: "T1"})
	f.server.Close()

	_, err := c.ListItems(context.Background())
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestLocalValidation(t *testing.T) {
	f := newFakeAPI(t)
	c, _, _ := newTestClient(f, &session.Credential{AccessToken: "T1"})
	ctx := context.Background()

	_, err := c.RegisterItem(ctx, core.ItemRegistration{PhotoURL: "p.jpg", Location: "Library"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = c.CreateTag(ctx, "  ")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = c.OpenLocker(ctx, "L1", "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = c.CreateUser(ctx, core.UserCreate{Email: "a@x.com", Password: "p", Name: "A", Role: "ROOT"})
	assert.ErrorIs(t, err, ErrValidation)

	assert.EqualValues(t, 0, f.protectedCalls.Load())
}

func TestLogout_ClearsSessionEvenOnRemoteFailure(t *testing.T) {
	f := newFakeAPI(t)
	f.logoutFail = true
	c, store, _ := newTestClient(f, &session.Credential{AccessToken: "T1", RefreshToken: "R1"})

	err := c.Logout(context.Background())
	assert.ErrorIs(t, err, ErrServer)
	assert.False(t, c.Session().Authenticated())
	_, loadErr := store.Load(context.Background())
	assert.ErrorIs(t, loadErr, session.ErrNoCredential)
}

func TestRefresh_Explicit(t *testing.T) {
	f := newFakeAPI(t)
	c, _, _ := newTestClient(f, &session.Credential{AccessToken: "T1", RefreshToken: "R1"})

	require.NoError(t, c.Refresh(context.Background()))
	assert.Equal(t, "T2", c.Session().AccessToken())
	assert.Equal(t, "R1", c.Session().RefreshToken())

	c2, _, _ := newTestClient(f, &session.Credential{AccessToken: "T1"})
	assert.ErrorIs(t, c2.Refresh(context.Background()), ErrAuthRequired)
}

func TestIsAuthPath(t *testing.T) {
	c := New("http://localhost/api", WithLoginPath("/admin/login"))
	tests := map[string]bool{
		"/users/login":        true,
		"/users/login/":       true,
		"/admin/login":        true,
		"/users/refresh":      true,
		"/users/refresh?x=1":  true,
		"/users/logout":       false,
		"/items/":             false,
		"/admin/login-events": false,
	}
	for path, want := range tests {
		assert.Equal(t, want, c.isAuthPath(path), path)
	}
}

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		status int
		target error
	}{
		{http.StatusUnauthorized, ErrAuthRequired},
		{http.StatusBadRequest, ErrValidation},
		{http.StatusUnprocessableEntity, ErrValidation},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusBadGateway, ErrServer},
	}
	for _, tt := range tests {
		err := error(APIError{StatusCode: tt.status})
		assert.True(t, errors.Is(err, tt.target), "status %d", tt.status)
	}
	assert.False(t, errors.Is(APIError{StatusCode: http.StatusForbidden}, ErrAuthRequired))
}

func TestURLBuilder(t *testing.T) {
	got := route("/admin/users/{id}/password:reset").
		setPathParam("id", "a b").
		addQueryParam("page", 0).
		addQueryParam("role", "ADMIN").
		addQueryParam("query", "").
		build()
	assert.Equal(t, "/admin/users/a%20b/password:reset?role=ADMIN", got)
	assert.True(t, strings.HasPrefix(route("/items/{id}").setPathParam("id", 5).build(), "/items/5"))
}

func TestSend_CancelledWaiterLeavesQueueDrained(t *testing.T) {
	f := newFakeAPI(t)
	f.valid = "T0"
	f.refreshGate = make(chan struct{})
	c, _, _ := newTestClient(f, &session.Credential{AccessToken: "T1", RefreshToken: "R1"})

	leaderErr := make(chan error, 1)
	go func() {
		_, err := c.ListItems(context.Background())
		leaderErr <- err
	}()
	require.Eventually(t, c.renewal.active, 5*time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	waiterErr := make(chan error, 1)
	go func() {
		_, err := c.ListItems(ctx)
		waiterErr <- err
	}()
	require.Eventually(t, func() bool {
		return c.renewal.pending() == 1
	}, 5*time.Second, 5*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-waiterErr, context.Canceled)

	close(f.refreshGate)
	assert.NoError(t, <-leaderErr)
	assert.Equal(t, 0, c.renewal.pending())
	assert.False(t, c.renewal.active())
	assert.EqualValues(t, 1, f.refreshCalls.Load())
}

func TestSend_StaleTokenReplaysWithoutSecondRenewal(t *testing.T) {
	f := newFakeAPI(t)
	f.valid = "T0"
	f.slowEntered = make(chan struct{}, 2)
	f.slowGate = make(chan struct{})
	c, _, hook := newTestClient(f, &session.Credential{AccessToken: "T1", RefreshToken: "R1"})

	slowErr := make(chan error, 1)
	go func() {
		_, err := c.Send(context.Background(), http.MethodGet, "/slow", nil)
		slowErr <- err
	}()
	<-f.slowEntered // sent with T1, answer held back

	_, err := c.ListItems(context.Background())
	require.NoError(t, err)
	require.Equal(t, "T2", c.Session().AccessToken())

	close(f.slowGate)
	require.NoError(t, <-slowErr)
	assert.EqualValues(t, 1, f.refreshCalls.Load())
	assert.Equal(t, "Bearer T2", f.lastAuth.Load())
	assert.Equal(t, "/api/slow", f.lastPath.Load())
	assert.EqualValues(t, 0, hook.calls.Load())
}

func TestSend_LateRequestAfterFailedRenewalDoesNotRenewAgain(t *testing.T) {
	f := newFakeAPI(t)
	f.valid = "T0"
	f.refreshFail = true
	f.slowEntered = make(chan struct{}, 1)
	f.slowGate = make(chan struct{})
	c, _, hook := newTestClient(f, &session.Credential{AccessToken: "T1", RefreshToken: "R1"})

	slowErr := make(chan error, 1)
	go func() {
		_, err := c.Send(context.Background(), http.MethodGet, "/slow", nil)
		slowErr <- err
	}()
	<-f.slowEntered

	_, err := c.ListItems(context.Background())
	require.ErrorIs(t, err, ErrRenewalFailed)
	require.False(t, c.Session().Authenticated())

	close(f.slowGate)
	err = <-slowErr
	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.True(t, SessionEnded(err))
	assert.EqualValues(t, 1, f.refreshCalls.Load(), "the rejected refresh token is not retried")
	assert.EqualValues(t, 1, hook.calls.Load(), "the dropped session is reported once")
}

func TestSend_UseCredentialsForwardsCookies(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		want    string
	}{
		{name: "Enabled", enabled: true, want: "abc"},
		{name: "Disabled", enabled: false, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeAPI(t)
			c, _, _ := newTestClient(f, nil, WithUseCredentials(tt.enabled))
			ctx := context.Background()

			_, err := c.Send(ctx, http.MethodPost, "/session-cookie", nil)
			require.NoError(t, err)

			got, err := sendJSON[map[string]string](ctx, c, http.MethodGet, "/echo-cookie", nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got["sid"])
		})
	}
}

func TestLogout_ExpiredTokenSkipsRecovery(t *testing.T) {
	f := newFakeAPI(t)
	f.valid = "T0"
	c, store, hook := newTestClient(f, &session.Credential{AccessToken: "T1", RefreshToken: "R1"})

	err := c.Logout(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.False(t, SessionEnded(err))

	assert.EqualValues(t, 0, f.refreshCalls.Load())
	assert.EqualValues(t, 0, hook.calls.Load())
	assert.False(t, c.Session().Authenticated())
	_, loadErr := store.Load(context.Background())
	assert.ErrorIs(t, loadErr, session.ErrNoCredential)
}

func TestSessionEnded(t *testing.T) {
	f := newFakeAPI(t)
	ctx := context.Background()

	c, _, _ := newTestClient(f, nil)
	_, err := c.Login(ctx, "a@x.com", "wrong")
	require.ErrorIs(t, err, ErrAuthRequired)
	assert.False(t, SessionEnded(err), "rejected login credentials")

	c, _, _ = newTestClient(f, &session.Credential{AccessToken: "expired"})
	_, err = c.ListItems(ctx)
	assert.True(t, SessionEnded(err), "no refresh token")

	assert.True(t, SessionEnded(fmt.Errorf("%w: %w", ErrRenewalFailed, APIError{StatusCode: http.StatusUnauthorized})))
	assert.False(t, SessionEnded(APIError{StatusCode: http.StatusUnauthorized}))
	assert.False(t, SessionEnded(nil))
}
