package client

import (
	"net/http"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog"
)

// loggingTransport tags every outgoing request with a correlation ID and
// logs the round trip.
type loggingTransport struct {
	next   http.RoundTripper
	logger *zerolog.Logger
}

func newLoggingTransport(next http.RoundTripper, logger *zerolog.Logger) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loggingTransport{next: next, logger: logger}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	id := req.Header.Get(CorrelationIDHeader)
	if id == "" {
		id = xid.New().String()
		// RoundTrip must not modify the caller's request
		req = req.Clone(req.Context())
		req.Header.Set(CorrelationIDHeader, id)
	}

	l := t.logger.With().
		Str("correlation_id", id).
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Logger()

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		l.Debug().Err(err).Dur("duration", time.Since(start)).Msg("request.failed")
		return nil, err
	}

	l.Debug().
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request.handled")
	return resp, nil
}
