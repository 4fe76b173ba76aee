package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrAuthRequired means there is no usable session, the user has to log in.
	ErrAuthRequired = errors.New("authentication required")
	// ErrRenewalFailed means the server rejected the refresh token.
	ErrRenewalFailed = errors.New("session renewal failed")
	// ErrValidation means the submitted data was rejected, locally or by the server.
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrServer     = errors.New("server error")
	// ErrNetwork wraps transport failures where no response was received.
	ErrNetwork = errors.New("network error")
)

// APIError is a non-2xx answer of the API.
type APIError struct {
	StatusCode    int
	Message       string
	CorrelationID string
}

func (e APIError) Error() string {
	if e.CorrelationID == "" {
		return fmt.Sprintf("api error %d: '%s'", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d: '%s' (correlation: %s)", e.StatusCode, e.Message, e.CorrelationID)
}

// Is maps the status code onto the error taxonomy so callers can use errors.Is.
func (e APIError) Is(target error) bool {
	switch target {
	case ErrAuthRequired:
		return e.StatusCode == http.StatusUnauthorized
	case ErrValidation:
		return e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnprocessableEntity
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrServer:
		return e.StatusCode >= 500
	}
	return false
}

// SessionEnded reports whether the client dropped the session: the renewal
// failed or no refresh token was left. A plain 401, such as a login with a
// wrong password, does not count.
func SessionEnded(err error) bool {
	return errors.Is(err, ErrRenewalFailed) || wrapsSentinel(err, ErrAuthRequired)
}

// wrapsSentinel is errors.Is without the APIError status mapping.
func wrapsSentinel(err, target error) bool {
	if err == nil {
		return false
	}
	if err == target {
		return true
	}
	switch e := err.(type) {
	case interface{ Unwrap() error }:
		return wrapsSentinel(e.Unwrap(), target)
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			if wrapsSentinel(inner, target) {
				return true
			}
		}
	}
	return false
}

func isUnauthorized(err error) bool {
	var apiErr APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// errorResponse covers the error bodies the API produces: FastAPI style
// {"detail": ...} as well as {"error": ...} and {"message": ...}.
type errorResponse struct {
	Detail        json.RawMessage `json:"detail"`
	Error         string          `json:"error"`
	Message       string          `json:"message"`
	CorrelationID string          `json:"correlation_id"`
}

type validationDetail struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

func (r errorResponse) message() string {
	if len(r.Detail) > 0 {
		var s string
		if json.Unmarshal(r.Detail, &s) == nil {
			return s
		}
		var details []validationDetail
		if json.Unmarshal(r.Detail, &details) == nil && len(details) > 0 {
			parts := make([]string, 0, len(details))
			for _, d := range details {
				loc := make([]string, 0, len(d.Loc))
				for _, l := range d.Loc {
					loc = append(loc, fmt.Sprint(l))
				}
				parts = append(parts, strings.Join(loc, ".")+": "+d.Msg)
			}
			return strings.Join(parts, "; ")
		}
		return string(r.Detail)
	}
	if r.Error != "" {
		return r.Error
	}
	return r.Message
}

func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := APIError{
		StatusCode:    resp.StatusCode,
		CorrelationID: correlationFromResponse(resp),
	}
	var errResp errorResponse
	if json.Unmarshal(body, &errResp) == nil {
		apiErr.Message = errResp.message()
		if apiErr.CorrelationID == "" {
			apiErr.CorrelationID = errResp.CorrelationID
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

func correlationFromResponse(resp *http.Response) string {
	if resp == nil {
		return ""
	}
	return resp.Header.Get(CorrelationIDHeader)
}
