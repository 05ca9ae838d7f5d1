package soda

import (
	"errors"
	"net/http"
	"net/url"

	perr "soda/internal/platform/errors"
)

// StatusError wraps non-2xx responses from the platform
type StatusError struct {
	Status    int
	Body      string
	RequestID string
	Err       error
}

// Error interface
func (e *StatusError) Error() string { return e.Err.Error() }

// Unwrap interface
func (e *StatusError) Unwrap() error { return e.Err }

// HTTPStatus is the upstream status code
func (e *StatusError) HTTPStatus() int { return e.Status }

func newStatusError(status int, body, reqID string, u *url.URL) *StatusError {
	return &StatusError{
		Status:    status,
		Body:      body,
		RequestID: reqID,
		Err:       perr.Newf(codeFor(status), "soda %s returned %d %s", u.Path, status, http.StatusText(status)),
	}
}

func codeFor(status int) perr.ErrorCode {
	switch {
	case status == http.StatusNotFound:
		return perr.ErrorCodeNotFound
	case status == http.StatusUnauthorized:
		return perr.ErrorCodeUnauthorized
	case status == http.StatusForbidden:
		return perr.ErrorCodeForbidden
	case status == http.StatusTooManyRequests:
		return perr.ErrorCodeTooManyRequests
	case status == http.StatusBadRequest:
		return perr.ErrorCodeInvalidQuery
	case status >= http.StatusInternalServerError:
		return perr.ErrorCodeUnavailable
	default:
		return perr.ErrorCodeUnknown
	}
}

// IsRateLimited reports whether err is a StatusError with a 429 status
func IsRateLimited(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == http.StatusTooManyRequests
}

// IsTransient reports whether err is a StatusError with a 5xx status
func IsTransient(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status == 500 || se.Status == 502 || se.Status == 503 || se.Status == 504
	}
	return false
}
