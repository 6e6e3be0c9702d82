package recognition

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
)

// transportError wraps a network-level failure (connection loss, timeout,
// DNS). Always retryable.
type transportError struct {
	err error
}

func (e *transportError) Error() string { return fmt.Sprintf("transport error: %v", e.err) }
func (e *transportError) Unwrap() error { return e.err }

// statusError wraps a non-2xx response. Retryable only for 5xx and 429.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("recognition oracle returned status %d: %s", e.code, e.body)
}

// isRetryable classifies an error as transient. Timeouts, connection loss,
// DNS failures, 5xx and 429 are retryable; malformed payloads and other
// 4xx responses fail immediately.
func isRetryable(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.code >= 500 || se.code == http.StatusTooManyRequests
	}

	var te *transportError
	if errors.As(err, &te) {
		return isTransientNetErr(te.err)
	}
	return false
}

func isTransientNetErr(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		// http.Client wraps everything in *url.Error; treat the bare
		// wrapper as transient connection trouble
		return true
	}
	return false
}
