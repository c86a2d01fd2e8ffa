package fetcher

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrInvalidURL indicates the URL could not be parsed or uses an
	// unsupported scheme
	ErrInvalidURL = errors.New("invalid URL")

	// ErrUnreachable indicates the site could not be reached
	ErrUnreachable = errors.New("site unreachable")

	// ErrNotHTML indicates the response was not an HTML or text page
	ErrNotHTML = errors.New("not an HTML page")

	// ErrTooLarge indicates the response body exceeded the size limit
	ErrTooLarge = errors.New("page body exceeds size limit")
)

// FetchError describes a failed page download
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch error for %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch error for %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// retryableStatus reports whether a status code is worth retrying.
// 500 is deliberately excluded, it usually fails the same way again.
func retryableStatus(statusCode int) bool {
	switch statusCode {
	case 429: // Too Many Requests
		return true
	case 502: // Bad Gateway
		return true
	case 503: // Service Unavailable
		return true
	case 504: // Gateway Timeout
		return true
	}

	// Cloudflare errors (520-530)
	if statusCode >= 520 && statusCode <= 530 {
		return true
	}

	return false
}
