package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Page is a downloaded page reduced to what the analyzer needs.
type Page struct {
	URL             string `json:"url"`
	Title           string `json:"title"`
	MetaDescription string `json:"metaDescription"`
	Content         string `json:"-"`
	StatusCode      int    `json:"-"`
}

// Options configures a Fetcher.
type Options struct {
	Timeout     time.Duration
	UserAgent   string
	MaxBodySize int64
	MaxRetries  int
}

// DefaultOptions returns the default fetcher options.
func DefaultOptions() Options {
	return Options{
		Timeout:     15 * time.Second,
		UserAgent:   "contentscore/1.0",
		MaxBodySize: 5 << 20, // 5 MB
		MaxRetries:  2,
	}
}

// Fetcher downloads pages for URL analysis. Transient upstream failures
// (429, most 5xx) are retried with exponential backoff.
type Fetcher struct {
	client          *http.Client
	userAgent       string
	maxBodySize     int64
	maxRetries      int
	initialInterval time.Duration
}

// New creates a Fetcher with the given options. Zero values fall back
// to DefaultOptions.
func New(opts Options) *Fetcher {
	defaults := DefaultOptions()
	if opts.Timeout <= 0 {
		opts.Timeout = defaults.Timeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaults.UserAgent
	}
	if opts.MaxBodySize <= 0 {
		opts.MaxBodySize = defaults.MaxBodySize
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = defaults.MaxRetries
	}

	return &Fetcher{
		client:          &http.Client{Timeout: opts.Timeout},
		userAgent:       opts.UserAgent,
		maxBodySize:     opts.MaxBodySize,
		maxRetries:      opts.MaxRetries,
		initialInterval: 500 * time.Millisecond,
	}
}

// Fetch downloads rawURL and extracts the page title, meta description
// and main article content.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}
	if parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}

	var page *Page
	operation := func() error {
		var err error
		page, err = f.fetchOnce(ctx, parsed.String())
		if err == nil {
			return nil
		}

		var fetchErr *FetchError
		if errors.As(err, &fetchErr) && retryableStatus(fetchErr.StatusCode) {
			return err
		}
		return backoff.Permanent(err)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = f.initialInterval
	b.MaxInterval = 10 * time.Second

	if err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(b, uint64(f.maxRetries)), ctx)); err != nil {
		return nil, err
	}

	return page, nil
}

// fetchOnce performs a single download attempt
func (f *Fetcher) fetchOnce(ctx context.Context, pageURL string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: fmt.Errorf("%w: %v", ErrUnreachable, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, &FetchError{
			URL:        pageURL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("HTTP %d", resp.StatusCode),
		}
	}

	contentType := resp.Header.Get("Content-Type")
	if !isTextual(contentType) {
		return nil, &FetchError{URL: pageURL, Err: fmt.Errorf("%w: %s", ErrNotHTML, contentType)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: fmt.Errorf("failed to read body: %w", err)}
	}
	if int64(len(body)) > f.maxBodySize {
		return nil, &FetchError{URL: pageURL, Err: ErrTooLarge}
	}

	utf8Body, err := convertToUTF8(body, contentType)
	if err != nil {
		// Scoring garbled text beats failing the whole analysis
		utf8Body = body
	}

	// Redirects may have moved us to a different URL
	finalURL := pageURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	title, metaDescription := extractMetadata(utf8Body)
	return &Page{
		URL:             finalURL,
		Title:           title,
		MetaDescription: metaDescription,
		Content:         extractMainContent(utf8Body, finalURL),
		StatusCode:      resp.StatusCode,
	}, nil
}

// isTextual reports whether a Content-Type header denotes a page we can score
func isTextual(contentType string) bool {
	if contentType == "" {
		return true
	}
	contentType = strings.ToLower(contentType)
	return strings.Contains(contentType, "html") ||
		strings.Contains(contentType, "xml") ||
		strings.HasPrefix(contentType, "text/")
}
