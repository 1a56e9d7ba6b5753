package shapes

import (
	"context"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/drawdeck/drawdeck/pkg/cache"
)

const (
	httpTimeout = 10 * time.Second
	catalogTTL  = 24 * time.Hour

	retryAttempts = 3
	retryDelay    = time.Second
)

// ErrNetwork is returned for HTTP failures (timeouts, connection errors,
// unexpected status codes).
var ErrNetwork = goerrors.New("network error")

// transientError marks failures worth retrying.
type transientError struct{ err error }

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// Fetcher downloads a remote shape index: a JSON array of Shape records.
// Responses are cached so repeated Initialize calls stay off the network.
type Fetcher struct {
	url   string
	http  *http.Client
	cache cache.Cache
}

// NewFetcher creates a fetcher for the given index URL. Pass a NullCache
// to disable caching.
func NewFetcher(url string, c cache.Cache) *Fetcher {
	return &Fetcher{
		url:   url,
		http:  &http.Client{Timeout: httpTimeout},
		cache: c,
	}
}

// Fetch returns the remote shape list, from cache when possible. Transient
// failures are retried with exponential backoff before giving up.
func (f *Fetcher) Fetch(ctx context.Context) ([]Shape, error) {
	key := cache.CatalogKey(f.url)
	if blob, ok, _ := f.cache.Get(ctx, key); ok {
		var shapes []Shape
		if err := json.Unmarshal(blob, &shapes); err == nil {
			return shapes, nil
		}
		// A corrupt cache entry falls through to a fresh fetch.
		_ = f.cache.Delete(ctx, key)
	}

	var body []byte
	err := withRetry(ctx, retryAttempts, retryDelay, func() error {
		var ferr error
		body, ferr = f.download(ctx)
		return ferr
	})
	if err != nil {
		return nil, err
	}

	var shapes []Shape
	if err := json.Unmarshal(body, &shapes); err != nil {
		return nil, fmt.Errorf("decode shape index: %w", err)
	}
	_ = f.cache.Set(ctx, key, body, catalogTTL)
	return shapes, nil
}

func (f *Fetcher) download(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.http.Do(req)
	if err != nil {
		return nil, &transientError{fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return io.ReadAll(resp.Body)
	case resp.StatusCode >= 500:
		return nil, &transientError{fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode)}
	default:
		return nil, fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode)
	}
}

// withRetry runs fn up to attempts times, doubling the delay after each
// failure. Only transient errors are retried.
func withRetry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	var lastErr error
	for i := range max(attempts, 1) {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !goerrors.As(err, new(*transientError)) {
			return err
		}
		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}
