// Package omnipath implements the remote knowledge-base client that
// the network builders fetch their raw tables from. Live queries go to
// the web service; version-pinned static snapshots serve as the
// fallback when a live query fails transiently.
package omnipath

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/regnetkit/regnet/core/organism"
)

const (
	defaultBaseURL       = "https://omnipathdb.org"
	defaultStaticBaseURL = "https://static.omnipathdb.org"
	defaultTimeout       = 120 * time.Second
)

// SnapshotCache is an optional read-through cache for raw downloaded
// payloads, keyed by (query kind, resource, organism).
type SnapshotCache interface {
	Get(kind QueryKind, resource string, org organism.ID) ([]byte, bool)
	Put(kind QueryKind, resource string, org organism.ID, payload []byte) error
}

// Config configures a Client. Every behavior toggle lives here; the
// client never consults process-global state.
type Config struct {
	// BaseURL is the live web service, default https://omnipathdb.org.
	BaseURL string
	// StaticBaseURL is the pinned snapshot server, default
	// https://static.omnipathdb.org.
	StaticBaseURL string
	// Timeout bounds a single request, default 120s. Ignored when
	// HTTPClient is set.
	Timeout time.Duration
	// HTTPClient overrides the default client.
	HTTPClient *http.Client
	// Cache is consulted before any download and written back after a
	// successful one. Nil disables caching.
	Cache SnapshotCache
	// Log receives request and cache diagnostics.
	Log *slog.Logger
}

// Client queries the knowledge base.
type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

// NewClient creates a client, applying defaults for unset config fields.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.StaticBaseURL == "" {
		cfg.StaticBaseURL = defaultStaticBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	logger := cfg.Log
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	return &Client{cfg: cfg, http: httpClient, log: logger}
}

// TransientError marks a fetch failure that may be recovered by the
// static-snapshot fallback: network errors and server-side failures.
// Client-side errors (4xx) are not transient.
type TransientError struct {
	URL string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient fetch failure for %s: %v", e.URL, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// fetch downloads one raw table, consulting the cache first and writing
// back on success. A cache write failure is logged, never fatal.
func (c *Client) fetch(ctx context.Context, base, path string, query url.Values, kind QueryKind, resource string, org organism.ID) ([]byte, error) {
	if c.cfg.Cache != nil {
		if payload, ok := c.cfg.Cache.Get(kind, resource, org); ok {
			c.log.Debug("Snapshot cache hit",
				slog.String("kind", kind.String()),
				slog.String("resource", resource),
				slog.Int("organism", int(org)))
			return payload, nil
		}
	}

	rawURL := base + path
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}

	requestID := uuid.NewString()
	c.log.Debug("Requesting raw table",
		slog.String("url", rawURL),
		slog.String("request_id", requestID))

	payload, err := c.fetchDirect(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	if c.cfg.Cache != nil {
		if err := c.cfg.Cache.Put(kind, resource, org, payload); err != nil {
			c.log.Warn("Snapshot cache write failed",
				slog.String("kind", kind.String()),
				slog.String("resource", resource),
				slog.String("error", err.Error()))
		}
	}

	return payload, nil
}

// fetchDirect downloads a URL without cache involvement.
func (c *Client) fetchDirect(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", rawURL, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransientError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return nil, &TransientError{URL: rawURL, Err: fmt.Errorf("server returned %s", resp.Status)}
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("request for %s failed with %s", rawURL, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
