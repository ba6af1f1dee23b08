package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/semlex/config"
	"github.com/c360studio/semlex/graph"
	"github.com/c360studio/semlex/source/weburl"
)

const maxRedirects = 5

// Fetcher retrieves RDF documents over HTTP and parses them into graphs.
// A Fetcher is safe for concurrent use.
type Fetcher struct {
	client       *http.Client
	registry     *graph.Registry
	logger       *slog.Logger
	observer     Observer
	userAgent    string
	maxBodyBytes int64
	guard        bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithClient sets the HTTP client. Its Timeout is kept when the private
// network guard replaces the transport.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// WithRegistry sets the parser registry used to decode response bodies.
// Without it, each fetch uses the built-in parsers with remote JSON-LD
// contexts loaded through the Fetcher's client and the fetch context. A
// custom registry resolves contexts however its parsers were built.
func WithRegistry(r *graph.Registry) Option {
	return func(f *Fetcher) {
		if r != nil {
			f.registry = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(f *Fetcher) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithObserver sets the telemetry observer.
func WithObserver(o Observer) Option {
	return func(f *Fetcher) {
		if o != nil {
			f.observer = o
		}
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

// WithMaxBodyBytes caps the response body size. Zero means unlimited.
func WithMaxBodyBytes(n int64) Option {
	return func(f *Fetcher) { f.maxBodyBytes = n }
}

// WithPrivateNetworkGuard refuses URLs, redirects and resolved addresses on
// loopback, private or link-local networks.
func WithPrivateNetworkGuard() Option {
	return func(f *Fetcher) { f.guard = true }
}

// New creates a Fetcher.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:   http.DefaultClient,
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.guard {
		f.client = guardedClient(f.client.Timeout)
	}
	return f
}

// NewFromConfig creates a Fetcher from the fetch section of the configuration.
func NewFromConfig(cfg config.FetchConfig, logger *slog.Logger, observer Observer) *Fetcher {
	opts := []Option{
		WithLogger(logger),
		WithObserver(observer),
		WithUserAgent(cfg.UserAgent),
		WithMaxBodyBytes(cfg.MaxBodyBytes),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, WithClient(&http.Client{Timeout: cfg.Timeout}))
	}
	if cfg.PrivateNetworksBlocked() {
		opts = append(opts, WithPrivateNetworkGuard())
	}
	return New(opts...)
}

func guardedClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           weburl.SafeDialContext(dialer),
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: timeout,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
	}
	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("too many redirects (max %d)", maxRedirects)
			}
			if err := weburl.ValidateURL(req.URL.String()); err != nil {
				return fmt.Errorf("redirect blocked: %w", err)
			}
			return nil
		},
	}
}

// FetchGraph requests url, negotiating for the accepted MIME types in order.
//
// It returns (nil, nil) when the response status is not 200 or when the
// response media type is not one of accepted. A 200 response in an accepted
// type that cannot be parsed yields a *ParseError. Transport failures are
// returned wrapped.
func (f *Fetcher) FetchGraph(ctx context.Context, url string, accepted []string) (*graph.Graph, error) {
	start := time.Now()
	logger := f.log().With(
		slog.String("request_id", uuid.New().String()),
		slog.String("url", url),
	)
	record := func(outcome Outcome, size int64) {
		f.observer.RecordFetch(outcome, time.Since(start), size)
	}

	if f.guard {
		if err := weburl.ValidateURL(url); err != nil {
			record(OutcomeTransportError, 0)
			return nil, fmt.Errorf("fetch %s: %w", url, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		record(OutcomeTransportError, 0)
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", strings.Join(accepted, ", "))
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		record(OutcomeTransportError, 0)
		logger.Debug("RDF fetch failed", slog.Any("error", err))
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		record(OutcomeStatus, 0)
		logger.Debug("No RDF graph: unexpected status", slog.Int("status", resp.StatusCode))
		return nil, nil
	}

	contentType := resp.Header.Get("Content-Type")
	mimeType := MimeType(contentType)
	if !slices.Contains(accepted, mimeType) {
		record(OutcomeContentType, 0)
		logger.Debug("No RDF graph: content type not accepted", slog.String("content_type", contentType))
		return nil, nil
	}

	body, err := f.readBody(resp.Body)
	if err != nil {
		if errors.Is(err, ErrBodyTooLarge) {
			record(OutcomeBodyTooLarge, 0)
			return nil, fmt.Errorf("fetch %s: %w (limit %d bytes)", url, err, f.maxBodyBytes)
		}
		record(OutcomeTransportError, 0)
		return nil, fmt.Errorf("read body: %w", err)
	}

	base := url
	if resp.Request != nil && resp.Request.URL != nil {
		base = resp.Request.URL.String()
	}

	g, err := f.registryFor(ctx).Parse(mimeType, bytes.NewReader(body), base)
	if err != nil {
		record(OutcomeParseError, int64(len(body)))
		logger.Debug("RDF parse failed", slog.String("mime_type", mimeType), slog.Any("error", err))
		return nil, &ParseError{URL: url, MimeType: mimeType, Err: err}
	}

	record(OutcomeOK, int64(len(body)))
	logger.Debug("Fetched RDF graph",
		slog.String("mime_type", mimeType),
		slog.Int("triples", g.Len()),
		slog.Duration("elapsed", time.Since(start)))
	return g, nil
}

func (f *Fetcher) registryFor(ctx context.Context) *graph.Registry {
	if f.registry != nil {
		return f.registry
	}
	return graph.NewRegistryWithLoader(&contextLoader{ctx: ctx, f: f})
}

func (f *Fetcher) log() *slog.Logger {
	if f.logger != nil {
		return f.logger
	}
	return slog.Default()
}

func (f *Fetcher) readBody(r io.Reader) ([]byte, error) {
	if f.maxBodyBytes <= 0 {
		return io.ReadAll(r)
	}
	body, err := io.ReadAll(io.LimitReader(r, f.maxBodyBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > f.maxBodyBytes {
		return nil, ErrBodyTooLarge
	}
	return body, nil
}

// MimeType returns the media type of a Content-Type header value: the part
// before the first ';' with surrounding whitespace removed.
func MimeType(contentType string) string {
	mimeType, _, _ := strings.Cut(contentType, ";")
	return strings.TrimSpace(mimeType)
}

var defaultFetcher = New()

// FetchRDFGraph fetches url with a default Fetcher. See Fetcher.FetchGraph.
func FetchRDFGraph(ctx context.Context, url string, accepted []string) (*graph.Graph, error) {
	return defaultFetcher.FetchGraph(ctx, url, accepted)
}
