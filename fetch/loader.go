package fetch

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/piprate/json-gold/ld"

	"github.com/c360studio/semlex/source/weburl"
)

const contextAccept = "application/ld+json, application/json;q=0.9"

// contextLoader resolves remote JSON-LD contexts with the Fetcher's client,
// bound to the context of the fetch that needs them. Only http and https
// URLs are loaded; under the private network guard they are validated the
// same way as the document URL.
type contextLoader struct {
	ctx context.Context
	f   *Fetcher
}

func (l *contextLoader) LoadDocument(u string) (*ld.RemoteDocument, error) {
	if err := l.check(u); err != nil {
		return nil, ld.NewJsonLdError(ld.LoadingDocumentFailed, err)
	}

	req, err := http.NewRequestWithContext(l.ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, ld.NewJsonLdError(ld.LoadingDocumentFailed, err)
	}
	req.Header.Set("Accept", contextAccept)
	if l.f.userAgent != "" {
		req.Header.Set("User-Agent", l.f.userAgent)
	}

	resp, err := l.f.client.Do(req)
	if err != nil {
		return nil, ld.NewJsonLdError(ld.LoadingDocumentFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ld.NewJsonLdError(ld.LoadingDocumentFailed,
			fmt.Errorf("context %s: unexpected status %d", u, resp.StatusCode))
	}

	body, err := l.f.readBody(resp.Body)
	if err != nil {
		return nil, ld.NewJsonLdError(ld.LoadingDocumentFailed, fmt.Errorf("context %s: %w", u, err))
	}
	doc, err := ld.DocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, ld.NewJsonLdError(ld.LoadingDocumentFailed, err)
	}

	docURL := u
	if resp.Request != nil && resp.Request.URL != nil {
		docURL = resp.Request.URL.String()
	}
	l.f.log().Debug("Loaded JSON-LD context", slog.String("context_url", u))
	return &ld.RemoteDocument{DocumentURL: docURL, Document: doc}, nil
}

func (l *contextLoader) check(u string) error {
	if l.f.guard {
		return weburl.ValidateURL(u)
	}
	parsed, err := url.Parse(u)
	if err != nil {
		return fmt.Errorf("invalid context URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("context %s: %w", u, weburl.ErrUnsupportedScheme)
	}
	return nil
}
