package services

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/desertthunder/showcase/internal/shared"
)

const (
	defaultUserAgent = "showcase-link-checker/0.1"
	maxProbeBytes    = 1 << 20
)

// HTTPProber implements [Prober] with an [http.Client].
type HTTPProber struct {
	httpClient *http.Client
	userAgent  string
}

var _ Prober = (*HTTPProber)(nil)

// NewHTTPProber creates a prober using client, or a client with timeout when client is nil.
func NewHTTPProber(client *http.Client, timeout time.Duration) *HTTPProber {
	if client == nil {
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	return &HTTPProber{httpClient: client, userAgent: defaultUserAgent}
}

// Name returns the prober name.
func (p *HTTPProber) Name() string { return "http" }

// Probe performs a GET request to url and extracts page metadata from HTML responses.
func (p *HTTPProber) Probe(ctx context.Context, url string) (*PageInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", shared.ErrInvalidInput, err)
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	start := time.Now()
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %v", shared.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	info := &PageInfo{
		URL:         url,
		FinalURL:    resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
	}

	if isHTML(info.ContentType) {
		title, description, err := extractMeta(io.LimitReader(resp.Body, maxProbeBytes))
		if err != nil {
			return nil, fmt.Errorf("failed to parse response: %w", err)
		}
		info.Title = title
		info.Description = description
	}
	info.Duration = time.Since(start)

	if info.FinalURL == url {
		info.FinalURL = ""
	}

	return info, nil
}

func isHTML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}

// extractMeta reads the document title and description, preferring standard tags over Open Graph ones.
func extractMeta(r io.Reader) (title, description string, err error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", "", err
	}

	title = strings.TrimSpace(doc.Find("head title").First().Text())
	if title == "" {
		title = metaContent(doc, `meta[property="og:title"]`)
	}

	description = metaContent(doc, `meta[name="description"]`)
	if description == "" {
		description = metaContent(doc, `meta[property="og:description"]`)
	}

	return title, description, nil
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}
