// package services defines interface Prober for inspecting participant websites over HTTP
package services

import (
	"context"
	"time"
)

// Prober fetches a participant website and reports what it found.
type Prober interface {
	// Probe requests url and returns its status and page metadata.
	// Transport failures are returned as errors; non-2xx responses are not.
	Probe(ctx context.Context, url string) (*PageInfo, error)

	// Name returns the name of the prober
	Name() string
}

// PageInfo is the result of probing one URL.
type PageInfo struct {
	URL         string        `json:"url"`
	FinalURL    string        `json:"final_url,omitempty"`
	StatusCode  int           `json:"status_code"`
	ContentType string        `json:"content_type,omitempty"`
	Title       string        `json:"title,omitempty"`
	Description string        `json:"description,omitempty"`
	Duration    time.Duration `json:"duration"`
}

// OK reports whether the site answered with a 2xx status.
func (p *PageInfo) OK() bool {
	return p != nil && p.StatusCode >= 200 && p.StatusCode < 300
}
