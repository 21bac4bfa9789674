// package models defines the data model for the participant showcase
package models

import (
	"fmt"
	"net/url"
	"strings"
)

// Website is one participant entry in the showcase.
type Website struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Author      string `json:"author"`
	PreviewURL  string `json:"preview_url,omitempty"`
}

// Draft holds the fields of a [Website] that the admin form collects.
type Draft struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Author      string `json:"author"`
	PreviewURL  string `json:"preview_url,omitempty"`
}

// SeedDocument is the shape of the bundled seed file.
type SeedDocument struct {
	Websites []Website `json:"websites"`
}

// Normalize returns a copy of d with surrounding whitespace trimmed from every field.
func (d Draft) Normalize() Draft {
	return Draft{
		Name:        strings.TrimSpace(d.Name),
		URL:         strings.TrimSpace(d.URL),
		Description: strings.TrimSpace(d.Description),
		Author:      strings.TrimSpace(d.Author),
		PreviewURL:  strings.TrimSpace(d.PreviewURL),
	}
}

// Validate checks that the draft names a site and points at an absolute http(s) URL.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(d.URL) == "" {
		return fmt.Errorf("url is required")
	}
	if err := validateURL(d.URL); err != nil {
		return fmt.Errorf("url: %w", err)
	}
	if d.PreviewURL != "" {
		if err := validateURL(d.PreviewURL); err != nil {
			return fmt.Errorf("preview url: %w", err)
		}
	}
	return nil
}

// WithID builds the [Website] for this draft under the given identifier.
func (d Draft) WithID(id int) Website {
	return Website{
		ID:          id,
		Name:        d.Name,
		URL:         d.URL,
		Description: d.Description,
		Author:      d.Author,
		PreviewURL:  d.PreviewURL,
	}
}

// Host returns the host portion of the website URL, or the raw URL when it cannot be parsed.
func (w Website) Host() string {
	u, err := url.Parse(w.URL)
	if err != nil || u.Host == "" {
		return w.URL
	}
	return u.Host
}

func validateURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid URL %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid URL %q: missing host", raw)
	}
	return nil
}
