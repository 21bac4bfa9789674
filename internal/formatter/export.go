package formatter

import (
	"fmt"
	"os"
	"strings"

	"github.com/desertthunder/showcase/internal/models"
	"github.com/desertthunder/showcase/internal/shared"
)

// Format is an export output format.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// ParseFormat resolves a user-supplied format name, accepting "md" and "txt" as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt", "":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, s)
	}
}

// Extension returns the conventional file extension for f.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatJSON:
		return ".json"
	default:
		return ".txt"
	}
}

// Render produces the listing of websites in format f.
func Render(f Format, title string, websites []models.Website) ([]byte, error) {
	switch f {
	case FormatText:
		return ExportToText(Sections(websites))
	case FormatMarkdown:
		return ExportToMarkdown(title, Sections(websites))
	case FormatJSON:
		return ExportToJSON(websites, true)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, f)
	}
}

// WriteExport renders websites in format f and writes them to path.
//
// Defaults to "showcase" plus the format's extension when path is empty.
func WriteExport(f Format, title string, websites []models.Website, path string) (string, error) {
	if path == "" {
		path = "showcase" + f.Extension()
	}

	data, err := Render(f, title, websites)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}
