// Package seed bundles the default website list used when nothing has been persisted yet.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/desertthunder/showcase/internal/models"
)

//go:embed websites.json
var websitesJSON []byte

// Document parses the bundled seed file.
func Document() (models.SeedDocument, error) {
	var doc models.SeedDocument
	if err := json.Unmarshal(websitesJSON, &doc); err != nil {
		return models.SeedDocument{}, fmt.Errorf("failed to parse seed data: %w", err)
	}
	return doc, nil
}

// Load returns a fresh copy of the seed websites.
func Load() ([]models.Website, error) {
	doc, err := Document()
	if err != nil {
		return nil, err
	}
	if doc.Websites == nil {
		return []models.Website{}, nil
	}
	return doc.Websites, nil
}
