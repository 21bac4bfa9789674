package repositories

import (
	"encoding/json"
	"fmt"

	"github.com/desertthunder/showcase/internal/models"
	"github.com/desertthunder/showcase/internal/shared"
)

// DefaultWebsitesKey is the storage key the website list is saved under.
const DefaultWebsitesKey = "websites"

// WebsiteStore persists the whole website list as a JSON array under one key.
type WebsiteStore struct {
	kv  *KeyValueRepository
	key string
}

// NewWebsiteStore creates a WebsiteStore writing under key, or [DefaultWebsitesKey] when key is empty.
func NewWebsiteStore(kv *KeyValueRepository, key string) *WebsiteStore {
	if key == "" {
		key = DefaultWebsitesKey
	}
	return &WebsiteStore{kv: kv, key: key}
}

// Key returns the storage key this store reads and writes.
func (s *WebsiteStore) Key() string { return s.key }

// Load returns the persisted list. ok is false when nothing has been saved yet.
//
// A stored value that is not a JSON array of websites yields an error wrapping [shared.ErrMalformedStorage].
func (s *WebsiteStore) Load() (websites []models.Website, ok bool, err error) {
	raw, ok, err := s.kv.Get(s.key)
	if err != nil || !ok {
		return nil, ok, err
	}

	if err := json.Unmarshal([]byte(raw), &websites); err != nil {
		return nil, false, fmt.Errorf("%w: key %q: %v", shared.ErrMalformedStorage, s.key, err)
	}
	if websites == nil {
		websites = []models.Website{}
	}

	return websites, true, nil
}

// Save overwrites the persisted list with websites.
func (s *WebsiteStore) Save(websites []models.Website) error {
	if websites == nil {
		websites = []models.Website{}
	}

	data, err := json.Marshal(websites)
	if err != nil {
		return fmt.Errorf("failed to encode websites: %w", err)
	}

	return s.kv.Set(s.key, string(data))
}

// Clear removes the persisted list so the next load falls back to seed data.
func (s *WebsiteStore) Clear() error {
	return s.kv.Delete(s.key)
}
