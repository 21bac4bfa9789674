// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"slices"
	"sync"
	"testing"

	"github.com/desertthunder/showcase/internal/models"
	"github.com/desertthunder/showcase/internal/services"
)

// MemoryStore is an in-memory test double for [showcase.Store].
//
// LoadErr and SaveErr, when set, are returned by the matching call.
type MemoryStore struct {
	mu       sync.Mutex
	websites []models.Website
	present  bool
	Loads    int
	Saves    int
	LoadErr  error
	SaveErr  error
}

// NewMemoryStore creates a store holding websites. A nil slice starts the store empty (nothing persisted).
func NewMemoryStore(websites []models.Website) *MemoryStore {
	return &MemoryStore{websites: slices.Clone(websites), present: websites != nil}
}

func (m *MemoryStore) Load() ([]models.Website, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Loads++
	if m.LoadErr != nil {
		return nil, false, m.LoadErr
	}
	if !m.present {
		return nil, false, nil
	}
	return slices.Clone(m.websites), true, nil
}

func (m *MemoryStore) Save(websites []models.Website) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.websites = slices.Clone(websites)
	m.present = true
	return nil
}

// Persisted returns what was last saved and whether anything has been.
func (m *MemoryStore) Persisted() ([]models.Website, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.websites), m.present
}

// StaticSeed returns a seeder that yields a copy of websites.
func StaticSeed(websites []models.Website) func() ([]models.Website, error) {
	return func() ([]models.Website, error) {
		return slices.Clone(websites), nil
	}
}

// FailingSeed returns a seeder that always fails.
func FailingSeed() func() ([]models.Website, error) {
	return func() ([]models.Website, error) {
		return nil, errors.New("seed unavailable")
	}
}

// Websites builds n websites with ids 1..n.
func Websites(n int) []models.Website {
	out := make([]models.Website, n)
	for i := range out {
		id := i + 1
		out[i] = models.Website{
			ID:     id,
			Name:   "Site " + string(rune('A'+i%26)),
			URL:    "https://site" + string(rune('a'+i%26)) + ".example.com",
			Author: "Author",
		}
	}
	return out
}

// MockProber is a [services.Prober] that answers from fixed tables.
//
// URLs missing from both Pages and Errs answer 200 with no metadata.
type MockProber struct {
	mu    sync.Mutex
	Pages map[string]*services.PageInfo
	Errs  map[string]error
	Calls []string
}

func (m *MockProber) Name() string { return "mock" }

func (m *MockProber) Probe(ctx context.Context, url string) (*services.PageInfo, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, url)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := m.Errs[url]; ok {
		return nil, err
	}
	if page, ok := m.Pages[url]; ok {
		return page, nil
	}
	return &services.PageInfo{URL: url, StatusCode: http.StatusOK}, nil
}

// CallCount returns how many probes were made.
func (m *MockProber) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
