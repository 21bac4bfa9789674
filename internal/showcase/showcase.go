package showcase

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/showcase/internal/models"
	"github.com/desertthunder/showcase/internal/shared"
)

// TopCount is the number of leading entries shown as top participants.
const TopCount = 3

// Mode is the view the application root is presenting.
type Mode int

const (
	ListingMode Mode = iota
	AdminMode
)

func (m Mode) String() string {
	switch m {
	case ListingMode:
		return "listing"
	case AdminMode:
		return "admin"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Store loads and saves the full website list.
type Store interface {
	Load() ([]models.Website, bool, error)
	Save([]models.Website) error
}

// Seeder supplies the default website list.
type Seeder func() ([]models.Website, error)

// Showcase owns the in-memory website list for a session.
type Showcase struct {
	mu       sync.Mutex
	store    Store
	seed     Seeder
	logger   *log.Logger
	websites []models.Website
	mode     Mode
	mounted  bool
}

// New creates an unmounted Showcase. A nil logger defaults to [shared.NewLogger].
func New(store Store, seed Seeder, logger *log.Logger) *Showcase {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Showcase{
		store:    store,
		seed:     seed,
		logger:   shared.WithLogger(logger, "component", "showcase"),
		websites: []models.Website{},
		mode:     ListingMode,
	}
}

// Mount populates the list exactly once: from the store when it holds a value, otherwise from the seeder, which is then persisted.
//
// Calls after the first successful mount are no-ops.
func (s *Showcase) Mount(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mounted {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	saved, ok, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load websites: %w", err)
	}

	if ok {
		s.websites = saved
		s.mounted = true
		s.logger.Debug("mounted from storage", "count", len(saved))
		return nil
	}

	if s.seed == nil {
		return fmt.Errorf("%w: no stored websites and no seed data", shared.ErrServiceUnavailable)
	}

	seeded, err := s.seed()
	if err != nil {
		return fmt.Errorf("failed to load seed data: %w", err)
	}

	if err := s.store.Save(seeded); err != nil {
		return fmt.Errorf("failed to persist seed data: %w", err)
	}

	s.websites = seeded
	s.mounted = true
	s.logger.Info("seeded websites", "count", len(seeded))
	return nil
}

// Mounted reports whether Mount has completed.
func (s *Showcase) Mounted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mounted
}

// Mode returns the current view mode.
func (s *Showcase) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Toggle flips between Listing and Admin and returns the new mode.
func (s *Showcase) Toggle() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == AdminMode {
		s.mode = ListingMode
	} else {
		s.mode = AdminMode
	}
	return s.mode
}

// Websites returns a copy of the current list.
func (s *Showcase) Websites() []models.Website {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.websites)
}

// TopParticipants returns the leading [TopCount] entries.
func (s *Showcase) TopParticipants() []models.Website {
	top, _ := Split(s.Websites())
	return top
}

// OtherParticipants returns every entry after the top participants.
func (s *Showcase) OtherParticipants() []models.Website {
	_, rest := Split(s.Websites())
	return rest
}

// Add assigns the next identifier to draft, appends it and persists the full list.
//
// Invalid drafts return an error wrapping [shared.ErrInvalidInput], and calls before [Showcase.Mount] one wrapping [shared.ErrServiceUnavailable].
// When persisting fails the in-memory list is left unchanged.
func (s *Showcase) Add(ctx context.Context, draft models.Draft) (models.Website, error) {
	if err := ctx.Err(); err != nil {
		return models.Website{}, err
	}

	draft = draft.Normalize()
	if err := draft.Validate(); err != nil {
		return models.Website{}, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mounted {
		return models.Website{}, fmt.Errorf("%w: showcase not mounted", shared.ErrServiceUnavailable)
	}

	website := draft.WithID(NextID(s.websites))
	updated := append(slices.Clone(s.websites), website)

	if err := s.store.Save(updated); err != nil {
		return models.Website{}, fmt.Errorf("failed to save websites: %w", err)
	}

	s.websites = updated
	s.logger.Info("website added", "id", website.ID, "name", website.Name)
	return website, nil
}

// Website returns the entry with the given identifier.
func (s *Showcase) Website(id int) (models.Website, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range s.websites {
		if w.ID == id {
			return w, true
		}
	}
	return models.Website{}, false
}

// NextID returns one more than the largest identifier in websites, treating an empty list as maximum 0.
func NextID(websites []models.Website) int {
	maxID := 0
	for _, w := range websites {
		maxID = max(maxID, w.ID)
	}
	return maxID + 1
}

// Split divides websites into the first [TopCount] entries and the remainder, preserving order.
func Split(websites []models.Website) (top, rest []models.Website) {
	n := min(TopCount, len(websites))
	return websites[:n:n], websites[n:]
}
