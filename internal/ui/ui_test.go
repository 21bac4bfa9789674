package ui

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/showcase/internal/formatter"
	"github.com/desertthunder/showcase/internal/models"
	"github.com/desertthunder/showcase/internal/shared"
	"github.com/desertthunder/showcase/internal/showcase"
	th "github.com/desertthunder/showcase/internal/testing"
)

func newTestModel(t *testing.T, store *th.MemoryStore, seed []models.Website) (*Model, *showcase.Showcase) {
	t.Helper()

	sc := showcase.New(store, th.StaticSeed(seed), shared.NewLogger(io.Discard))
	m := NewModel(context.Background(), sc, Options{Title: "Test Showcase", Footer: "footer text"})

	msg := m.Init()()
	m.Update(msg)
	return m, sc
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(runes(string(r)))
	}
}

// run executes cmd and feeds its message back into the model.
func run(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	m.Update(cmd())
}

func TestModel(t *testing.T) {
	t.Run("Init mounts from seed", func(t *testing.T) {
		store := th.NewMemoryStore(nil)
		m, sc := newTestModel(t, store, th.Websites(5))

		if !sc.Mounted() {
			t.Fatal("expected showcase to be mounted")
		}
		if m.ViewState() != ListingView {
			t.Errorf("expected listing view, got %d", m.ViewState())
		}

		view := m.View()
		for _, want := range []string{"Test Showcase", formatter.TopTitle, formatter.OthersTitle, "Site A", "Site E", "footer text"} {
			if !strings.Contains(view, want) {
				t.Errorf("listing view missing %q:\n%s", want, view)
			}
		}
	})

	t.Run("short list hides second section", func(t *testing.T) {
		m, _ := newTestModel(t, th.NewMemoryStore(th.Websites(2)), nil)

		view := m.View()
		if strings.Contains(view, formatter.OthersTitle) {
			t.Errorf("listing with 2 entries should not show %s", formatter.OthersTitle)
		}
	})

	t.Run("mount error is shown", func(t *testing.T) {
		store := th.NewMemoryStore(nil)
		store.LoadErr = shared.ErrMalformedStorage
		m, _ := newTestModel(t, store, nil)

		if !strings.Contains(m.View(), "Error") {
			t.Errorf("expected error view, got:\n%s", m.View())
		}

		_, cmd := m.Update(runes("x"))
		if cmd == nil {
			t.Fatal("expected quit command after error")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Error("expected tea.QuitMsg")
		}
	})

	t.Run("toggle between views", func(t *testing.T) {
		m, sc := newTestModel(t, th.NewMemoryStore(th.Websites(3)), nil)

		m.Update(runes("a"))
		if m.ViewState() != AdminView || sc.Mode() != showcase.AdminMode {
			t.Fatalf("expected admin view after a, got %d", m.ViewState())
		}
		if !strings.Contains(m.View(), "Add a participant website") {
			t.Errorf("admin view missing form title:\n%s", m.View())
		}

		m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		if m.ViewState() != ListingView {
			t.Errorf("expected listing view after esc, got %d", m.ViewState())
		}
	})

	t.Run("quit from listing", func(t *testing.T) {
		m, _ := newTestModel(t, th.NewMemoryStore(th.Websites(1)), nil)

		_, cmd := m.Update(runes("q"))
		if cmd == nil {
			t.Fatal("expected quit command")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Error("expected tea.QuitMsg")
		}
	})

	t.Run("q types into the admin form", func(t *testing.T) {
		m, _ := newTestModel(t, th.NewMemoryStore(th.Websites(1)), nil)
		m.Update(runes("a"))

		typeText(m, "qa")
		if got := m.form.draft().Name; got != "qa" {
			t.Errorf("expected name qa, got %q", got)
		}
		if m.ViewState() != AdminView {
			t.Error("typing in the form should not leave admin view")
		}
	})
}

func TestAdminForm(t *testing.T) {
	t.Run("submit adds website", func(t *testing.T) {
		store := th.NewMemoryStore(th.Websites(3))
		m, sc := newTestModel(t, store, nil)
		m.Update(runes("a"))

		typeText(m, "Fresh Site")
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		typeText(m, "https://fresh.example.com")

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
		run(t, m, cmd)

		websites := sc.Websites()
		if len(websites) != 4 {
			t.Fatalf("expected 4 websites, got %d", len(websites))
		}
		added := websites[3]
		if added.ID != 4 || added.Name != "Fresh Site" || added.URL != "https://fresh.example.com" {
			t.Errorf("unexpected website: %+v", added)
		}

		persisted, _ := store.Persisted()
		if len(persisted) != 4 {
			t.Errorf("expected 4 persisted websites, got %d", len(persisted))
		}

		if !strings.Contains(m.View(), "Added Fresh Site as #4") {
			t.Errorf("expected success status:\n%s", m.View())
		}
		if m.form.draft().Name != "" || m.form.focus != fieldName {
			t.Error("expected form to reset after submit")
		}
	})

	t.Run("enter advances then submits on last field", func(t *testing.T) {
		m, sc := newTestModel(t, th.NewMemoryStore([]models.Website{}), nil)
		m.Update(runes("a"))

		values := []string{"Enter Site", "https://enter.example.com", "desc", "Ada", ""}
		var cmd tea.Cmd
		for i, v := range values {
			typeText(m, v)
			_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			if i < len(values)-1 && m.form.focus != formField(i+1) {
				t.Fatalf("expected focus on field %d, got %d", i+1, m.form.focus)
			}
		}
		run(t, m, cmd)

		websites := sc.Websites()
		if len(websites) != 1 || websites[0].ID != 1 || websites[0].Author != "Ada" {
			t.Errorf("unexpected websites: %+v", websites)
		}
	})

	t.Run("invalid draft shows error", func(t *testing.T) {
		m, sc := newTestModel(t, th.NewMemoryStore(th.Websites(1)), nil)
		m.Update(runes("a"))

		typeText(m, "No URL")
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
		run(t, m, cmd)

		if len(sc.Websites()) != 1 {
			t.Errorf("invalid submit should not add, got %d websites", len(sc.Websites()))
		}
		if !errors.Is(m.formErr, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", m.formErr)
		}
		if !strings.Contains(m.View(), "url is required") {
			t.Errorf("expected validation message:\n%s", m.View())
		}
		if m.form.draft().Name != "No URL" {
			t.Error("form should keep input after a failed submit")
		}
	})

	t.Run("focus wraps", func(t *testing.T) {
		f := newAdminForm()
		f.move(-1)
		if f.focus != fieldPreview {
			t.Errorf("expected focus to wrap to last field, got %d", f.focus)
		}
		f.move(1)
		if f.focus != fieldName {
			t.Errorf("expected focus to wrap to first field, got %d", f.focus)
		}
	})
}

func TestListingScroll(t *testing.T) {
	m, _ := newTestModel(t, th.NewMemoryStore(th.Websites(20)), nil)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})

	if m.maxOffset() == 0 {
		t.Fatal("expected listing to overflow a 12 line window")
	}

	for range 100 {
		m.Update(runes("j"))
	}
	if m.offset != m.maxOffset() {
		t.Errorf("expected offset clamped to %d, got %d", m.maxOffset(), m.offset)
	}

	for range 100 {
		m.Update(runes("k"))
	}
	if m.offset != 0 {
		t.Errorf("expected offset 0 after scrolling up, got %d", m.offset)
	}
}
