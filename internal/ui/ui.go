package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/showcase/internal/formatter"
	"github.com/desertthunder/showcase/internal/models"
	"github.com/desertthunder/showcase/internal/shared"
	"github.com/desertthunder/showcase/internal/showcase"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	ListingView ViewState = iota
	AdminView
)

// Options holds presentation strings for the TUI.
type Options struct {
	Title  string
	Footer string
}

// Model represents the TUI application state.
type Model struct {
	ctx      context.Context
	showcase *showcase.Showcase
	opts     Options
	width    int
	height   int
	offset   int
	form     adminForm
	status   string
	formErr  error
	err      error
	help     help.Model
	keys     keyMap
}

// NewModel creates a new TUI model around sc, which is mounted by [Model.Init].
func NewModel(ctx context.Context, sc *showcase.Showcase, opts Options) *Model {
	if opts.Title == "" {
		opts.Title = "Participant Showcase"
	}
	return &Model{
		ctx:      ctx,
		showcase: sc,
		opts:     opts,
		form:     newAdminForm(),
		help:     help.New(),
		keys:     newKeyMap(),
	}
}

// ViewState returns the active view, derived from the showcase mode.
func (m *Model) ViewState() ViewState {
	if m.showcase.Mode() == showcase.AdminMode {
		return AdminView
	}
	return ListingView
}

// Init mounts the showcase, loading persisted or seed websites.
func (m *Model) Init() tea.Cmd {
	return m.mount()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.err != nil {
			return m, tea.Quit
		}
		switch m.ViewState() {
		case ListingView:
			return m.handleListingKeys(msg)
		case AdminView:
			return m.handleAdminKeys(msg)
		}

	case Msg:
		return m.handleMsg(msg)
	}

	if m.ViewState() == AdminView {
		return m, m.form.update(msg)
	}
	return m, nil
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgMounted:
		if err, _ := msg.data.(error); err != nil {
			m.err = err
		}
		return m, nil

	case MsgWebsiteAdded:
		data := msg.data.(struct {
			website models.Website
			err     error
		})
		if data.err != nil {
			m.formErr = data.err
			m.status = ""
			return m, nil
		}
		m.formErr = nil
		m.status = fmt.Sprintf("✓ Added %s as #%d", data.website.Name, data.website.ID)
		return m, m.form.reset()
	}
	return m, nil
}

func (m *Model) handleListingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.admin):
		m.showcase.Toggle()
		m.status = ""
		m.formErr = nil
		return m, m.form.reset()
	case key.Matches(msg, m.keys.down):
		if m.offset < m.maxOffset() {
			m.offset++
		}
	case key.Matches(msg, m.keys.up):
		if m.offset > 0 {
			m.offset--
		}
	}
	return m, nil
}

func (m *Model) handleAdminKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.back):
		m.showcase.Toggle()
		return m, nil
	case key.Matches(msg, m.keys.submit):
		return m, m.submit()
	case msg.String() == "enter":
		if m.form.onLastField() {
			return m, m.submit()
		}
		return m, m.form.move(1)
	case key.Matches(msg, m.keys.next):
		return m, m.form.move(1)
	case key.Matches(msg, m.keys.prev):
		return m, m.form.move(-1)
	}
	return m, m.form.update(msg)
}

func (m *Model) mount() tea.Cmd {
	return func() tea.Msg {
		return mountedMsg(m.showcase.Mount(m.ctx))
	}
}

func (m *Model) submit() tea.Cmd {
	draft := m.form.draft()
	return func() tea.Msg {
		website, err := m.showcase.Add(m.ctx, draft)
		return websiteAddedMsg(website, err)
	}
}

// listingLines renders the full listing body before scrolling is applied.
func (m *Model) listingLines() []string {
	return renderSections(formatter.Sections(m.showcase.Websites()))
}

// bodyHeight is the number of listing lines that fit between header and footer.
func (m *Model) bodyHeight() int {
	if m.height <= 0 {
		return 0
	}
	return max(m.height-6, 1)
}

func (m *Model) maxOffset() int {
	h := m.bodyHeight()
	if h == 0 {
		return 0
	}
	return max(len(m.listingLines())-h, 0)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress any key to quit", m.err))
	}

	var body, footer string
	switch m.ViewState() {
	case ListingView:
		body = m.renderListing()
		footer = m.help.ShortHelpView(m.keys.listingHelp())
	case AdminView:
		body = m.renderAdmin()
		footer = m.help.ShortHelpView(m.keys.adminHelp())
	}

	parts := []string{m.renderHeader(), body, footer}
	if m.opts.Footer != "" {
		parts = append(parts, styles.help.Render(m.opts.Footer))
	}
	return strings.Join(parts, "\n")
}

func (m *Model) renderHeader() string {
	toggle := "a: admin"
	if m.ViewState() == AdminView {
		toggle = "esc: listing"
	}
	return styles.header.Render(m.opts.Title) + " " + styles.muted.Render(toggle) + "\n"
}

func (m *Model) renderListing() string {
	lines := m.listingLines()
	if h := m.bodyHeight(); h > 0 && len(lines) > h {
		start := min(m.offset, len(lines)-h)
		lines = lines[start : start+h]
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m *Model) renderAdmin() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("Add a participant website"))
	b.WriteString("\n")
	b.WriteString(m.form.view())

	switch {
	case m.formErr != nil:
		msg := m.formErr.Error()
		if errors.Is(m.formErr, shared.ErrInvalidInput) {
			msg = strings.TrimPrefix(msg, shared.ErrInvalidInput.Error()+": ")
		}
		b.WriteString(styles.err.Render("✗ " + msg))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(styles.ok.Render(m.status))
		b.WriteString("\n")
	}
	return b.String()
}
