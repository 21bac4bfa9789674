package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up     key.Binding
	down   key.Binding
	admin  key.Binding
	next   key.Binding
	prev   key.Binding
	submit key.Binding
	back   key.Binding
	quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		admin:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "admin")),
		next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "add website")),
		back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to listing")),
		quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.admin, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.admin},
		{k.next, k.prev, k.submit},
		{k.back, k.quit},
	}
}

// listingHelp returns the bindings shown in the listing footer.
func (k keyMap) listingHelp() []key.Binding {
	return []key.Binding{k.up, k.down, k.admin, k.quit}
}

// adminHelp returns the bindings shown in the admin footer. q is omitted since it types into the form.
func (k keyMap) adminHelp() []key.Binding {
	quit := key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))
	return []key.Binding{k.next, k.prev, k.submit, k.back, quit}
}
