// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI mirrors the showcase page with two views toggled by a single key:
//  1. [ListingView] : Top participants with rank badges, followed by all other participants with demo links
//  2. [AdminView] : A form that appends a new website to the showcase
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via the Msg union type.
// All state lives in the [showcase.Showcase] the model wraps; the model only holds form input and presentation details.
//
// Keyboard navigation uses vim-style bindings (j/k, a, tab, esc, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
