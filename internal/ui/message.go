package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/showcase/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgMounted MsgKind = iota
	MsgWebsiteAdded
)

// mountedMsg is the constructor for [MsgMounted]
func mountedMsg(err error) Msg {
	return Msg{kind: MsgMounted, data: err}
}

// websiteAddedMsg is the constructor for [MsgWebsiteAdded]
func websiteAddedMsg(website models.Website, err error) Msg {
	return Msg{
		kind: MsgWebsiteAdded,
		data: struct {
			website models.Website
			err     error
		}{website, err},
	}
}
