package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/showcase/internal/shared"
	"github.com/desertthunder/showcase/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal listing and admin form.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/showcase-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	db, err := shared.OpenDatabase(config.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	sc := r.newShowcase(db, config.Storage.Key)

	model := ui.NewModel(ctx, sc, ui.Options{Title: config.Site.Title, Footer: config.Site.Footer})
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
