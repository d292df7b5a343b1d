package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/mvx/internal/shared"
	"github.com/desertthunder/mvx/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI for catalog browsing.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	catalog, err := r.catalogClient()
	if err != nil {
		return err
	}

	if err := r.openStores(); err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/mvx-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	model := ui.NewModel(ctx, catalog, r.wishlist)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
