// Package launcher boots the interactive session: logging, database, styles,
// and the Bubble Tea program, all under a signal-aware context.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"

	"github.com/tavla-tui/tavla/internal/config"
	"github.com/tavla-tui/tavla/internal/database"
	"github.com/tavla-tui/tavla/internal/logging"
	"github.com/tavla-tui/tavla/internal/tui/components"
	"github.com/tavla-tui/tavla/internal/tui/core"
)

// Launch runs the TUI session to completion. The configuration is resolved
// by the caller; nothing below this point reads flags or the environment for
// settings.
func Launch(cfg *config.Config) error {
	// Logging goes to a file before anything else: once the program starts
	// the terminal belongs to the TUI
	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()
	slog.Info("database ready", "path", cfg.DatabasePath)

	components.InitStyles(cfg.HighlightColor)

	repo := database.NewRepository(db)
	app := core.New(ctx, repo, cfg)
	p := tea.NewProgram(app, tea.WithContext(ctx))

	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received")
		// tea.WithContext makes the program unwind itself; wait for it so
		// the terminal is restored before the database closes
		<-errChan
	}

	return nil
}
