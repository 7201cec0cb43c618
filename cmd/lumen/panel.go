package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/lumen/internal/config"
	"github.com/alexisbeaulieu97/lumen/internal/logger"
)

var errNotATerminal = errors.New("lumen needs an interactive terminal")

func runPanel(ctx context.Context, cfg *config.Config) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotATerminal
	}

	log, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	app, err := newAppContext(ctx, cfg, log)
	if err != nil {
		log.Error(err, "panel startup failed")
		return err
	}
	defer app.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.Panel.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	log.Info("launching panel", "demo", cfg.Panel.Demo, "host", cfg.Host.Address)
	p := tea.NewProgram(app.Panel, opts...)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Error(err, "panel execution failed")
		return fmt.Errorf("failed to run panel: %w", err)
	}

	log.Info("panel closed")
	return nil
}

// openLogger builds the logger for a panel run. The terminal belongs to the
// panel, so logs go to the configured file or nowhere.
func openLogger(cfg config.LogConfig) (*logger.Logger, func(), error) {
	var (
		writer io.Writer = io.Discard
		closer           = func() {}
	)
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		writer = f
		closer = func() { _ = f.Close() }
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Level,
		HumanReadable: cfg.Human,
		Writer:        writer,
		Component:     "lumen",
	})
	if err != nil {
		closer()
		return nil, nil, err
	}
	return log, closer, nil
}
