package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/alexisbeaulieu97/lumen/internal/bridge"
	"github.com/alexisbeaulieu97/lumen/internal/config"
	"github.com/alexisbeaulieu97/lumen/internal/logger"
	"github.com/alexisbeaulieu97/lumen/internal/transport"
	"github.com/alexisbeaulieu97/lumen/internal/tui/panel"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config *config.Config
	Bridge *bridge.Bridge
	Panel  panel.Model

	log     *logger.Logger
	closers []io.Closer
}

// newAppContext connects to the host (or stands in for it), seeds the bridge
// from the state file and builds the panel.
func newAppContext(ctx context.Context, cfg *config.Config, log *logger.Logger) (*AppContext, error) {
	app := &AppContext{Config: cfg, log: log}

	boot, err := loadBootstrap(cfg, log)
	if err != nil {
		return nil, err
	}

	var (
		sender    bridge.Sender
		listeners []panel.Listener
	)
	if cfg.Host.Address != "" {
		conn, err := transport.Dial(ctx, cfg.Host.Address, log)
		if err != nil {
			return nil, fmt.Errorf("connect to host: %w", err)
		}
		app.closers = append(app.closers, conn)
		sender = conn
		listeners = append(listeners, conn)
	} else {
		sender = transport.NewNullSender(log)
	}

	if cfg.Host.StateFile != "" {
		watcher, err := transport.WatchState(cfg.Host.StateFile, log)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("watch state file: %w", err)
		}
		app.closers = append(app.closers, watcher)
		listeners = append(listeners, watcher)
	}

	app.Bridge = bridge.New(bridge.Options{
		Context:   ctx,
		Sender:    sender,
		Lifecycle: bridge.LifecycleFunc(func() { log.Debug("panel animation finished") }),
		Logger:    log,
		Bootstrap: boot,
	})

	if cfg.Panel.Demo {
		if _, err := app.Bridge.Handle(bridge.EnableDemoMode{}); err != nil {
			app.Close()
			return nil, err
		}
	}

	hostWatch := transport.WatchHost(ctx, cfg.Host.PID, cfg.Host.PollInterval)

	app.Panel = panel.NewModel(panel.Options{
		Bridge:    app.Bridge,
		Listeners: listeners,
		HostWatch: hostWatch,
		Logger:    log,
		Width:     cfg.Panel.Width,
	})

	return app, nil
}

// loadBootstrap reads the host's state file. A file that does not exist yet
// is not an error; the watcher picks it up once the host writes it.
func loadBootstrap(cfg *config.Config, log *logger.Logger) (*bridge.Bootstrap, error) {
	var boot *bridge.Bootstrap
	if cfg.Host.StateFile != "" {
		loaded, err := config.LoadBootstrap(cfg.Host.StateFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Warn("state file not found, waiting for the host", "path", cfg.Host.StateFile)
		case err != nil:
			return nil, err
		default:
			boot = loaded
		}
	}

	if cfg.Panel.Accent != "" {
		if boot == nil {
			boot = &bridge.Bootstrap{}
		}
		boot.Accent = cfg.Panel.Accent
	}
	return boot, nil
}

// Close releases the host connection and the state watcher.
func (a *AppContext) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.log.Warn("close failed", "error", err.Error())
		}
	}
	a.closers = nil
}
