// Package server provides SSH access to a mosaic desktop: each connection
// gets its own layout engine and desktop model.
package server

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"

	"github.com/mosaicwm/mosaic/internal/app"
	"github.com/mosaicwm/mosaic/internal/config"
)

// Config holds the SSH server settings.
type Config struct {
	Host    string
	Port    string
	KeyPath string
}

// Start runs the SSH server until ctx is cancelled, then shuts down
// gracefully.
func Start(ctx context.Context, cfg *Config) error {
	hostKeyPath := cfg.KeyPath
	if hostKeyPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}
		hostKeyPath = filepath.Join(homeDir, ".ssh", "mosaic_host_key")
	}

	server, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(teaHandler),
			logging.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}

	go func() {
		log.Info("starting SSH server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil {
			log.Error("SSH server error", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down SSH server")
	return server.Shutdown(ctx)
}

// teaHandler creates a desktop instance for each SSH session.
func teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, active := sshSession.Pty()
	if !active {
		return nil, nil
	}

	cfg, err := config.LoadUserConfig()
	if err != nil {
		log.Warn("failed to load config for SSH session, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}

	desktop := app.NewDesktop(cfg, log.Default())
	desktop.Resize(pty.Window.Width, pty.Window.Height)

	return desktop, nil
}
