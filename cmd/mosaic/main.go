// Package main implements mosaic, a tiling window layout manager for the
// terminal: an i3-style tree of splits, stacks, and tabs driven entirely by
// the keyboard.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mosaicwm/mosaic/internal/app"
	"github.com/mosaicwm/mosaic/internal/config"
	"github.com/mosaicwm/mosaic/internal/server"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var debugMode bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "mosaic",
		Short: "Tiling window layout manager",
		Long: `Mosaic - a tiling window layout manager for the terminal

Windows are arranged in a tree of splits, stacks, and tabs with
percent-based sizing, directional focus navigation, and per-workspace
focus memory.`,
		Example: `  # Run mosaic
  mosaic

  # Run with debug logging
  mosaic --debug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDesktop()
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	var sshHost, sshPort, sshKeyPath string
	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Serve mosaic over SSH",
		Long:  `Run an SSH server that gives every connection its own mosaic desktop`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSSHServer(sshHost, sshPort, sshKeyPath)
		},
	}
	sshCmd.Flags().StringVar(&sshPort, "port", "2222", "SSH server port")
	sshCmd.Flags().StringVar(&sshHost, "host", "localhost", "SSH server host")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage mosaic configuration",
	}
	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.GetConfigPath()
			if err != nil {
				return fmt.Errorf("could not determine config path: %w", err)
			}
			fmt.Println(path)
			return nil
		},
	}
	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the mosaic configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return resetConfigToDefaults()
		},
	}
	configCmd.AddCommand(configPathCmd, configResetCmd)

	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View keybinding configuration",
	}
	keybindsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listKeybindings()
		},
	}
	keybindsCmd.AddCommand(keybindsListCmd)

	rootCmd.AddCommand(sshCmd, configCmd, keybindsCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s", version, commit, date)),
	); err != nil {
		os.Exit(1)
	}
}

// runDesktop starts the interactive desktop on the local terminal.
func runDesktop() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("mosaic requires an interactive terminal")
	}

	logger := setupLogger()
	cfg, err := config.LoadUserConfig()
	if err != nil {
		logger.Warn("failed to load config, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}
	if path, err := config.GetConfigPath(); err == nil {
		logger.Debug("configuration", "path", path)
	}

	desktop := app.NewDesktop(cfg, logger)
	p := tea.NewProgram(desktop)

	// live config reload
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		err := config.Watch(ctx, func(cfg *config.Config) {
			p.Send(app.ConfigReloadedMsg{Config: cfg})
		})
		if err != nil && ctx.Err() == nil {
			logger.Warn("config watcher stopped", "err", err)
		}
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

// runSSHServer serves desktops over SSH until interrupted.
func runSSHServer(host, port, keyPath string) error {
	setupLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
	}()

	if err := server.Start(ctx, &server.Config{Host: host, Port: port, KeyPath: keyPath}); err != nil {
		return fmt.Errorf("SSH server error: %w", err)
	}
	return nil
}

// setupLogger configures the default logger for the selected verbosity.
func setupLogger() *log.Logger {
	logger := log.Default()
	if debugMode {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

// resetConfigToDefaults writes a fresh default config after confirmation.
func resetConfigToDefaults() error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Warning: This will overwrite your existing configuration at:\n")
		fmt.Printf("  %s\n\n", configPath)
		fmt.Printf("Are you sure you want to reset to defaults? (yes/no): ")

		var response string
		fmt.Scanln(&response)
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "yes" && response != "y" {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	if err := config.WriteConfig(config.DefaultConfig(), configPath); err != nil {
		return err
	}
	fmt.Printf("Configuration reset to defaults\n")
	fmt.Printf("  Location: %s\n", configPath)
	return nil
}

// listKeybindings prints the configured keybindings in a table per section.
func listKeybindings() error {
	cfg, err := config.LoadUserConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		fmt.Fprintln(os.Stderr, "Using default keybindings...")
		cfg = config.DefaultConfig()
	}
	registry := config.NewKeybindRegistry(cfg)

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	fmt.Println()
	fmt.Println(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Render("Mosaic Keybindings"))
	fmt.Println()

	for _, section := range config.GetKeybindings(registry) {
		rows := [][]string{}
		for _, b := range section.Bindings {
			rows = append(rows, []string{b.Key, b.Description})
		}
		if len(rows) == 0 {
			continue
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
			Headers("Keys", "Action").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == -1 {
					return headerStyle
				}
				return cellStyle
			})

		fmt.Println(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).Render(section.Title))
		fmt.Println(t.Render())
		fmt.Println()
	}
	return nil
}
