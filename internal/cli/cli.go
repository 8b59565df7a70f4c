// Package cli implements the tiledock command-line interface.
//
// The commands drive a dock layout manager over an in-memory workspace or a
// frozen geometry snapshot:
//   - place: evaluate a placement against a snapshot file
//   - add: add panels to a fresh workspace and show where they landed
//   - graph: export the resulting split tree as DOT or SVG
//   - serve: expose a workspace over HTTP with Prometheus metrics
//   - tui: interactive terminal workspace
//
// All commands support --verbose (-v) for debug-level logging, which includes
// the placement decision trace. Defaults can be set in a TOML config file.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tiledock/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "tiledock"

	defaultWidth  = 1200 // default container width in pixels
	defaultHeight = 800  // default container height in pixels
	defaultAddr   = "127.0.0.1:8080"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configPath string
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: defaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "tiledock places panels in a tiled, multi-group workspace",
		Long:         `tiledock decides where a new panel goes when it is docked left, right, above, below or within a layout of panel groups, and creates a new group when no existing one qualifies.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(cmd); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/tiledock/config.toml)")

	// Register all subcommands
	root.AddCommand(c.placeCommand())
	root.AddCommand(c.addCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file and applies its log level unless
// --verbose was given.
func (c *CLI) loadConfig(cmd *cobra.Command) error {
	path, explicit := c.configPath, c.configPath != ""
	if !explicit {
		p, err := configFile()
		if err != nil {
			return nil
		}
		path = p
	}

	cfg, err := readConfig(path, explicit)
	if err != nil {
		return err
	}
	c.Config = cfg

	if f := cmd.Flags().Lookup("verbose"); f != nil && f.Changed {
		return nil
	}
	if cfg.Log.Level != "" {
		level, err := log.ParseLevel(cfg.Log.Level)
		if err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
		c.SetLogLevel(level)
	}
	return nil
}
