// Package cli implements the drawdeck command-line interface.
//
// The main command is serve, which runs the MCP tool server over stdio or
// HTTP. The shapes and cache commands inspect and manage the shape
// catalog without starting a server. All commands support --verbose for
// debug-level logging and --config for a non-default configuration file.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/drawdeck/drawdeck/internal/config"
	"github.com/drawdeck/drawdeck/pkg/buildinfo"
	"github.com/drawdeck/drawdeck/pkg/cache"
	"github.com/drawdeck/drawdeck/pkg/shapes"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigPath is the --config override; empty means the default
	// location.
	ConfigPath string
}

// New creates a CLI instance with a timestamped logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "drawdeck",
		Short:        "Drawdeck serves diagram-editing tools to agents",
		Long:         `Drawdeck is an MCP server that lets agents build draw.io-compatible diagrams through structured operations: vertices, edges, groups, layers, and pages, exported as mxfile XML.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "path to config file")

	root.AddCommand(c.serveCommand())
	root.AddCommand(c.shapesCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the configuration honoring the --config flag.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return cfg, err
	}
	if level, perr := log.ParseLevel(cfg.Log.Level); perr == nil {
		// --verbose wins over the configured level.
		if c.Logger.GetLevel() != log.DebugLevel {
			c.Logger.SetLevel(level)
		}
	}
	return cfg, nil
}

// newCatalogCache builds the cache backend the configuration selects.
func newCatalogCache(ctx context.Context, cfg config.Catalog) (cache.Cache, error) {
	switch cfg.CacheBackend {
	case "none":
		return cache.NewNullCache(), nil
	case "redis":
		return cache.NewRedisCache(ctx, cfg.RedisAddr)
	default:
		dir, err := cfg.CacheDirOrDefault()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	}
}

// newCatalog builds the shape catalog from the configuration. The catalog
// is returned uninitialized; callers decide when to load it.
func newCatalog(ctx context.Context, cfg config.Catalog) (*shapes.Catalog, error) {
	if cfg.IndexURL == "" {
		return shapes.New(nil), nil
	}
	backend, err := newCatalogCache(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return shapes.New(shapes.NewFetcher(cfg.IndexURL, backend)), nil
}
