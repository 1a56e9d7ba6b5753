package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drawdeck/drawdeck/internal/server"
	"github.com/drawdeck/drawdeck/pkg/session"
)

// serveCommand creates the serve command, the main entry point: it runs
// the MCP tool server until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		transport string
		addr      string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP diagram server",
		Long:  `Serve exposes the diagram tools to MCP clients, over stdio (one local client) or streamable HTTP (remote clients, one document per session).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if transport != "" {
				cfg.Server.Transport = transport
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			catalog, err := newCatalog(ctx, cfg.Catalog)
			if err != nil {
				return fmt.Errorf("build shape catalog: %w", err)
			}
			if err := catalog.Initialize(ctx); err != nil {
				// A dead shape index should not keep the server down.
				c.Logger.Warn("shape catalog initialization failed, tools will report CATALOG_NOT_READY until reset", "err", err)
			}

			registry := session.NewRegistry(cfg.Session.TTL.Duration)
			registry.StartReaper(ctx, cfg.Session.TTL.Duration/4)

			srv := server.New(c.Logger, registry, catalog)
			switch cfg.Server.Transport {
			case "http":
				return srv.ServeHTTP(ctx, cfg.Server.Addr)
			default:
				return srv.ServeStdio(ctx)
			}
		},
	}

	cmd.Flags().StringVar(&transport, "transport", "", "override transport: stdio or http")
	cmd.Flags().StringVar(&addr, "addr", "", "override listen address for the http transport")

	return cmd
}
