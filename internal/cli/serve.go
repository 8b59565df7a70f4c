package cli

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tiledock/internal/metrics"
	"github.com/matzehuels/tiledock/internal/server"
	"github.com/matzehuels/tiledock/pkg/buildinfo"
	"github.com/matzehuels/tiledock/pkg/dock"
	"github.com/matzehuels/tiledock/pkg/geom"
	"github.com/matzehuels/tiledock/pkg/observability"
	"github.com/matzehuels/tiledock/pkg/workspace"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	size sizeFlags
	addr string
	seed []string // directions to add before serving
}

// serveCommand creates the serve command, which exposes a workspace over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a workspace over HTTP",
		Long: `Serve an in-memory workspace over a JSON HTTP API. Panels are added with
POST /panels {"direction": "left"}; Prometheus metrics are exposed on /metrics.
The workspace lives only as long as the process.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := c.container(cmd, opts.size)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				opts.addr = c.Config.Serve.Addr
			}
			dirs, err := parseDirections(opts.seed)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), container, dirs, opts.addr)
		},
	}

	opts.size.register(cmd)
	cmd.Flags().StringVar(&opts.addr, "addr", defaultAddr, "listen address (default from config)")
	cmd.Flags().StringSliceVar(&opts.seed, "seed", nil, "directions of panels to add before serving (comma-separated)")

	return cmd
}

func runServe(ctx context.Context, container geom.Rect, seed []dock.Direction, addr string) error {
	logger := loggerFromContext(ctx)
	logger.Debug("starting server", "version", buildinfo.Version, "container", container.String())

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m, err := metrics.New(reg)
	if err != nil {
		return err
	}
	observability.SetPlacementHooks(m)
	observability.SetHTTPHooks(m)
	defer observability.Reset()

	ws := workspace.New(workspace.WithContainer(container))
	mgr := dock.NewManager(ws, ws, dock.WithLogger(logger))
	for _, d := range seed {
		if _, err := mgr.AddPanel(ctx, d); err != nil {
			return err
		}
	}

	srv := server.New(ws, mgr,
		server.WithLogger(logger),
		server.WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})),
	)
	printInfo("Serving workspace %s on %s", container, StyleHighlight.Render("http://"+addr))
	printNextStep("Add a panel", `curl -X POST -d '{"direction":"left"}' http://`+addr+`/panels`)
	return srv.ListenAndServe(ctx, addr)
}
