package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bestfirst/pkg/api"
	"github.com/matzehuels/bestfirst/pkg/solver"
)

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		redisURL   string
		maxTimeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Long: `Serve the solver over HTTP until interrupted.

Endpoints:
  GET  /healthz         liveness and version
  GET  /v1/algorithms   algorithms per problem
  POST /v1/solve        solve a request (?format=json|dot|svg)

Results are cached in Redis when --redis (or BESTFIRST_REDIS_URL) is set,
otherwise in the local cache directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, redisURL, maxTimeout)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", api.DefaultAddr, "listen address")
	cmd.Flags().StringVar(&redisURL, "redis", envOr(envRedisURL, ""), "Redis URL for the result cache")
	cmd.Flags().DurationVar(&maxTimeout, "max-timeout", api.DefaultMaxTimeout, "largest time budget a request may ask for")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, redisURL string, maxTimeout time.Duration) error {
	runner, err := c.newRunner(ctx, redisURL)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()
	runner.Timeout = min(solver.DefaultTimeout, maxTimeout)

	srv := api.NewServer(runner, loggerFromContext(ctx))
	srv.MaxTimeout = maxTimeout

	printInfo("Serving on %s", StyleLink.Render("http://"+displayAddr(addr)))
	return srv.ListenAndServe(ctx, addr)
}

// displayAddr turns a listen address such as ":8080" into a browsable host.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
