package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bestfirst/pkg/buildinfo"
	"github.com/matzehuels/bestfirst/pkg/cache"
	"github.com/matzehuels/bestfirst/pkg/observability"
	"github.com/matzehuels/bestfirst/pkg/puzzle"
	"github.com/matzehuels/bestfirst/pkg/solver"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "bestfirst"

	// Environment variables consulted for flag defaults.
	envRedisURL   = "BESTFIRST_REDIS_URL"
	envMongoDBURI = "BESTFIRST_MONGODB_URI"
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

	verbose bool
	noCache bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Bestfirst solves search problems with best-first graph search",
		Long: `Bestfirst runs breadth-first, depth-first, uniform-cost and A* search over
the sliding-tile puzzle and the N-Queens problem, benchmarks the strategies
against each other and serves them over HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			hooks := observability.NewLogHooks(c.Logger)
			observability.SetSearchHooks(hooks)
			observability.SetCacheHooks(hooks)
			observability.SetServerHooks(hooks)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable result caching")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.queensCommand())
	root.AddCommand(c.shuffleCommand())
	root.AddCommand(c.benchCommand())
	root.AddCommand(c.reportCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a solver runner for CLI use. A non-empty redisURL
// selects a shared Redis cache over the local file cache.
func (c *CLI) newRunner(ctx context.Context, redisURL string) (*solver.Runner, error) {
	store, err := newCache(ctx, c.noCache, redisURL)
	if err != nil {
		return nil, err
	}
	return solver.NewRunner(store, nil, c.Logger), nil
}

func newCache(ctx context.Context, noCache bool, redisURL string) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisURL != "" {
		return cache.NewRedisCache(ctx, redisURL)
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths and Environment
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/bestfirst/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// =============================================================================
// Input Helpers
// =============================================================================

// parseTiles parses a board flag such as "1,2,3,4,5,6,7,0,8" or
// "1 2 3|4 5 6|7 _ 8". An empty string yields nil.
func parseTiles(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	st, err := puzzle.ParseState(s)
	if err != nil {
		return nil, err
	}
	return st.Tiles(), nil
}

// joinTiles formats tiles the way parseTiles reads them back.
func joinTiles(tiles []int) string {
	parts := make([]string, len(tiles))
	for i, t := range tiles {
		parts[i] = strconv.Itoa(t)
	}
	return strings.Join(parts, ",")
}
