package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gloovup/portal/internal/app"
	"github.com/gloovup/portal/internal/config"
	"github.com/gloovup/portal/internal/logging"
	"github.com/gloovup/portal/internal/sqlite"
	"github.com/spf13/cobra"
)

var (
	version    = "dev"
	configPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "portal",
		Short:         "Gloov Up portal administration",
		Long:          `portal serves the Gloov Up administration records over MCP and HTTP, and offers list, export and audit commands against the same database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				return os.Setenv("PORTAL_CONFIG_PATH", configPath)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")

	rootCmd.AddCommand(
		newServeCommand(),
		newListCommand(),
		newExportCommand(),
		newAuditCommand(),
		newResetCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// runtime is an opened database with the portal wired on top of it.
type runtime struct {
	cfg    config.Config
	logger *slog.Logger
	app    *app.App
	kv     *sqlite.KVRepository
	closer []io.Closer
}

// openRuntime loads configuration, opens the database and rehydrates the
// portal. Logs stay off stdout unless an HTTP server is being started, since
// stdout carries either command output or the stdio protocol.
func openRuntime(ctx context.Context, serving bool) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	stdoutReserved := !serving || cfg.Server.Transport == config.TransportStdio
	logger, logCloser, err := logging.New(cfg.Log, stdoutReserved)
	if err != nil {
		return nil, fmt.Errorf("log file error: %w", err)
	}
	rt := &runtime{cfg: cfg, logger: logger, closer: []io.Closer{logCloser}}

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		rt.Close()
		return nil, fmt.Errorf("failed to prepare database path: %w", err)
	}
	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	rt.closer = append(rt.closer, db)
	if err := db.RunMigrations(); err != nil {
		rt.Close()
		return nil, err
	}

	rt.kv = sqlite.NewKVRepository(db)
	rt.app = app.New(ctx, rt.kv, app.Options{
		Actor:  cfg.Portal.Actor,
		Logger: logger,
	})
	return rt, nil
}

// Close releases the database and log file, newest first.
func (rt *runtime) Close() {
	for i := len(rt.closer) - 1; i >= 0; i-- {
		_ = rt.closer[i].Close()
	}
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
