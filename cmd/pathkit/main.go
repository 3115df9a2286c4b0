// Command pathkit applies and parses path/string templates configured by
// a roots.yml and templates.yml pair, per go.pathkit.dev/pathkit/config.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"go.pathkit.dev/pathkit/log"
	"go.pathkit.dev/pathkit/profile"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd()

	logCfg := log.NewConfig()
	logCfg.RegisterFlags(root.PersistentFlags())

	profileCfg := profile.NewConfig()
	profileCfg.RegisterFlags(root.PersistentFlags())

	if err := logCfg.RegisterCompletions(root); err != nil {
		fmt.Fprintln(os.Stderr, "pathkit:", err)
		os.Exit(1)
	}

	if err := profileCfg.RegisterCompletions(root); err != nil {
		fmt.Fprintln(os.Stderr, "pathkit:", err)
		os.Exit(1)
	}

	err := func() error {
		handler, err := logCfg.NewHandler(os.Stderr)
		if err != nil {
			return fmt.Errorf("configuring logging: %w", err)
		}

		slog.SetDefault(slog.New(handler))

		profiler := profileCfg.NewProfiler()
		if startErr := profiler.Start(); startErr != nil {
			return fmt.Errorf("starting profiler: %w", startErr)
		}

		defer func() {
			if stopErr := profiler.Stop(); stopErr != nil {
				slog.Error("stopping profiler", "error", stopErr)
			}
		}()

		return root.ExecuteContext(ctx)
	}()
	if err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, "pathkit:", msg)
		}

		os.Exit(1)
	}
}
