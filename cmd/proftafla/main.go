// Command proftafla is the operator CLI for the exam-schedule service.
// It exposes the same operations as the HTTP API: per-division exam
// listings, aggregate statistics, and cache clearing.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ugla-hub/proftafla/config"
	"github.com/ugla-hub/proftafla/internal/application/query"
	"github.com/ugla-hub/proftafla/internal/infrastructure/external/ugla"
	"github.com/ugla-hub/proftafla/internal/infrastructure/persistence/cache"
	"github.com/ugla-hub/proftafla/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "proftafla",
		Short:         "Exam schedules for University of Iceland divisions",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newDivisionsCmd(),
		newTestsCmd(),
		newStatsCmd(),
		newClearCacheCmd(),
	)

	return root
}

// newService wires the query service the same way the server does, with
// logs routed to stderr so stdout stays valid JSON.
func newService(ctx context.Context) (*query.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	log := logger.New(logger.Options{
		Output: os.Stderr,
		Level:  logger.ParseLevel(cfg.Observability.LogLevel),
	})

	var store cache.Store
	if cfg.Cache.Disabled {
		store = cache.NewMemoryStore()
	} else {
		store, err = cache.NewRedisStore(ctx, cfg.Cache.URL)
		if err != nil {
			return nil, nil, err
		}
	}

	resultCache := cache.New(store, cfg.Cache.Prefix, cfg.Cache.TTL, log)

	client := ugla.NewClient(ugla.Config{
		BaseURL: cfg.Ugla.BaseURL,
		Timeout: cfg.Ugla.Timeout,
		Logger:  log,
	})

	cleanup := func() {
		if err := store.Close(); err != nil {
			log.Warn("store close failed", logger.Err(err))
		}
	}

	return query.NewService(client, resultCache, log), cleanup, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func newDivisionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "divisions",
		Short: "List known divisions and their slugs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, cleanup, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			return printJSON(svc.Divisions())
		},
	}
}

func newTestsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tests <slug>",
		Short: "Show the exam listing for one division",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.GetTests(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if res == nil {
				return fmt.Errorf("unknown division: %s (try \"proftafla divisions\")", args[0])
			}

			return printJSON(res)
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Aggregate test statistics across all divisions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, cleanup, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			stats, err := svc.GetStats(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(stats)
		},
	}
}

func newClearCacheCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-cache",
		Short: "Remove all cached division results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, cleanup, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if !svc.ClearCache(cmd.Context()) {
				return fmt.Errorf("cache clear failed")
			}

			fmt.Println("cache cleared")
			return nil
		},
	}
}
