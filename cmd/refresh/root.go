package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Gunvolt24/top_products/config"
	"github.com/Gunvolt24/top_products/internal/app"
	"github.com/Gunvolt24/top_products/migrations"
	"github.com/Gunvolt24/top_products/pkg/ctxmeta"
	"github.com/Gunvolt24/top_products/pkg/redact"
)

// Итоговые строки для оператора; подробности только в логе.
const (
	msgSuccess = "Top products cache updated successfully"
	msgFailure = "Error updating top products cache. Please check logs for details."
)

// errRefreshFailed — причина уже залогирована, cobra печатать её не должна.
var errRefreshFailed = errors.New("refresh failed")

type options struct {
	envFile  string
	timeout  time.Duration
	strategy string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Recompute the top products ranking cache",
		Long: `Recompute the top products ranking from recent shipped/delivered orders
and atomically replace the contents of top_products_cache.

Configuration is read from TOP_PRODUCTS_* environment variables.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env.local", "dotenv file loaded before reading the environment (missing file is ignored)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "refresh timeout, overrides TOP_PRODUCTS_REFRESH_TIMEOUT")
	cmd.Flags().StringVar(&opts.strategy, "strategy", "", "write strategy: replace|upsert, overrides TOP_PRODUCTS_RANKING_STRATEGY")

	cmd.AddCommand(newMigrateCmd(&opts))
	return cmd
}

// newMigrateCmd — применение схемы перед первым запуском джобы и сервиса.
func newMigrateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:           "migrate",
		Short:         "Apply database migrations",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.envFile != "" {
				_ = godotenv.Load(opts.envFile)
			}
			cfg, err := config.Load()
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "config: %s\n", redact.Error(err))
				return err
			}
			if err := migrations.Up(cmd.Context(), cfg.Postgres.DSN); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "migrate: %s\n", redact.Error(err))
				return err
			}
			v, err := migrations.Version(cmd.Context(), cfg.Postgres.DSN)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", v)
			return nil
		},
	}
}

func run(ctx context.Context, stdout, stderr io.Writer, opts options) error {
	if opts.envFile != "" {
		_ = godotenv.Load(opts.envFile)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "config: %s\n", redact.Error(err))
		fmt.Fprintln(stdout, msgFailure)
		return errRefreshFailed
	}

	ctx = ctxmeta.WithRunID(ctx, uuid.NewString())

	job, cleanup, err := app.BootstrapRefresh(ctx, &cfg)
	if err != nil {
		// логгер уже закрыт: пишем в stderr, тоже через redact
		fmt.Fprintf(stderr, "bootstrap: %s\n", redact.Error(err))
		fmt.Fprintln(stdout, msgFailure)
		return errRefreshFailed
	}
	defer cleanup()

	if _, err := job.Run(ctx); err != nil {
		job.Logger.Errorf(ctx, "Error updating top products cache: %v", err)
		fmt.Fprintln(stdout, msgFailure)
		return errRefreshFailed
	}

	fmt.Fprintln(stdout, msgSuccess)
	return nil
}

// loadConfig — окружение плюс переопределения из флагов, с повторной проверкой.
func loadConfig(opts options) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if opts.timeout > 0 {
		cfg.Refresh.Timeout = opts.timeout
	}
	if s := strings.ToLower(strings.TrimSpace(opts.strategy)); s != "" {
		cfg.Ranking.Strategy = s
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}
