package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"demo/kitchenpos/internal/config"
	"demo/kitchenpos/internal/gen"
	"demo/kitchenpos/internal/store"
)

type rootOptions struct {
	configPath string
	dsn        string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "producer",
		Short:         "Generate kitchenpos data",
		Long:          "producer seeds the kitchenpos database with fake menus and tables and publishes fake order requests to Kafka.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			gen.SeedOnce()
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "kitchenpos.yaml", "path to YAML config")
	cmd.PersistentFlags().StringVar(&opts.dsn, "dsn", "", "database URL (overrides config)")

	cmd.AddCommand(newOrdersCmd(opts))
	cmd.AddCommand(newFixturesCmd(opts))
	return cmd
}

func (o *rootOptions) load() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if o.dsn != "" {
		cfg.DB.DSN = o.dsn
	}
	return cfg, nil
}

func openRepo(ctx context.Context, dsn string) (*store.Repo, func(), error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("db connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("db ping: %w", err)
	}
	return store.New(pool), pool.Close, nil
}
