package main

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/cobra"

	"demo/kitchenpos/internal/gen"
)

func newOrdersCmd(root *rootOptions) *cobra.Command {
	var (
		count    int
		interval time.Duration
		tableIDs []int64
		menuIDs  []int64
	)
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Publish fake order requests to Kafka",
		Long:  "Publishes --count order requests. Table and menu ids default to every table and menu in the database.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, err := root.load()
			if err != nil {
				return err
			}
			if len(tableIDs) == 0 || len(menuIDs) == 0 {
				repo, closeRepo, err := openRepo(ctx, cfg.DB.DSN)
				if err != nil {
					return err
				}
				defer closeRepo()
				if len(tableIDs) == 0 {
					tables, err := repo.ListTables(ctx)
					if err != nil {
						return fmt.Errorf("list tables: %w", err)
					}
					for _, t := range tables {
						tableIDs = append(tableIDs, t.ID)
					}
				}
				if len(menuIDs) == 0 {
					menus, err := repo.ListMenus(ctx)
					if err != nil {
						return fmt.Errorf("list menus: %w", err)
					}
					for _, m := range menus {
						menuIDs = append(menuIDs, m.ID)
					}
				}
			}
			if len(tableIDs) == 0 || len(menuIDs) == 0 {
				return fmt.Errorf("no tables or menus to order from; run `producer fixtures` first")
			}

			w := &kafka.Writer{
				Addr:         kafka.TCP(cfg.Kafka.Brokers...),
				Topic:        cfg.Kafka.Topic,
				Balancer:     &kafka.Hash{},
				RequiredAcks: kafka.RequireAll,
			}
			defer func() {
				if err := w.Close(); err != nil {
					cmd.PrintErrf("close writer: %v\n", err)
				}
			}()

			sent := 0
			for i := 0; i < count; i++ {
				tableID := tableIDs[gofakeit.Number(0, len(tableIDs)-1)]
				n, err := gen.SendOrderRequest(ctx, w, gen.FakeOrderRequest(tableID, menuIDs), "generated")
				if err != nil {
					return fmt.Errorf("produce: %w", err)
				}
				sent += n
				if i < count-1 {
					if err := sleepCtx(ctx, interval); err != nil {
						cmd.Printf("interrupted after %d order request(s)\n", sent)
						return nil
					}
				}
			}
			cmd.Printf("produced %d order request(s) to %s\n", sent, cfg.Kafka.Topic)
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 1, "number of order requests")
	cmd.Flags().DurationVar(&interval, "interval", 0, "pause between messages")
	cmd.Flags().Int64SliceVar(&tableIDs, "tables", nil, "table ids to order for")
	cmd.Flags().Int64SliceVar(&menuIDs, "menus", nil, "menu ids to order from")
	return cmd
}

// sleepCtx waits for d or until ctx is done, whichever comes first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
