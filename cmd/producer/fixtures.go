package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"demo/kitchenpos/internal/gen"
	"demo/kitchenpos/internal/model"
	"demo/kitchenpos/internal/service"
	"demo/kitchenpos/internal/store"
)

func newFixturesCmd(root *rootOptions) *cobra.Command {
	var groups, products, menus, tables int
	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Seed the database with fake menu groups, products, menus and tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, err := root.load()
			if err != nil {
				return err
			}
			if err := store.Migrate(cfg.DB.DSN); err != nil {
				return err
			}
			repo, closeRepo, err := openRepo(ctx, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer closeRepo()

			log := slog.New(slog.NewTextHandler(io.Discard, nil))
			groupSvc := service.NewMenuGroupService(repo)
			productSvc := service.NewProductService(repo)
			menuSvc := service.NewMenuService(repo, repo, repo, log)
			tableSvc := service.NewTableService(repo, repo)

			var groupIDs []int64
			for i := 0; i < groups; i++ {
				g, err := groupSvc.Create(ctx, gen.FakeMenuGroup())
				if err != nil {
					return fmt.Errorf("menu group: %w", err)
				}
				groupIDs = append(groupIDs, g.ID)
			}
			var created []model.Product
			for i := 0; i < products; i++ {
				p, err := productSvc.Create(ctx, gen.FakeProduct())
				if err != nil {
					return fmt.Errorf("product: %w", err)
				}
				created = append(created, p)
			}
			if menus > 0 && (len(groupIDs) == 0 || len(created) == 0) {
				return fmt.Errorf("menus need at least one group and one product")
			}
			for i := 0; i < menus; i++ {
				picked := make(map[int64]decimal.Decimal)
				for j := 0; j < gofakeit.Number(1, 3); j++ {
					p := created[gofakeit.Number(0, len(created)-1)]
					picked[p.ID] = p.Price
				}
				groupID := groupIDs[gofakeit.Number(0, len(groupIDs)-1)]
				if _, err := menuSvc.Create(ctx, gen.FakeMenu(groupID, picked)); err != nil {
					return fmt.Errorf("menu: %w", err)
				}
			}
			for i := 0; i < tables; i++ {
				if _, err := tableSvc.Create(ctx, gen.FakeTable()); err != nil {
					return fmt.Errorf("table: %w", err)
				}
			}
			cmd.Printf("seeded groups=%d products=%d menus=%d tables=%d\n", groups, products, menus, tables)
			return nil
		},
	}
	cmd.Flags().IntVar(&groups, "groups", 3, "menu groups to create")
	cmd.Flags().IntVar(&products, "products", 10, "products to create")
	cmd.Flags().IntVar(&menus, "menus", 8, "menus to create")
	cmd.Flags().IntVar(&tables, "tables", 6, "order tables to create")
	return cmd
}
