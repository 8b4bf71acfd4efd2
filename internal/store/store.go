package store

import (
	"context"

	"demo/kitchenpos/internal/model"
)

//go:generate mockgen -destination=storemock/mock_store.go -package=storemock demo/kitchenpos/internal/store MenuGroupRepository,ProductRepository,MenuRepository,TableRepository,OrderRepository

type MenuGroupRepository interface {
	CreateMenuGroup(ctx context.Context, g model.MenuGroup) (model.MenuGroup, error)
	ListMenuGroups(ctx context.Context) ([]model.MenuGroup, error)
	MenuGroupExists(ctx context.Context, id int64) (bool, error)
}

type ProductRepository interface {
	CreateProduct(ctx context.Context, p model.Product) (model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	FindProductsByIDs(ctx context.Context, ids []int64) ([]model.Product, error)
}

type MenuRepository interface {
	CreateMenu(ctx context.Context, m model.Menu) (model.Menu, error)
	ListMenus(ctx context.Context) ([]model.Menu, error)
	// CountMenusByIDs counts distinct existing menus among ids.
	CountMenusByIDs(ctx context.Context, ids []int64) (int, error)
}

type TableRepository interface {
	CreateTable(ctx context.Context, t model.OrderTable) (model.OrderTable, error)
	ListTables(ctx context.Context) ([]model.OrderTable, error)
	FindTable(ctx context.Context, id int64) (model.OrderTable, error)
	UpdateTable(ctx context.Context, t model.OrderTable) error
}

type OrderRepository interface {
	// CreateOrder stores the header and all line items in one transaction.
	CreateOrder(ctx context.Context, o model.Order) (model.Order, error)
	FindOrder(ctx context.Context, id int64) (model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	// UpdateOrderStatus locks the order, lets mutate change it and stores the new status.
	UpdateOrderStatus(ctx context.Context, id int64, mutate func(*model.Order) error) (model.Order, error)
	ExistsActiveOrderForTable(ctx context.Context, tableID int64) (bool, error)
}
