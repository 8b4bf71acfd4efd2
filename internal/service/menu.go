package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"demo/kitchenpos/internal/dto"
	"demo/kitchenpos/internal/model"
	"demo/kitchenpos/internal/store"
)

type MenuGroupService struct {
	groups store.MenuGroupRepository
}

func NewMenuGroupService(groups store.MenuGroupRepository) *MenuGroupService {
	return &MenuGroupService{groups: groups}
}

func (s *MenuGroupService) Create(ctx context.Context, req dto.MenuGroupRequest) (model.MenuGroup, error) {
	g, err := model.NewMenuGroup(req.Name)
	if err != nil {
		return model.MenuGroup{}, err
	}
	return s.groups.CreateMenuGroup(ctx, g)
}

func (s *MenuGroupService) List(ctx context.Context) ([]model.MenuGroup, error) {
	return s.groups.ListMenuGroups(ctx)
}

type ProductService struct {
	products store.ProductRepository
}

func NewProductService(products store.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) Create(ctx context.Context, req dto.ProductRequest) (model.Product, error) {
	if req.Price == nil {
		return model.Product{}, fmt.Errorf("product price: missing: %w", model.ErrInvalidArgument)
	}
	p, err := model.NewProduct(req.Name, *req.Price)
	if err != nil {
		return model.Product{}, err
	}
	return s.products.CreateProduct(ctx, p)
}

func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	return s.products.ListProducts(ctx)
}

type MenuService struct {
	menus    store.MenuRepository
	groups   store.MenuGroupRepository
	products store.ProductRepository
	log      *slog.Logger
}

func NewMenuService(menus store.MenuRepository, groups store.MenuGroupRepository, products store.ProductRepository, log *slog.Logger) *MenuService {
	return &MenuService{menus: menus, groups: groups, products: products, log: log}
}

// Create registers a menu whose price does not exceed the sum of its products.
func (s *MenuService) Create(ctx context.Context, req dto.MenuRequest) (model.Menu, error) {
	if req.Price == nil {
		return model.Menu{}, fmt.Errorf("menu price: missing: %w", model.ErrInvalidArgument)
	}
	mps := make([]model.MenuProduct, 0, len(req.MenuProducts))
	for _, mp := range req.MenuProducts {
		mps = append(mps, model.MenuProduct{ProductID: mp.ProductID, Quantity: mp.Quantity})
	}
	menu, err := model.NewMenu(req.Name, *req.Price, req.MenuGroupID, mps)
	if err != nil {
		return model.Menu{}, err
	}

	ok, err := s.groups.MenuGroupExists(ctx, menu.MenuGroupID)
	if err != nil {
		return model.Menu{}, fmt.Errorf("find menu group: %w", err)
	}
	if !ok {
		return model.Menu{}, fmt.Errorf("menu group %d: %w", menu.MenuGroupID, model.ErrNotFound)
	}

	products, err := s.products.FindProductsByIDs(ctx, menu.ProductIDs())
	if err != nil {
		return model.Menu{}, fmt.Errorf("find products: %w", err)
	}
	prices := make(map[int64]decimal.Decimal, len(products))
	for _, p := range products {
		prices[p.ID] = p.Price
	}
	sum := decimal.Zero
	for _, mp := range menu.MenuProducts {
		price, ok := prices[mp.ProductID]
		if !ok {
			return model.Menu{}, fmt.Errorf("product %d: %w", mp.ProductID, model.ErrNotFound)
		}
		sum = sum.Add(price.Mul(decimal.NewFromInt(mp.Quantity)))
	}
	if err := menu.ValidatePriceNotGreaterThan(sum); err != nil {
		return model.Menu{}, err
	}

	saved, err := s.menus.CreateMenu(ctx, menu)
	if err != nil {
		return model.Menu{}, fmt.Errorf("save menu: %w", err)
	}
	s.log.Debug("menu created", slog.Int64("menu_id", saved.ID), slog.String("price", saved.Price.String()))
	return saved, nil
}

func (s *MenuService) List(ctx context.Context) ([]model.Menu, error) {
	return s.menus.ListMenus(ctx)
}
