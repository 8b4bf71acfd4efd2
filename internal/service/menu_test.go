package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"demo/kitchenpos/internal/dto"
	"demo/kitchenpos/internal/model"
	"demo/kitchenpos/internal/store/storemock"
)

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestMenuGroupService(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := storemock.NewMockMenuGroupRepository(ctrl)
	svc := NewMenuGroupService(repo)

	repo.EXPECT().CreateMenuGroup(gomock.Any(), model.MenuGroup{Name: "chicken"}).Return(model.MenuGroup{ID: 1, Name: "chicken"}, nil)
	g, err := svc.Create(context.Background(), dto.MenuGroupRequest{Name: "chicken"})
	require.NoError(t, err)
	require.Equal(t, int64(1), g.ID)

	_, err = svc.Create(context.Background(), dto.MenuGroupRequest{})
	require.ErrorIs(t, err, model.ErrInvalidArgument)

	repo.EXPECT().ListMenuGroups(gomock.Any()).Return([]model.MenuGroup{g}, nil)
	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestProductService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := storemock.NewMockProductRepository(ctrl)
	svc := NewProductService(repo)

	repo.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p model.Product) (model.Product, error) {
			p.ID = 7
			return p, nil
		})
	p, err := svc.Create(context.Background(), dto.ProductRequest{Name: "fried", Price: dec(16000)})
	require.NoError(t, err)
	require.Equal(t, int64(7), p.ID)
	require.True(t, p.Price.Equal(decimal.NewFromInt(16000)))

	_, err = svc.Create(context.Background(), dto.ProductRequest{Name: "fried"})
	require.ErrorIs(t, err, model.ErrInvalidArgument)
	_, err = svc.Create(context.Background(), dto.ProductRequest{Name: "fried", Price: dec(-1)})
	require.ErrorIs(t, err, model.ErrInvalidArgument)
}

type menuMocks struct {
	menus    *storemock.MockMenuRepository
	groups   *storemock.MockMenuGroupRepository
	products *storemock.MockProductRepository
}

func newMenuService(t *testing.T) (*MenuService, menuMocks) {
	ctrl := gomock.NewController(t)
	m := menuMocks{
		menus:    storemock.NewMockMenuRepository(ctrl),
		groups:   storemock.NewMockMenuGroupRepository(ctrl),
		products: storemock.NewMockProductRepository(ctrl),
	}
	return NewMenuService(m.menus, m.groups, m.products, discardLogger()), m
}

func menuRequest(price int64) dto.MenuRequest {
	return dto.MenuRequest{
		Name:        "two chickens",
		Price:       dec(price),
		MenuGroupID: 1,
		MenuProducts: []dto.MenuProductRequest{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
	}
}

func knownProducts() []model.Product {
	return []model.Product{
		{ID: 1, Name: "fried", Price: decimal.NewFromInt(16000)},
		{ID: 2, Name: "seasoned", Price: decimal.NewFromInt(17000)},
	}
}

func TestMenuService_Create(t *testing.T) {
	svc, m := newMenuService(t)

	m.groups.EXPECT().MenuGroupExists(gomock.Any(), int64(1)).Return(true, nil)
	m.products.EXPECT().FindProductsByIDs(gomock.Any(), []int64{1, 2}).Return(knownProducts(), nil)
	m.menus.EXPECT().CreateMenu(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, menu model.Menu) (model.Menu, error) {
			menu.ID = 3
			return menu, nil
		})

	got, err := svc.Create(context.Background(), menuRequest(49000))
	require.NoError(t, err)
	require.Equal(t, int64(3), got.ID)
	require.Len(t, got.MenuProducts, 2)
}

func TestMenuService_Create_PriceAboveProducts(t *testing.T) {
	svc, m := newMenuService(t)

	m.groups.EXPECT().MenuGroupExists(gomock.Any(), int64(1)).Return(true, nil)
	m.products.EXPECT().FindProductsByIDs(gomock.Any(), []int64{1, 2}).Return(knownProducts(), nil)

	_, err := svc.Create(context.Background(), menuRequest(49001))
	require.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestMenuService_Create_UnknownGroup(t *testing.T) {
	svc, m := newMenuService(t)

	m.groups.EXPECT().MenuGroupExists(gomock.Any(), int64(1)).Return(false, nil)

	_, err := svc.Create(context.Background(), menuRequest(1000))
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestMenuService_Create_UnknownProduct(t *testing.T) {
	svc, m := newMenuService(t)

	m.groups.EXPECT().MenuGroupExists(gomock.Any(), int64(1)).Return(true, nil)
	m.products.EXPECT().FindProductsByIDs(gomock.Any(), []int64{1, 2}).Return(knownProducts()[:1], nil)

	_, err := svc.Create(context.Background(), menuRequest(1000))
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestMenuService_Create_BadPrice(t *testing.T) {
	svc, _ := newMenuService(t)

	req := menuRequest(0)
	req.Price = nil
	_, err := svc.Create(context.Background(), req)
	require.ErrorIs(t, err, model.ErrInvalidArgument)

	_, err = svc.Create(context.Background(), menuRequest(-1))
	require.ErrorIs(t, err, model.ErrInvalidArgument)
}
