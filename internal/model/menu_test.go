package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"demo/kitchenpos/internal/model"
)

func TestNewProduct(t *testing.T) {
	p, err := model.NewProduct("fried chicken", decimal.NewFromInt(16000))
	require.NoError(t, err)
	require.Equal(t, "fried chicken", p.Name)

	_, err = model.NewProduct("fried chicken", decimal.NewFromInt(-1))
	require.ErrorIs(t, err, model.ErrInvalidArgument)

	_, err = model.NewProduct("  ", decimal.Zero)
	require.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestNewMenuGroup_BlankName(t *testing.T) {
	_, err := model.NewMenuGroup("")
	require.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestNewMenu_NegativePrice(t *testing.T) {
	_, err := model.NewMenu("two chickens", decimal.NewFromInt(-100), 1, nil)
	require.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestMenu_ValidatePriceNotGreaterThan(t *testing.T) {
	m, err := model.NewMenu("two chickens", decimal.NewFromInt(19000), 1, []model.MenuProduct{
		{ProductID: 1, Quantity: 2},
	})
	require.NoError(t, err)

	require.NoError(t, m.ValidatePriceNotGreaterThan(decimal.NewFromInt(32000)))
	require.NoError(t, m.ValidatePriceNotGreaterThan(decimal.NewFromInt(19000)))
	require.ErrorIs(t, m.ValidatePriceNotGreaterThan(decimal.NewFromInt(18999)), model.ErrInvalidArgument)
	require.Equal(t, []int64{1}, m.ProductIDs())
}
