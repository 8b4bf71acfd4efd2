package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"demo/kitchenpos/internal/model"
)

func TestOrderTable_ChangeEmpty(t *testing.T) {
	tbl, err := model.NewOrderTable(0, true)
	require.NoError(t, err)
	require.NoError(t, tbl.ChangeEmpty(false))
	require.False(t, tbl.Empty)

	group := int64(7)
	tbl.TableGroupID = &group
	require.ErrorIs(t, tbl.ChangeEmpty(true), model.ErrInvalidArgument)
}

func TestOrderTable_ChangeNumberOfGuests(t *testing.T) {
	tbl, err := model.NewOrderTable(2, false)
	require.NoError(t, err)
	require.NoError(t, tbl.ChangeNumberOfGuests(4))
	require.Equal(t, 4, tbl.NumberOfGuests)
	require.ErrorIs(t, tbl.ChangeNumberOfGuests(-1), model.ErrInvalidArgument)

	tbl.Empty = true
	require.ErrorIs(t, tbl.ChangeNumberOfGuests(3), model.ErrInvalidArgument)

	_, err = model.NewOrderTable(-1, false)
	require.ErrorIs(t, err, model.ErrInvalidArgument)
}
