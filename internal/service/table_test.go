package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"demo/kitchenpos/internal/dto"
	"demo/kitchenpos/internal/model"
	"demo/kitchenpos/internal/store/storemock"
)

func newTableService(t *testing.T) (*TableService, *storemock.MockTableRepository, *storemock.MockOrderRepository) {
	ctrl := gomock.NewController(t)
	tables := storemock.NewMockTableRepository(ctrl)
	orders := storemock.NewMockOrderRepository(ctrl)
	return NewTableService(tables, orders), tables, orders
}

func TestTableService_Create(t *testing.T) {
	svc, tables, _ := newTableService(t)

	tables.EXPECT().CreateTable(gomock.Any(), model.OrderTable{NumberOfGuests: 0, Empty: true}).
		Return(model.OrderTable{ID: 1, Empty: true}, nil)
	got, err := svc.Create(context.Background(), dto.TableRequest{Empty: true})
	require.NoError(t, err)
	require.Equal(t, int64(1), got.ID)

	_, err = svc.Create(context.Background(), dto.TableRequest{NumberOfGuests: -1})
	require.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestTableService_ChangeEmpty(t *testing.T) {
	svc, tables, orders := newTableService(t)

	tables.EXPECT().FindTable(gomock.Any(), int64(1)).Return(model.OrderTable{ID: 1, NumberOfGuests: 3}, nil)
	orders.EXPECT().ExistsActiveOrderForTable(gomock.Any(), int64(1)).Return(false, nil)
	tables.EXPECT().UpdateTable(gomock.Any(), model.OrderTable{ID: 1, NumberOfGuests: 3, Empty: true}).Return(nil)

	got, err := svc.ChangeEmpty(context.Background(), 1, dto.TableEmptyRequest{Empty: true})
	require.NoError(t, err)
	require.True(t, got.Empty)
}

func TestTableService_ChangeEmpty_ActiveOrder(t *testing.T) {
	svc, tables, orders := newTableService(t)

	tables.EXPECT().FindTable(gomock.Any(), int64(1)).Return(model.OrderTable{ID: 1}, nil)
	orders.EXPECT().ExistsActiveOrderForTable(gomock.Any(), int64(1)).Return(true, nil)

	_, err := svc.ChangeEmpty(context.Background(), 1, dto.TableEmptyRequest{Empty: true})
	require.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestTableService_ChangeEmpty_UnknownTable(t *testing.T) {
	svc, tables, _ := newTableService(t)

	tables.EXPECT().FindTable(gomock.Any(), int64(9)).Return(model.OrderTable{}, model.ErrNotFound)

	_, err := svc.ChangeEmpty(context.Background(), 9, dto.TableEmptyRequest{Empty: true})
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestTableService_ChangeNumberOfGuests(t *testing.T) {
	svc, tables, _ := newTableService(t)

	tables.EXPECT().FindTable(gomock.Any(), int64(1)).Return(model.OrderTable{ID: 1, NumberOfGuests: 2}, nil)
	tables.EXPECT().UpdateTable(gomock.Any(), model.OrderTable{ID: 1, NumberOfGuests: 5}).Return(nil)

	got, err := svc.ChangeNumberOfGuests(context.Background(), 1, dto.TableGuestsRequest{NumberOfGuests: 5})
	require.NoError(t, err)
	require.Equal(t, 5, got.NumberOfGuests)

	tables.EXPECT().FindTable(gomock.Any(), int64(2)).Return(model.OrderTable{ID: 2, Empty: true}, nil)
	_, err = svc.ChangeNumberOfGuests(context.Background(), 2, dto.TableGuestsRequest{NumberOfGuests: 5})
	require.ErrorIs(t, err, model.ErrInvalidArgument)
}
