package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"demo/kitchenpos/internal/model"
)

var orderedAt = time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

var (
	orderCols    = []string{"id", "order_table_id", "order_status", "ordered_time"}
	lineItemCols = []string{"seq", "order_id", "menu_id", "price", "name", "quantity"}
)

func newMockRepo(t *testing.T) (*Repo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return New(mock), mock
}

func newOrder() model.Order {
	return model.Order{
		OrderTableID: 3,
		Status:       model.StatusCooking,
		OrderedTime:  orderedAt,
		LineItems: []model.OrderLineItem{
			model.NewOrderLineItem(7, decimal.NewFromInt(16000), "fried set", 2),
			model.NewOrderLineItem(8, decimal.NewFromInt(9000), "noodle set", 1),
		},
	}
}

func TestRepo_CreateOrder(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO orders (order_table_id, order_status, ordered_time)`)).
		WithArgs(int64(3), "COOKING", orderedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(10)))
	mock.ExpectQuery(regexp.QuoteMeta(
		`INSERT INTO order_line_items (order_id, menu_id, price, name, quantity) VALUES ($1,$2,$3,$4,$5),($1,$6,$7,$8,$9) RETURNING seq`)).
		WithArgs(int64(10), int64(7), pgxmock.AnyArg(), "fried set", int64(2), int64(8), pgxmock.AnyArg(), "noodle set", int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"seq"}).AddRow(int64(22)).AddRow(int64(21)))
	mock.ExpectCommit()

	in := newOrder()
	got, err := repo.CreateOrder(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, int64(10), got.ID)
	require.Len(t, got.LineItems, 2)
	require.Equal(t, int64(21), got.LineItems[0].Seq)
	require.Equal(t, int64(7), got.LineItems[0].MenuID)
	require.Equal(t, int64(22), got.LineItems[1].Seq)
	for _, li := range got.LineItems {
		require.Equal(t, int64(10), li.OrderID)
	}
	require.Zero(t, in.LineItems[0].OrderID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_CreateOrder_RollsBackWhenLineItemsFail(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO orders`)).
		WithArgs(int64(3), "COOKING", orderedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(10)))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO order_line_items`)).
		WillReturnError(errors.New("insert or update on table \"order_line_items\" violates foreign key constraint"))
	mock.ExpectRollback()

	_, err := repo.CreateOrder(context.Background(), newOrder())
	require.ErrorContains(t, err, "insert line items")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_CreateOrder_RollsBackOnShortReturning(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO orders`)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(10)))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO order_line_items`)).
		WillReturnRows(pgxmock.NewRows([]string{"seq"}).AddRow(int64(21)))
	mock.ExpectRollback()

	_, err := repo.CreateOrder(context.Background(), newOrder())
	require.ErrorContains(t, err, "1 of 2 rows returned")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_FindOrder_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM orders WHERE id=$1`)).
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindOrder(context.Background(), 404)
	require.ErrorIs(t, err, model.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_ListOrders_GroupsLineItems(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM orders ORDER BY id`)).
		WillReturnRows(pgxmock.NewRows(orderCols).
			AddRow(int64(1), int64(3), "COOKING", orderedAt).
			AddRow(int64(2), int64(4), "MEAL", orderedAt).
			AddRow(int64(3), int64(3), "COMPLETION", orderedAt))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM order_line_items WHERE order_id = ANY($1) ORDER BY seq`)).
		WithArgs([]int64{1, 2, 3}).
		WillReturnRows(pgxmock.NewRows(lineItemCols).
			AddRow(int64(11), int64(1), int64(7), decimal.NewFromInt(16000), "fried set", int64(2)).
			AddRow(int64(12), int64(3), int64(8), decimal.NewFromInt(9000), "noodle set", int64(1)).
			AddRow(int64(13), int64(1), int64(8), decimal.NewFromInt(9000), "noodle set", int64(3)))

	got, err := repo.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	require.Equal(t, model.StatusCooking, got[0].Status)
	require.Len(t, got[0].LineItems, 2)
	require.Equal(t, int64(11), got[0].LineItems[0].Seq)
	require.Equal(t, int64(13), got[0].LineItems[1].Seq)

	require.NotNil(t, got[1].LineItems)
	require.Empty(t, got[1].LineItems)

	require.Len(t, got[2].LineItems, 1)
	require.Equal(t, int64(8), got[2].LineItems[0].MenuID)
	require.True(t, decimal.NewFromInt(9000).Equal(got[2].LineItems[0].Price))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_ListOrders_EmptySkipsLineItemQuery(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM orders ORDER BY id`)).
		WillReturnRows(pgxmock.NewRows(orderCols))

	got, err := repo.ListOrders(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_UpdateOrderStatus(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM orders WHERE id=$1 FOR UPDATE`)).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows(orderCols).AddRow(int64(5), int64(3), "COOKING", orderedAt))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE orders SET order_status=$2 WHERE id=$1`)).
		WithArgs(int64(5), "MEAL").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM order_line_items WHERE order_id=$1 ORDER BY seq`)).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows(lineItemCols).
			AddRow(int64(31), int64(5), int64(7), decimal.NewFromInt(16000), "fried set", int64(1)))
	mock.ExpectCommit()

	got, err := repo.UpdateOrderStatus(context.Background(), 5, func(o *model.Order) error {
		if err := o.ValidateStatus(); err != nil {
			return err
		}
		o.ChangeStatus(model.StatusMeal)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, model.StatusMeal, got.Status)
	require.Len(t, got.LineItems, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_UpdateOrderStatus_MutateErrorLeavesRowUnchanged(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows(orderCols).AddRow(int64(5), int64(3), "COMPLETION", orderedAt))
	mock.ExpectRollback()

	_, err := repo.UpdateOrderStatus(context.Background(), 5, func(o *model.Order) error {
		if err := o.ValidateStatus(); err != nil {
			return err
		}
		o.ChangeStatus(model.StatusMeal)
		return nil
	})
	require.ErrorIs(t, err, model.ErrInvalidArgument)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_UpdateOrderStatus_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	called := false
	_, err := repo.UpdateOrderStatus(context.Background(), 404, func(*model.Order) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, model.ErrNotFound)
	require.False(t, called)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestValuesList(t *testing.T) {
	sql, args := valuesList(1, [][]any{{"a", 1}, {"b", 2}, {"c", 3}})
	require.Equal(t, "($1,$2,$3),($1,$4,$5),($1,$6,$7)", sql)
	require.Equal(t, []any{"a", 1, "b", 2, "c", 3}, args)
}
