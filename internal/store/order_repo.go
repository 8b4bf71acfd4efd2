package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"demo/kitchenpos/internal/model"
)

const lineItemColumns = `seq, order_id, menu_id, price, name, quantity`

func (r *Repo) CreateOrder(ctx context.Context, o model.Order) (model.Order, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return model.Order{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (order_table_id, order_status, ordered_time) VALUES ($1,$2,$3) RETURNING id
	`, o.OrderTableID, string(o.Status), o.OrderedTime).Scan(&o.ID)
	if err != nil {
		return model.Order{}, fmt.Errorf("insert order: %w", err)
	}

	items := make([]model.OrderLineItem, len(o.LineItems))
	copy(items, o.LineItems)
	if len(items) > 0 {
		rows := make([][]any, len(items))
		for i := range items {
			items[i].AssignOrder(o.ID)
			rows[i] = []any{items[i].MenuID, items[i].Price, items[i].Name, items[i].Quantity}
		}
		values, rest := valuesList(1, rows)
		seqs, err := insertReturningSeqs(ctx, tx,
			`INSERT INTO order_line_items (order_id, menu_id, price, name, quantity) VALUES `+values+` RETURNING seq`,
			append([]any{o.ID}, rest...))
		if err != nil {
			return model.Order{}, fmt.Errorf("insert line items: %w", err)
		}
		if len(seqs) != len(items) {
			return model.Order{}, fmt.Errorf("insert line items: %d of %d rows returned", len(seqs), len(items))
		}
		for i := range items {
			items[i].Seq = seqs[i]
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Order{}, err
	}
	o.ChangeLineItems(items)
	return o, nil
}

func (r *Repo) FindOrder(ctx context.Context, id int64) (model.Order, error) {
	o, err := scanOrder(r.Pool.QueryRow(ctx, `
		SELECT id, order_table_id, order_status, ordered_time FROM orders WHERE id=$1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Order{}, fmt.Errorf("order %d: %w", id, model.ErrNotFound)
		}
		return model.Order{}, err
	}
	items, err := findLineItems(ctx, r.Pool, id)
	if err != nil {
		return model.Order{}, err
	}
	o.ChangeLineItems(items)
	return o, nil
}

// ListOrders loads orders and their line items with two queries.
func (r *Repo) ListOrders(ctx context.Context) ([]model.Order, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, order_table_id, order_status, ordered_time FROM orders ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	orders := []model.Order{}
	ids := []int64{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		o.LineItems = []model.OrderLineItem{}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return orders, nil
	}

	items, err := queryLineItems(ctx, r.Pool,
		`SELECT `+lineItemColumns+` FROM order_line_items WHERE order_id = ANY($1) ORDER BY seq`, ids)
	if err != nil {
		return nil, err
	}
	byOrder := make(map[int64][]model.OrderLineItem, len(ids))
	for _, li := range items {
		byOrder[li.OrderID] = append(byOrder[li.OrderID], li)
	}
	for i := range orders {
		if li, ok := byOrder[orders[i].ID]; ok {
			orders[i].ChangeLineItems(li)
		}
	}
	return orders, nil
}

func (r *Repo) UpdateOrderStatus(ctx context.Context, id int64, mutate func(*model.Order) error) (model.Order, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return model.Order{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	o, err := scanOrder(tx.QueryRow(ctx, `
		SELECT id, order_table_id, order_status, ordered_time FROM orders WHERE id=$1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Order{}, fmt.Errorf("order %d: %w", id, model.ErrNotFound)
		}
		return model.Order{}, err
	}
	if err := mutate(&o); err != nil {
		return model.Order{}, err
	}
	if _, err := tx.Exec(ctx, `UPDATE orders SET order_status=$2 WHERE id=$1`, id, string(o.Status)); err != nil {
		return model.Order{}, fmt.Errorf("update order status: %w", err)
	}
	items, err := findLineItems(ctx, tx, id)
	if err != nil {
		return model.Order{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.Order{}, err
	}
	o.ChangeLineItems(items)
	return o, nil
}

func (r *Repo) ExistsActiveOrderForTable(ctx context.Context, tableID int64) (bool, error) {
	statuses := make([]string, 0, len(model.ActiveStatuses))
	for _, s := range model.ActiveStatuses {
		statuses = append(statuses, string(s))
	}
	var ok bool
	err := r.Pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM orders WHERE order_table_id=$1 AND order_status = ANY($2))
	`, tableID, statuses).Scan(&ok)
	return ok, err
}

func scanOrder(row pgx.Row) (model.Order, error) {
	var (
		o      model.Order
		status string
	)
	if err := row.Scan(&o.ID, &o.OrderTableID, &status, &o.OrderedTime); err != nil {
		return model.Order{}, err
	}
	o.Status = model.OrderStatus(status)
	return o, nil
}

func findLineItems(ctx context.Context, q querier, orderID int64) ([]model.OrderLineItem, error) {
	return queryLineItems(ctx, q, `SELECT `+lineItemColumns+` FROM order_line_items WHERE order_id=$1 ORDER BY seq`, orderID)
}

func queryLineItems(ctx context.Context, q querier, sql string, args ...any) ([]model.OrderLineItem, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.OrderLineItem{}
	for rows.Next() {
		var li model.OrderLineItem
		if err := rows.Scan(&li.Seq, &li.OrderID, &li.MenuID, &li.Price, &li.Name, &li.Quantity); err != nil {
			return nil, err
		}
		out = append(out, li)
	}
	return out, rows.Err()
}
