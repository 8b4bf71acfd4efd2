package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"demo/kitchenpos/internal/model"
)

func (r *Repo) CreateTable(ctx context.Context, t model.OrderTable) (model.OrderTable, error) {
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO order_tables (table_group_id, number_of_guests, empty) VALUES ($1,$2,$3) RETURNING id
	`, t.TableGroupID, t.NumberOfGuests, t.Empty).Scan(&t.ID)
	if err != nil {
		return model.OrderTable{}, fmt.Errorf("insert table: %w", err)
	}
	return t, nil
}

func (r *Repo) ListTables(ctx context.Context) ([]model.OrderTable, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, table_group_id, number_of_guests, empty FROM order_tables ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.OrderTable{}
	for rows.Next() {
		var t model.OrderTable
		if err := rows.Scan(&t.ID, &t.TableGroupID, &t.NumberOfGuests, &t.Empty); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *Repo) FindTable(ctx context.Context, id int64) (model.OrderTable, error) {
	var t model.OrderTable
	err := r.Pool.QueryRow(ctx, `
		SELECT id, table_group_id, number_of_guests, empty FROM order_tables WHERE id=$1
	`, id).Scan(&t.ID, &t.TableGroupID, &t.NumberOfGuests, &t.Empty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.OrderTable{}, fmt.Errorf("table %d: %w", id, model.ErrNotFound)
		}
		return model.OrderTable{}, err
	}
	return t, nil
}

func (r *Repo) UpdateTable(ctx context.Context, t model.OrderTable) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE order_tables SET table_group_id=$2, number_of_guests=$3, empty=$4 WHERE id=$1
	`, t.ID, t.TableGroupID, t.NumberOfGuests, t.Empty)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table %d: %w", t.ID, model.ErrNotFound)
	}
	return nil
}
