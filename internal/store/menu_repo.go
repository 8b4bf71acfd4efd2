package store

import (
	"context"
	"fmt"

	"demo/kitchenpos/internal/model"
)

func (r *Repo) CreateMenuGroup(ctx context.Context, g model.MenuGroup) (model.MenuGroup, error) {
	err := r.Pool.QueryRow(ctx, `INSERT INTO menu_groups (name) VALUES ($1) RETURNING id`, g.Name).Scan(&g.ID)
	if err != nil {
		return model.MenuGroup{}, fmt.Errorf("insert menu group: %w", err)
	}
	return g, nil
}

func (r *Repo) ListMenuGroups(ctx context.Context) ([]model.MenuGroup, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, name FROM menu_groups ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.MenuGroup{}
	for rows.Next() {
		var g model.MenuGroup
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *Repo) MenuGroupExists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM menu_groups WHERE id=$1)`, id).Scan(&ok)
	return ok, err
}

func (r *Repo) CreateProduct(ctx context.Context, p model.Product) (model.Product, error) {
	err := r.Pool.QueryRow(ctx, `INSERT INTO products (name, price) VALUES ($1,$2) RETURNING id`, p.Name, p.Price).Scan(&p.ID)
	if err != nil {
		return model.Product{}, fmt.Errorf("insert product: %w", err)
	}
	return p, nil
}

func (r *Repo) ListProducts(ctx context.Context) ([]model.Product, error) {
	return r.queryProducts(ctx, `SELECT id, name, price FROM products ORDER BY id`)
}

func (r *Repo) FindProductsByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	return r.queryProducts(ctx, `SELECT id, name, price FROM products WHERE id = ANY($1) ORDER BY id`, ids)
}

func (r *Repo) queryProducts(ctx context.Context, sql string, args ...any) ([]model.Product, error) {
	rows, err := r.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) CreateMenu(ctx context.Context, m model.Menu) (model.Menu, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return model.Menu{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, `
		INSERT INTO menus (name, price, menu_group_id) VALUES ($1,$2,$3) RETURNING id
	`, m.Name, m.Price, m.MenuGroupID).Scan(&m.ID)
	if err != nil {
		return model.Menu{}, fmt.Errorf("insert menu: %w", err)
	}

	products := make([]model.MenuProduct, len(m.MenuProducts))
	copy(products, m.MenuProducts)
	if len(products) > 0 {
		rows := make([][]any, len(products))
		for i := range products {
			products[i].MenuID = m.ID
			rows[i] = []any{products[i].ProductID, products[i].Quantity}
		}
		values, rest := valuesList(1, rows)
		seqs, err := insertReturningSeqs(ctx, tx,
			`INSERT INTO menu_products (menu_id, product_id, quantity) VALUES `+values+` RETURNING seq`,
			append([]any{m.ID}, rest...))
		if err != nil {
			return model.Menu{}, fmt.Errorf("insert menu products: %w", err)
		}
		if len(seqs) != len(products) {
			return model.Menu{}, fmt.Errorf("insert menu products: %d of %d rows returned", len(seqs), len(products))
		}
		for i := range products {
			products[i].Seq = seqs[i]
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return model.Menu{}, err
	}
	m.ChangeMenuProducts(products)
	return m, nil
}

func (r *Repo) ListMenus(ctx context.Context) ([]model.Menu, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, name, price, menu_group_id FROM menus ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	menus := []model.Menu{}
	ids := []int64{}
	for rows.Next() {
		var m model.Menu
		if err := rows.Scan(&m.ID, &m.Name, &m.Price, &m.MenuGroupID); err != nil {
			return nil, err
		}
		m.MenuProducts = []model.MenuProduct{}
		menus = append(menus, m)
		ids = append(ids, m.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return menus, nil
	}

	pRows, err := r.Pool.Query(ctx, `
		SELECT seq, menu_id, product_id, quantity FROM menu_products WHERE menu_id = ANY($1) ORDER BY seq`, ids)
	if err != nil {
		return nil, err
	}
	defer pRows.Close()
	byMenu := make(map[int64][]model.MenuProduct, len(ids))
	for pRows.Next() {
		var mp model.MenuProduct
		if err := pRows.Scan(&mp.Seq, &mp.MenuID, &mp.ProductID, &mp.Quantity); err != nil {
			return nil, err
		}
		byMenu[mp.MenuID] = append(byMenu[mp.MenuID], mp)
	}
	if err := pRows.Err(); err != nil {
		return nil, err
	}
	for i := range menus {
		if mps, ok := byMenu[menus[i].ID]; ok {
			menus[i].MenuProducts = mps
		}
	}
	return menus, nil
}

func (r *Repo) CountMenusByIDs(ctx context.Context, ids []int64) (int, error) {
	var n int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM menus WHERE id = ANY($1)`, ids).Scan(&n)
	return n, err
}
