package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type MenuGroup struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewMenuGroup(name string) (MenuGroup, error) {
	if strings.TrimSpace(name) == "" {
		return MenuGroup{}, fmt.Errorf("menu group name: required: %w", ErrInvalidArgument)
	}
	return MenuGroup{Name: name}, nil
}

type Product struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

func NewProduct(name string, price decimal.Decimal) (Product, error) {
	if strings.TrimSpace(name) == "" {
		return Product{}, fmt.Errorf("product name: required: %w", ErrInvalidArgument)
	}
	if price.IsNegative() {
		return Product{}, fmt.Errorf("product price %s: must be >= 0: %w", price, ErrInvalidArgument)
	}
	return Product{Name: name, Price: price}, nil
}

type MenuProduct struct {
	Seq       int64 `json:"seq"`
	MenuID    int64 `json:"menuId"`
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type Menu struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	MenuGroupID  int64           `json:"menuGroupId"`
	MenuProducts []MenuProduct   `json:"menuProducts"`
}

// NewMenu builds an unsaved menu. Group and product existence are checked by the caller.
func NewMenu(name string, price decimal.Decimal, menuGroupID int64, products []MenuProduct) (Menu, error) {
	if price.IsNegative() {
		return Menu{}, fmt.Errorf("menu price %s: must be >= 0: %w", price, ErrInvalidArgument)
	}
	return Menu{
		Name:         name,
		Price:        price,
		MenuGroupID:  menuGroupID,
		MenuProducts: products,
	}, nil
}

func (m *Menu) ProductIDs() []int64 {
	ids := make([]int64, 0, len(m.MenuProducts))
	for _, mp := range m.MenuProducts {
		ids = append(ids, mp.ProductID)
	}
	return ids
}

// ValidatePriceNotGreaterThan fails when the menu costs more than its products bought separately.
func (m *Menu) ValidatePriceNotGreaterThan(sum decimal.Decimal) error {
	if m.Price.GreaterThan(sum) {
		return fmt.Errorf("menu price %s exceeds products sum %s: %w", m.Price, sum, ErrInvalidArgument)
	}
	return nil
}

func (m *Menu) ChangeMenuProducts(products []MenuProduct) {
	m.MenuProducts = append([]MenuProduct(nil), products...)
}
