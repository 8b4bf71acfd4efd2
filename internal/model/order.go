package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusCooking    OrderStatus = "COOKING"
	StatusMeal       OrderStatus = "MEAL"
	StatusCompletion OrderStatus = "COMPLETION"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch st := OrderStatus(s); st {
	case StatusCooking, StatusMeal, StatusCompletion:
		return st, nil
	}
	return "", fmt.Errorf("order status %q: %w", s, ErrInvalidArgument)
}

// IsTerminal reports whether no further transition is allowed.
func (s OrderStatus) IsTerminal() bool { return s == StatusCompletion }

// ActiveStatuses are the statuses that keep a table occupied.
var ActiveStatuses = []OrderStatus{StatusCooking, StatusMeal}

// OrderLineItem carries a snapshot of the menu's name and price taken when the order was placed.
type OrderLineItem struct {
	Seq      int64           `json:"seq"`
	OrderID  int64           `json:"orderId"`
	MenuID   int64           `json:"menuId"`
	Price    decimal.Decimal `json:"price"`
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
}

func NewOrderLineItem(menuID int64, price decimal.Decimal, name string, quantity int64) OrderLineItem {
	return OrderLineItem{MenuID: menuID, Price: price, Name: name, Quantity: quantity}
}

func (li *OrderLineItem) AssignOrder(orderID int64) { li.OrderID = orderID }

type Order struct {
	ID           int64           `json:"id"`
	OrderTableID int64           `json:"orderTableId"`
	Status       OrderStatus     `json:"orderStatus"`
	OrderedTime  time.Time       `json:"orderedTime"`
	LineItems    []OrderLineItem `json:"orderLineItems"`
}

func NewOrder(orderTableID int64, status OrderStatus, items []OrderLineItem) (Order, error) {
	if len(items) == 0 {
		return Order{}, fmt.Errorf("order line items: must not be empty: %w", ErrInvalidArgument)
	}
	return Order{
		OrderTableID: orderTableID,
		Status:       status,
		LineItems:    items,
	}, nil
}

// MenuIDs returns the menu id of every line item in order, duplicates included.
func (o *Order) MenuIDs() []int64 {
	ids := make([]int64, 0, len(o.LineItems))
	for _, li := range o.LineItems {
		ids = append(ids, li.MenuID)
	}
	return ids
}

// ValidateLineItemsSize fails unless every line item points to a distinct existing menu.
func (o *Order) ValidateLineItemsSize(existingMenuCount int) error {
	if existingMenuCount != len(o.LineItems) {
		return fmt.Errorf("order references %d menus, %d exist: %w", len(o.LineItems), existingMenuCount, ErrInvalidArgument)
	}
	return nil
}

func (o *Order) ValidateStatus() error {
	if o.Status.IsTerminal() {
		return fmt.Errorf("order %d is %s: %w", o.ID, o.Status, ErrInvalidArgument)
	}
	return nil
}

// ChangeStatus overwrites the status; callers check ValidateStatus first.
func (o *Order) ChangeStatus(status OrderStatus) { o.Status = status }

func (o *Order) ChangeLineItems(items []OrderLineItem) { o.LineItems = items }
