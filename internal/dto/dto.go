// Package dto holds the request payloads accepted over HTTP and Kafka.
package dto

import "github.com/shopspring/decimal"

type MenuGroupRequest struct {
	Name string `json:"name"`
}

type ProductRequest struct {
	Name  string           `json:"name"`
	Price *decimal.Decimal `json:"price"`
}

type MenuProductRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type MenuRequest struct {
	Name         string               `json:"name"`
	Price        *decimal.Decimal     `json:"price"`
	MenuGroupID  int64                `json:"menuGroupId"`
	MenuProducts []MenuProductRequest `json:"menuProducts"`
}

type TableRequest struct {
	NumberOfGuests int  `json:"numberOfGuests"`
	Empty          bool `json:"empty"`
}

type TableEmptyRequest struct {
	Empty bool `json:"empty"`
}

type TableGuestsRequest struct {
	NumberOfGuests int `json:"numberOfGuests"`
}

type OrderLineItemRequest struct {
	Seq       int64           `json:"seq,omitempty"`
	MenuID    int64           `json:"menuId"`
	MenuPrice decimal.Decimal `json:"menuPrice"`
	MenuName  string          `json:"menuName"`
	Quantity  int64           `json:"quantity"`
}

// OrderRequest asks for a new order. OrderStatus is advisory: new orders always start cooking.
type OrderRequest struct {
	OrderTableID   int64                  `json:"orderTableId"`
	OrderStatus    string                 `json:"orderStatus,omitempty"`
	OrderLineItems []OrderLineItemRequest `json:"orderLineItems"`
}

type OrderStatusRequest struct {
	OrderStatus string `json:"orderStatus"`
}
