package gen

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"demo/kitchenpos/internal/dto"
)

func SeedOnce() { gofakeit.Seed(time.Now().UnixNano()) }

// fakePrice returns a price in whole hundreds between 1000 and 30000.
func fakePrice() decimal.Decimal {
	return decimal.NewFromInt(int64(gofakeit.Number(10, 300)) * 100)
}

func FakeMenuGroup() dto.MenuGroupRequest {
	return dto.MenuGroupRequest{Name: gofakeit.Adjective() + " set"}
}

func FakeProduct() dto.ProductRequest {
	p := fakePrice()
	return dto.ProductRequest{Name: gofakeit.Lunch(), Price: &p}
}

// FakeMenu builds a menu over the given products, priced at or below their total.
func FakeMenu(groupID int64, products map[int64]decimal.Decimal) dto.MenuRequest {
	req := dto.MenuRequest{Name: gofakeit.Dinner(), MenuGroupID: groupID}
	sum := decimal.Zero
	for id, price := range products {
		q := int64(gofakeit.Number(1, 3))
		req.MenuProducts = append(req.MenuProducts, dto.MenuProductRequest{ProductID: id, Quantity: q})
		sum = sum.Add(price.Mul(decimal.NewFromInt(q)))
	}
	discount := decimal.NewFromInt(int64(gofakeit.Number(0, 20))).Div(decimal.NewFromInt(100))
	price := sum.Sub(sum.Mul(discount)).Round(0)
	req.Price = &price
	return req
}

func FakeTable() dto.TableRequest {
	return dto.TableRequest{NumberOfGuests: gofakeit.Number(0, 8), Empty: gofakeit.Bool()}
}

// FakeOrderRequest orders between one and len(menuIDs) distinct menus for tableID.
func FakeOrderRequest(tableID int64, menuIDs []int64) dto.OrderRequest {
	req := dto.OrderRequest{OrderTableID: tableID, OrderLineItems: []dto.OrderLineItemRequest{}}
	if len(menuIDs) == 0 {
		return req
	}
	ids := append([]int64(nil), menuIDs...)
	gofakeit.ShuffleAnySlice(ids)
	n := gofakeit.Number(1, len(ids))
	for _, id := range ids[:n] {
		req.OrderLineItems = append(req.OrderLineItems, dto.OrderLineItemRequest{
			MenuID:    id,
			MenuPrice: fakePrice(),
			MenuName:  gofakeit.Dinner(),
			Quantity:  int64(gofakeit.Number(1, 4)),
		})
	}
	return req
}

// SendOrderRequest publishes req keyed by its table so one table's orders stay on one partition.
func SendOrderRequest(ctx context.Context, w *kafka.Writer, req dto.OrderRequest, source string) (int, error) {
	val, err := json.Marshal(req)
	if err != nil {
		return 0, fmt.Errorf("marshal order request: %w", err)
	}
	err = w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(req.OrderTableID, 10)),
		Value: val,
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
			{Key: "source", Value: []byte(source)},
		},
	})
	if err != nil {
		return 0, err
	}
	return 1, nil
}
