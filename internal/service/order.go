package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"demo/kitchenpos/internal/dto"
	"demo/kitchenpos/internal/logging"
	"demo/kitchenpos/internal/model"
	"demo/kitchenpos/internal/store"
)

type OrderService struct {
	menus  store.MenuRepository
	tables store.TableRepository
	orders store.OrderRepository
	log    *slog.Logger
	now    func() time.Time
}

type OrderOption func(*OrderService)

// WithClock replaces time.Now as the source of order timestamps.
func WithClock(now func() time.Time) OrderOption {
	return func(s *OrderService) { s.now = now }
}

func NewOrderService(menus store.MenuRepository, tables store.TableRepository, orders store.OrderRepository, log *slog.Logger, opts ...OrderOption) *OrderService {
	s := &OrderService{menus: menus, tables: tables, orders: orders, log: log, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create places a new order. Whatever status the request carries, the order is stored as COOKING.
func (s *OrderService) Create(ctx context.Context, req dto.OrderRequest) (model.Order, error) {
	order, err := toOrder(req)
	if err != nil {
		return model.Order{}, err
	}

	count, err := s.menus.CountMenusByIDs(ctx, order.MenuIDs())
	if err != nil {
		return model.Order{}, fmt.Errorf("count menus: %w", err)
	}
	if err := order.ValidateLineItemsSize(count); err != nil {
		return model.Order{}, err
	}

	table, err := s.tables.FindTable(ctx, order.OrderTableID)
	if err != nil {
		return model.Order{}, err
	}

	newOrder, err := model.NewOrder(table.ID, model.StatusCooking, order.LineItems)
	if err != nil {
		return model.Order{}, err
	}
	newOrder.OrderedTime = s.now()

	saved, err := s.orders.CreateOrder(ctx, newOrder)
	if err != nil {
		return model.Order{}, fmt.Errorf("save order: %w", err)
	}
	logging.FromContext(ctx, s.log).Info("order created",
		slog.String("action", "order_created"),
		slog.Int64("order_id", saved.ID),
		slog.Int64("order_table_id", saved.OrderTableID),
		slog.Int("line_items", len(saved.LineItems)),
	)
	return saved, nil
}

func toOrder(req dto.OrderRequest) (model.Order, error) {
	if req.OrderLineItems == nil {
		return model.Order{}, fmt.Errorf("order line items: missing: %w", model.ErrInvalidArgument)
	}
	status := model.StatusCooking
	if req.OrderStatus != "" {
		st, err := model.ParseOrderStatus(req.OrderStatus)
		if err != nil {
			return model.Order{}, err
		}
		status = st
	}
	items := make([]model.OrderLineItem, 0, len(req.OrderLineItems))
	for _, li := range req.OrderLineItems {
		item := model.NewOrderLineItem(li.MenuID, li.MenuPrice, li.MenuName, li.Quantity)
		item.Seq = li.Seq
		items = append(items, item)
	}
	return model.NewOrder(req.OrderTableID, status, items)
}

func (s *OrderService) List(ctx context.Context) ([]model.Order, error) {
	return s.orders.ListOrders(ctx)
}

func (s *OrderService) Get(ctx context.Context, id int64) (model.Order, error) {
	return s.orders.FindOrder(ctx, id)
}

// ChangeStatus moves a non-completed order to req's status.
func (s *OrderService) ChangeStatus(ctx context.Context, id int64, req dto.OrderStatusRequest) (model.Order, error) {
	status, err := model.ParseOrderStatus(req.OrderStatus)
	if err != nil {
		return model.Order{}, err
	}

	var from model.OrderStatus
	saved, err := s.orders.UpdateOrderStatus(ctx, id, func(o *model.Order) error {
		if err := o.ValidateStatus(); err != nil {
			return err
		}
		from = o.Status
		o.ChangeStatus(status)
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}
	logging.FromContext(ctx, s.log).Info("order status changed",
		slog.String("action", "order_status_changed"),
		slog.Int64("order_id", id),
		slog.String("from", string(from)),
		slog.String("to", string(status)),
	)
	return saved, nil
}
