package service

import (
	"context"
	"fmt"

	"demo/kitchenpos/internal/dto"
	"demo/kitchenpos/internal/model"
	"demo/kitchenpos/internal/store"
)

type TableService struct {
	tables store.TableRepository
	orders store.OrderRepository
}

func NewTableService(tables store.TableRepository, orders store.OrderRepository) *TableService {
	return &TableService{tables: tables, orders: orders}
}

func (s *TableService) Create(ctx context.Context, req dto.TableRequest) (model.OrderTable, error) {
	t, err := model.NewOrderTable(req.NumberOfGuests, req.Empty)
	if err != nil {
		return model.OrderTable{}, err
	}
	return s.tables.CreateTable(ctx, t)
}

func (s *TableService) List(ctx context.Context) ([]model.OrderTable, error) {
	return s.tables.ListTables(ctx)
}

// ChangeEmpty is refused while an order on the table is still cooking or being eaten.
func (s *TableService) ChangeEmpty(ctx context.Context, id int64, req dto.TableEmptyRequest) (model.OrderTable, error) {
	t, err := s.tables.FindTable(ctx, id)
	if err != nil {
		return model.OrderTable{}, err
	}
	active, err := s.orders.ExistsActiveOrderForTable(ctx, id)
	if err != nil {
		return model.OrderTable{}, fmt.Errorf("check active orders: %w", err)
	}
	if active {
		return model.OrderTable{}, fmt.Errorf("table %d has an active order: %w", id, model.ErrInvalidArgument)
	}
	if err := t.ChangeEmpty(req.Empty); err != nil {
		return model.OrderTable{}, err
	}
	if err := s.tables.UpdateTable(ctx, t); err != nil {
		return model.OrderTable{}, err
	}
	return t, nil
}

func (s *TableService) ChangeNumberOfGuests(ctx context.Context, id int64, req dto.TableGuestsRequest) (model.OrderTable, error) {
	t, err := s.tables.FindTable(ctx, id)
	if err != nil {
		return model.OrderTable{}, err
	}
	if err := t.ChangeNumberOfGuests(req.NumberOfGuests); err != nil {
		return model.OrderTable{}, err
	}
	if err := s.tables.UpdateTable(ctx, t); err != nil {
		return model.OrderTable{}, err
	}
	return t, nil
}
