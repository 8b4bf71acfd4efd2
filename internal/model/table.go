package model

import "fmt"

type OrderTable struct {
	ID             int64  `json:"id"`
	TableGroupID   *int64 `json:"tableGroupId,omitempty"`
	NumberOfGuests int    `json:"numberOfGuests"`
	Empty          bool   `json:"empty"`
}

func NewOrderTable(numberOfGuests int, empty bool) (OrderTable, error) {
	if numberOfGuests < 0 {
		return OrderTable{}, fmt.Errorf("number of guests %d: must be >= 0: %w", numberOfGuests, ErrInvalidArgument)
	}
	return OrderTable{NumberOfGuests: numberOfGuests, Empty: empty}, nil
}

// ChangeEmpty is rejected for grouped tables; the active-order check lives in the service.
func (t *OrderTable) ChangeEmpty(empty bool) error {
	if t.TableGroupID != nil {
		return fmt.Errorf("table %d belongs to group %d: %w", t.ID, *t.TableGroupID, ErrInvalidArgument)
	}
	t.Empty = empty
	return nil
}

func (t *OrderTable) ChangeNumberOfGuests(n int) error {
	if n < 0 {
		return fmt.Errorf("number of guests %d: must be >= 0: %w", n, ErrInvalidArgument)
	}
	if t.Empty {
		return fmt.Errorf("table %d is empty: %w", t.ID, ErrInvalidArgument)
	}
	t.NumberOfGuests = n
	return nil
}
