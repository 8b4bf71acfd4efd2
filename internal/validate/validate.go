package validate

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"demo/kitchenpos/internal/dto"
	"demo/kitchenpos/internal/model"
)

// result collects field errors; the aggregate wraps model.ErrInvalidArgument.
type result struct {
	errs *multierror.Error
}

func (r *result) add(format string, args ...any) {
	r.errs = multierror.Append(r.errs, fmt.Errorf(format, args...))
}

func (r *result) orNil() error {
	if r.errs == nil {
		return nil
	}
	r.errs.ErrorFormat = joinFormat
	return fmt.Errorf("%w: %w", model.ErrInvalidArgument, r.errs.ErrorOrNil())
}

func joinFormat(es []error) string {
	msgs := make([]string, 0, len(es))
	for _, e := range es {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

func MenuGroupRequest(req dto.MenuGroupRequest) error {
	var r result
	if strings.TrimSpace(req.Name) == "" {
		r.add("name: required")
	}
	return r.orNil()
}

func ProductRequest(req dto.ProductRequest) error {
	var r result
	if strings.TrimSpace(req.Name) == "" {
		r.add("name: required")
	}
	if req.Price == nil {
		r.add("price: required")
	} else if req.Price.IsNegative() {
		r.add("price: must be >= 0")
	}
	return r.orNil()
}

func MenuRequest(req dto.MenuRequest) error {
	var r result
	if strings.TrimSpace(req.Name) == "" {
		r.add("name: required")
	}
	if req.Price == nil {
		r.add("price: required")
	} else if req.Price.IsNegative() {
		r.add("price: must be >= 0")
	}
	if req.MenuGroupID <= 0 {
		r.add("menuGroupId: must be > 0")
	}
	for i, mp := range req.MenuProducts {
		if mp.ProductID <= 0 {
			r.add("menuProducts[%d].productId: must be > 0", i)
		}
		if mp.Quantity < 1 {
			r.add("menuProducts[%d].quantity: must be >= 1", i)
		}
	}
	return r.orNil()
}

func TableRequest(req dto.TableRequest) error {
	var r result
	if req.NumberOfGuests < 0 {
		r.add("numberOfGuests: must be >= 0")
	}
	return r.orNil()
}

func OrderRequest(req dto.OrderRequest) error {
	var r result
	if req.OrderTableID <= 0 {
		r.add("orderTableId: must be > 0")
	}
	if req.OrderStatus != "" {
		if _, err := model.ParseOrderStatus(req.OrderStatus); err != nil {
			r.add("orderStatus: unknown value %q", req.OrderStatus)
		}
	}
	if len(req.OrderLineItems) == 0 {
		r.add("orderLineItems: must contain at least 1 item")
	}
	for i, li := range req.OrderLineItems {
		if li.MenuID <= 0 {
			r.add("orderLineItems[%d].menuId: must be > 0", i)
		}
		if li.Quantity < 1 {
			r.add("orderLineItems[%d].quantity: must be >= 1", i)
		}
		if li.MenuPrice.IsNegative() {
			r.add("orderLineItems[%d].menuPrice: must be >= 0", i)
		}
	}
	return r.orNil()
}

func OrderStatusRequest(req dto.OrderStatusRequest) error {
	var r result
	if _, err := model.ParseOrderStatus(req.OrderStatus); err != nil {
		r.add("orderStatus: unknown value %q", req.OrderStatus)
	}
	return r.orNil()
}
