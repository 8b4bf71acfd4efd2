package api

import (
	"fmt"
	"net/http"

	"demo/kitchenpos/internal/dto"
	"demo/kitchenpos/internal/validate"
)

func (s *server) createOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.OrderRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := validate.OrderRequest(req); err != nil {
		s.writeError(w, r, err)
		return
	}
	o, err := s.Orders.Create(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.Cache.Set(o)
	created(w, fmt.Sprintf("/api/orders/%d", o.ID), o)
}

func (s *server) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.Orders.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (s *server) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if o, ok := s.Cache.Get(id); ok {
		w.Header().Set("X-Cache", "HIT")
		writeJSON(w, http.StatusOK, o)
		return
	}
	o, err := s.Orders.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.Cache.Set(o)
	w.Header().Set("X-Cache", "MISS")
	writeJSON(w, http.StatusOK, o)
}

func (s *server) changeOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req dto.OrderStatusRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := validate.OrderStatusRequest(req); err != nil {
		s.writeError(w, r, err)
		return
	}
	o, err := s.Orders.ChangeStatus(r.Context(), id, req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.Cache.Set(o)
	writeJSON(w, http.StatusOK, o)
}
