package api

import (
	"fmt"
	"net/http"

	"demo/kitchenpos/internal/dto"
	"demo/kitchenpos/internal/validate"
)

func (s *server) createMenuGroup(w http.ResponseWriter, r *http.Request) {
	var req dto.MenuGroupRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := validate.MenuGroupRequest(req); err != nil {
		s.writeError(w, r, err)
		return
	}
	g, err := s.MenuGroups.Create(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	created(w, fmt.Sprintf("/api/menu-groups/%d", g.ID), g)
}

func (s *server) listMenuGroups(w http.ResponseWriter, r *http.Request) {
	gs, err := s.MenuGroups.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, gs)
}

func (s *server) createProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.ProductRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := validate.ProductRequest(req); err != nil {
		s.writeError(w, r, err)
		return
	}
	p, err := s.Products.Create(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	created(w, fmt.Sprintf("/api/products/%d", p.ID), p)
}

func (s *server) listProducts(w http.ResponseWriter, r *http.Request) {
	ps, err := s.Products.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

func (s *server) createMenu(w http.ResponseWriter, r *http.Request) {
	var req dto.MenuRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := validate.MenuRequest(req); err != nil {
		s.writeError(w, r, err)
		return
	}
	m, err := s.Menus.Create(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	created(w, fmt.Sprintf("/api/menus/%d", m.ID), m)
}

func (s *server) listMenus(w http.ResponseWriter, r *http.Request) {
	ms, err := s.Menus.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ms)
}
