package api

import (
	"fmt"
	"net/http"

	"demo/kitchenpos/internal/dto"
	"demo/kitchenpos/internal/validate"
)

func (s *server) createTable(w http.ResponseWriter, r *http.Request) {
	var req dto.TableRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := validate.TableRequest(req); err != nil {
		s.writeError(w, r, err)
		return
	}
	t, err := s.Tables.Create(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	created(w, fmt.Sprintf("/api/tables/%d", t.ID), t)
}

func (s *server) listTables(w http.ResponseWriter, r *http.Request) {
	ts, err := s.Tables.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ts)
}

func (s *server) changeEmpty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req dto.TableEmptyRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	t, err := s.Tables.ChangeEmpty(r.Context(), id, req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *server) changeNumberOfGuests(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req dto.TableGuestsRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	t, err := s.Tables.ChangeNumberOfGuests(r.Context(), id, req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}
