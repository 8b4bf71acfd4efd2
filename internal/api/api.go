package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"demo/kitchenpos/internal/cache"
	"demo/kitchenpos/internal/dto"
	"demo/kitchenpos/internal/logging"
	"demo/kitchenpos/internal/model"
)

type MenuGroups interface {
	Create(ctx context.Context, req dto.MenuGroupRequest) (model.MenuGroup, error)
	List(ctx context.Context) ([]model.MenuGroup, error)
}

type Products interface {
	Create(ctx context.Context, req dto.ProductRequest) (model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
}

type Menus interface {
	Create(ctx context.Context, req dto.MenuRequest) (model.Menu, error)
	List(ctx context.Context) ([]model.Menu, error)
}

type Tables interface {
	Create(ctx context.Context, req dto.TableRequest) (model.OrderTable, error)
	List(ctx context.Context) ([]model.OrderTable, error)
	ChangeEmpty(ctx context.Context, id int64, req dto.TableEmptyRequest) (model.OrderTable, error)
	ChangeNumberOfGuests(ctx context.Context, id int64, req dto.TableGuestsRequest) (model.OrderTable, error)
}

type Orders interface {
	Create(ctx context.Context, req dto.OrderRequest) (model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	Get(ctx context.Context, id int64) (model.Order, error)
	ChangeStatus(ctx context.Context, id int64, req dto.OrderStatusRequest) (model.Order, error)
}

type Deps struct {
	MenuGroups MenuGroups
	Products   Products
	Menus      Menus
	Tables     Tables
	Orders     Orders
	Cache      *cache.Orders
	Log        *slog.Logger
}

type server struct {
	Deps
}

func NewHandler(d Deps) http.Handler {
	s := &server{Deps: d}
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/menu-groups", s.createMenuGroup)
	mux.HandleFunc("GET /api/menu-groups", s.listMenuGroups)
	mux.HandleFunc("POST /api/products", s.createProduct)
	mux.HandleFunc("GET /api/products", s.listProducts)
	mux.HandleFunc("POST /api/menus", s.createMenu)
	mux.HandleFunc("GET /api/menus", s.listMenus)

	mux.HandleFunc("POST /api/tables", s.createTable)
	mux.HandleFunc("GET /api/tables", s.listTables)
	mux.HandleFunc("PUT /api/tables/{id}/empty", s.changeEmpty)
	mux.HandleFunc("PUT /api/tables/{id}/number-of-guests", s.changeNumberOfGuests)

	mux.HandleFunc("POST /api/orders", s.createOrder)
	mux.HandleFunc("GET /api/orders", s.listOrders)
	mux.HandleFunc("GET /api/orders/{id}", s.getOrder)
	mux.HandleFunc("PUT /api/orders/{id}/order-status", s.changeOrderStatus)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return s.withRequestID(mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := logging.WithRequestID(r.Context(), id)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		logging.FromContext(ctx, s.Log).Debug("http request",
			slog.String("action", "http_request"),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("took", time.Since(start)),
		)
	})
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("request body: %v: %w", err, model.ErrInvalidArgument)
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id %q: %w", r.PathValue("id"), model.ErrInvalidArgument)
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func created(w http.ResponseWriter, location string, v any) {
	w.Header().Set("Location", location)
	writeJSON(w, http.StatusCreated, v)
}

func (s *server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"
	switch {
	case errors.Is(err, model.ErrInvalidArgument):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, model.ErrNotFound):
		status, msg = http.StatusNotFound, err.Error()
	default:
		logging.FromContext(r.Context(), s.Log).Error("request failed",
			slog.String("action", "http_error"),
			slog.String("path", r.URL.Path),
			slog.Any("err", err),
		)
	}
	writeJSON(w, status, map[string]string{"error": msg})
}
