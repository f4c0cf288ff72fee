package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/yoave717/yoavsshoes/internal/api"
	"github.com/yoave717/yoavsshoes/internal/catalog"
	"github.com/yoave717/yoavsshoes/internal/query"
)

// OrderReader is the slice of the REST client the order handlers read through.
type OrderReader interface {
	MyOrders(ctx context.Context, page, size int) (*catalog.Page[api.Order], error)
	Order(ctx context.Context, orderID int64) (*api.Order, error)
}

// OrdersHandler serves the order history read side through the query cache.
// Orders only change on the backend, so entries stay fresh until restart.
type OrdersHandler struct {
	cache  *query.Cache
	orders OrderReader
}

func NewOrdersHandler(cache *query.Cache, orders OrderReader) *OrdersHandler {
	return &OrdersHandler{cache: cache, orders: orders}
}

const defaultOrdersPageSize = 20

func (h *OrdersHandler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := 0
	if p, err := strconv.Atoi(q.Get("page")); err == nil && p >= 0 {
		page = p
	}
	size := defaultOrdersPageSize
	if s, err := strconv.Atoi(q.Get("size")); err == nil && s > 0 {
		size = s
	}

	key := myOrdersKey(page, size)
	v, err := h.cache.Get(r.Context(), key, func(ctx context.Context) (any, error) {
		orders, err := h.orders.MyOrders(ctx, page, size)
		if err != nil {
			return nil, err
		}
		return *orders, nil
	})
	if err != nil {
		log.Printf("list my orders failed: %v", err)
		respondError(w, http.StatusBadGateway, "backend_error", "failed to load orders")
		return
	}
	respondJSON(w, http.StatusOK, v)
}

func (h *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderIDStr := chi.URLParam(r, "order_id")
	orderID, err := strconv.ParseInt(orderIDStr, 10, 64)
	if err != nil || orderID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order_id must be a positive integer")
		return
	}

	v, err := h.cache.Get(r.Context(), orderKey(orderID), func(ctx context.Context) (any, error) {
		order, err := h.orders.Order(ctx, orderID)
		if err != nil {
			return nil, err
		}
		return *order, nil
	})
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "order not found")
			return
		}
		log.Printf("get order failed: %v", err)
		respondError(w, http.StatusBadGateway, "backend_error", "failed to load order")
		return
	}
	respondJSON(w, http.StatusOK, v)
}

func myOrdersKey(page, size int) string {
	return "orders:my:page=" + strconv.Itoa(page) + "&size=" + strconv.Itoa(size)
}

func orderKey(orderID int64) string {
	return "orders:" + strconv.FormatInt(orderID, 10)
}
