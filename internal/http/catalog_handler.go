package http

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/yoave717/yoavsshoes/internal/api"
	"github.com/yoave717/yoavsshoes/internal/catalog"
	"github.com/yoave717/yoavsshoes/internal/inventory"
	"github.com/yoave717/yoavsshoes/internal/query"
)

// Backend is the slice of the REST client the catalog handlers read through.
type Backend interface {
	Shoes(ctx context.Context, filters api.ShoeFilters) (*catalog.Page[catalog.Shoe], error)
	ShoeModels(ctx context.Context, shoeID int64) ([]catalog.ShoeModel, error)
	ShoeInventory(ctx context.Context, filters api.ShoeFilters) (*catalog.Page[catalog.ShoeInventoryView], error)
	ShoeStats(ctx context.Context) (*catalog.ShoeStats, error)
}

// CatalogHandler serves browse and admin listing reads through the shared
// query cache, on the same keys the inventory reconciler mutates.
type CatalogHandler struct {
	cache   *query.Cache
	backend Backend
}

func NewCatalogHandler(cache *query.Cache, backend Backend) *CatalogHandler {
	return &CatalogHandler{cache: cache, backend: backend}
}

func (h *CatalogHandler) ListShoes(w http.ResponseWriter, r *http.Request) {
	filters := filtersFromQuery(r)
	key := "shoes:" + filters.Key()

	v, err := h.cache.Get(r.Context(), key, func(ctx context.Context) (any, error) {
		page, err := h.backend.Shoes(ctx, filters)
		if err != nil {
			return nil, err
		}
		return *page, nil
	})
	if err != nil {
		log.Printf("list shoes failed: %v", err)
		respondError(w, http.StatusBadGateway, "backend_error", "failed to load shoes")
		return
	}
	respondJSON(w, http.StatusOK, v)
}

func (h *CatalogHandler) ListShoeModels(w http.ResponseWriter, r *http.Request) {
	shoeID, ok := shoeIDParam(w, r)
	if !ok {
		return
	}

	v, err := h.cache.Get(r.Context(), inventory.ModelListKey(shoeID), func(ctx context.Context) (any, error) {
		models, err := h.backend.ShoeModels(ctx, shoeID)
		if err != nil {
			return nil, err
		}
		return models, nil
	})
	if err != nil {
		log.Printf("list shoe models failed: %v", err)
		respondError(w, http.StatusBadGateway, "backend_error", "failed to load shoe models")
		return
	}
	respondJSON(w, http.StatusOK, v)
}

func (h *CatalogHandler) ListShoeInventory(w http.ResponseWriter, r *http.Request) {
	filters := filtersFromQuery(r)
	key := inventory.InventoryPageKey(filters.Key())

	v, err := h.cache.Get(r.Context(), key, func(ctx context.Context) (any, error) {
		page, err := h.backend.ShoeInventory(ctx, filters)
		if err != nil {
			return nil, err
		}
		return *page, nil
	})
	if err != nil {
		log.Printf("list shoe inventory failed: %v", err)
		respondError(w, http.StatusBadGateway, "backend_error", "failed to load inventory")
		return
	}
	respondJSON(w, http.StatusOK, v)
}

func (h *CatalogHandler) GetShoeStats(w http.ResponseWriter, r *http.Request) {
	v, err := h.cache.Get(r.Context(), inventory.StatsKey, func(ctx context.Context) (any, error) {
		stats, err := h.backend.ShoeStats(ctx)
		if err != nil {
			return nil, err
		}
		return *stats, nil
	})
	if err != nil {
		log.Printf("get shoe stats failed: %v", err)
		respondError(w, http.StatusBadGateway, "backend_error", "failed to load stats")
		return
	}
	respondJSON(w, http.StatusOK, v)
}

func shoeIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "shoe_id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_shoe_id", "shoe_id must be a positive integer")
		return 0, false
	}
	return id, true
}

func filtersFromQuery(r *http.Request) api.ShoeFilters {
	q := r.URL.Query()
	f := api.ShoeFilters{
		Search:   q.Get("search"),
		Brand:    q.Get("brand"),
		Category: q.Get("category"),
		Gender:   q.Get("gender"),
		SortBy:   q.Get("sortBy"),
		SortDir:  q.Get("sortDir"),
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		f.Page = page
	}
	if size, err := strconv.Atoi(q.Get("size")); err == nil {
		f.Size = size
	}
	return f
}
