// Package inventory applies admin stock edits optimistically: the cached
// views change before the backend confirms, a failed request rolls the cache
// back, and either way every dependent view is invalidated once the request
// settles, so a wrong speculation self-heals on the next read.
package inventory

import (
	"context"
	"fmt"

	"github.com/yoave717/yoavsshoes/internal/api"
	"github.com/yoave717/yoavsshoes/internal/catalog"
	"github.com/yoave717/yoavsshoes/internal/query"
)

// Backend is the slice of the REST client the reconciler settles against.
type Backend interface {
	UpdateInventory(ctx context.Context, inventoryID int64, req api.UpdateInventoryRequest) (*catalog.InventorySize, error)
	CreateInventory(ctx context.Context, req api.CreateInventoryRequest) (*catalog.InventorySize, error)
}

type Reconciler struct {
	cache *query.Cache
	api   Backend
}

func NewReconciler(cache *query.Cache, api Backend) *Reconciler {
	return &Reconciler{cache: cache, api: api}
}

// Update is one per-size stock change. QuantityReserved is optional.
type Update struct {
	InventoryID       int64
	ModelID           int64
	ShoeID            int64
	QuantityAvailable int
	QuantityReserved  *int
}

// UpdateInventory rewrites the cached model list and inventory pages for the
// shoe, persists the change, and rolls the model list back if the backend
// rejects it. Two concurrent updates to the same record are not serialized;
// the last one to settle wins and the settle-time invalidation repairs the
// rest.
func (r *Reconciler) UpdateInventory(ctx context.Context, u Update) (*catalog.InventorySize, error) {
	modelKey := ModelListKey(u.ShoeID)
	oldQuantity := r.cachedQuantity(modelKey, u)

	// Speculative apply: the size record inside the model list, then the
	// denormalized totalStock of every cached inventory page. Pages carry no
	// size detail, so they get a delta rather than a recompute.
	sp := speculate(r.cache, modelKey, func(models []catalog.ShoeModel) []catalog.ShoeModel {
		return withUpdatedSize(models, u)
	})

	delta := u.QuantityAvailable - oldQuantity
	for _, pageKey := range r.cache.Keys(InventoryPagePrefix) {
		r.cache.Update(pageKey, func(v any) any {
			page, ok := v.(catalog.Page[catalog.ShoeInventoryView])
			if !ok {
				return v
			}
			return withAdjustedStock(page, u.ShoeID, delta)
		})
	}

	updated, err := r.api.UpdateInventory(ctx, u.InventoryID, api.UpdateInventoryRequest{
		QuantityAvailable: u.QuantityAvailable,
		QuantityReserved:  u.QuantityReserved,
	})
	if err != nil {
		// The page deltas are not unwound here; the settle invalidation
		// below forces a refetch that corrects them.
		sp.rollback()
	}

	// Settle: stale-mark every dependent view regardless of outcome.
	r.cache.Invalidate(modelKey, StatsKey)
	r.cache.InvalidatePrefix(InventoryPagePrefix)

	if err != nil {
		return nil, fmt.Errorf("update inventory %d: %w", u.InventoryID, err)
	}
	return updated, nil
}

// Create registers a new per-size stock record for a model.
type Create struct {
	ShoeID            int64
	ModelID           int64
	Size              string
	QuantityAvailable int
	QuantityReserved  int
}

// CreateInventory adds a size record through the backend. There is no
// speculative apply; once the backend confirms, every cached view that now
// misses the record is invalidated so the next read picks it up.
func (r *Reconciler) CreateInventory(ctx context.Context, c Create) (*catalog.InventorySize, error) {
	created, err := r.api.CreateInventory(ctx, api.CreateInventoryRequest{
		ShoeModelID:       c.ModelID,
		Size:              c.Size,
		QuantityAvailable: c.QuantityAvailable,
		QuantityReserved:  c.QuantityReserved,
	})
	if err != nil {
		return nil, fmt.Errorf("create inventory for model %d: %w", c.ModelID, err)
	}

	r.cache.Invalidate(ModelListKey(c.ShoeID), StatsKey)
	r.cache.InvalidatePrefix(InventoryPagePrefix)

	return created, nil
}

// cachedQuantity reads the pre-mutation quantityAvailable out of the cached
// model list, or 0 when the record is not cached.
func (r *Reconciler) cachedQuantity(modelKey string, u Update) int {
	models, ok := query.ReadAs[[]catalog.ShoeModel](r.cache, modelKey)
	if !ok {
		return 0
	}
	for _, model := range models {
		if model.ID != u.ModelID {
			continue
		}
		for _, size := range model.AvailableSizes {
			if size.ID == u.InventoryID {
				return size.QuantityAvailable
			}
		}
	}
	return 0
}

// withUpdatedSize rebuilds the model list with the target size record
// rewritten. The input slices are left untouched.
func withUpdatedSize(models []catalog.ShoeModel, u Update) []catalog.ShoeModel {
	out := make([]catalog.ShoeModel, len(models))
	copy(out, models)
	for i, model := range out {
		if model.ID != u.ModelID {
			continue
		}
		sizes := make([]catalog.InventorySize, len(model.AvailableSizes))
		copy(sizes, model.AvailableSizes)
		for j, size := range sizes {
			if size.ID == u.InventoryID {
				sizes[j].QuantityAvailable = u.QuantityAvailable
				if u.QuantityReserved != nil {
					sizes[j].QuantityReserved = *u.QuantityReserved
				}
			}
		}
		out[i].AvailableSizes = sizes
	}
	return out
}

// withAdjustedStock rebuilds an inventory page with the shoe's totalStock
// shifted by delta.
func withAdjustedStock(page catalog.Page[catalog.ShoeInventoryView], shoeID int64, delta int) catalog.Page[catalog.ShoeInventoryView] {
	content := make([]catalog.ShoeInventoryView, len(page.Content))
	copy(content, page.Content)
	for i, shoe := range content {
		if shoe.ID == shoeID {
			content[i].TotalStock = shoe.TotalStock + delta
		}
	}
	page.Content = content
	return page
}
