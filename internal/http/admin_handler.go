package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/yoave717/yoavsshoes/internal/api"
	"github.com/yoave717/yoavsshoes/internal/inventory"
)

type AdminHandler struct {
	reconciler *inventory.Reconciler
	validate   *validatorv10.Validate
}

func NewAdminHandler(reconciler *inventory.Reconciler) *AdminHandler {
	return &AdminHandler{
		reconciler: reconciler,
		validate:   validatorv10.New(),
	}
}

type CreateInventoryRequestDTO struct {
	ShoeID            int64  `json:"shoeId" validate:"required,gt=0"`
	ModelID           int64  `json:"shoeModelId" validate:"required,gt=0"`
	Size              string `json:"size" validate:"required"`
	QuantityAvailable int    `json:"quantityAvailable" validate:"gte=0"`
	QuantityReserved  int    `json:"quantityReserved" validate:"gte=0"`
}

// CreateInventory registers a new size record for a model. The cached model
// list, inventory pages, and stats are invalidated once the backend confirms.
func (h *AdminHandler) CreateInventory(w http.ResponseWriter, r *http.Request) {
	var req CreateInventoryRequestDTO
	if err := bindAndValidate(w, r, &req, h.validate); err != nil {
		return
	}

	created, err := h.reconciler.CreateInventory(r.Context(), inventory.Create{
		ShoeID:            req.ShoeID,
		ModelID:           req.ModelID,
		Size:              req.Size,
		QuantityAvailable: req.QuantityAvailable,
		QuantityReserved:  req.QuantityReserved,
	})
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "shoe model not found")
			return
		}
		respondError(w, http.StatusBadGateway, "backend_error", "failed to create inventory")
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

type UpdateInventoryRequestDTO struct {
	ModelID           int64 `json:"modelId" validate:"required,gt=0"`
	ShoeID            int64 `json:"shoeId" validate:"required,gt=0"`
	QuantityAvailable int   `json:"quantityAvailable" validate:"gte=0"`
	QuantityReserved  *int  `json:"quantityReserved,omitempty" validate:"omitempty,gte=0"`
}

// UpdateInventory applies a per-size stock change through the reconciler. A
// backend failure has already been rolled back locally by the time the error
// response goes out.
func (h *AdminHandler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	inventoryIDStr := chi.URLParam(r, "inventory_id")
	inventoryID, err := strconv.ParseInt(inventoryIDStr, 10, 64)
	if err != nil || inventoryID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_inventory_id", "inventory_id must be a positive integer")
		return
	}

	var req UpdateInventoryRequestDTO
	if err := bindAndValidate(w, r, &req, h.validate); err != nil {
		return
	}

	updated, err := h.reconciler.UpdateInventory(r.Context(), inventory.Update{
		InventoryID:       inventoryID,
		ModelID:           req.ModelID,
		ShoeID:            req.ShoeID,
		QuantityAvailable: req.QuantityAvailable,
		QuantityReserved:  req.QuantityReserved,
	})
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "inventory record not found")
			return
		}
		respondError(w, http.StatusBadGateway, "backend_error", "failed to update inventory")
		return
	}

	respondJSON(w, http.StatusOK, updated)
}
