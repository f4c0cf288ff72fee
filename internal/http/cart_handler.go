package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/yoave717/yoavsshoes/internal/cart"
)

type CartHandler struct {
	store    *cart.Store
	validate *validatorv10.Validate
}

func NewCartHandler(store *cart.Store) *CartHandler {
	return &CartHandler{
		store:    store,
		validate: validatorv10.New(),
	}
}

// AddItemRequestDTO carries everything but the quantity: adding to the cart
// is always one more unit. Size is required; an add without a chosen size is
// rejected before the cart is touched.
type AddItemRequestDTO struct {
	ModelID   int64   `json:"id" validate:"required,gt=0"`
	ModelName string  `json:"modelName" validate:"required"`
	BrandName string  `json:"brandName"`
	Color     string  `json:"color"`
	Size      string  `json:"size" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
	ImageURL  string  `json:"imageUrl"`
	SKU       string  `json:"sku"`
}

// UpdateQuantityRequestDTO has no upper bound: zero removes the line and any
// positive quantity is the caller's to set, stock permitting at checkout.
type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.State())
}

func (h *CartHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, cart.Summarize(h.store.State().Items))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := bindAndValidate(w, r, &req, h.validate); err != nil {
		return
	}

	state := h.store.AddItem(r.Context(), cart.Item{
		ModelID:   req.ModelID,
		ModelName: req.ModelName,
		BrandName: req.BrandName,
		Color:     req.Color,
		Size:      req.Size,
		Price:     req.Price,
		ImageURL:  req.ImageURL,
		SKU:       req.SKU,
	})
	respondJSON(w, http.StatusCreated, state)
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	modelID, size, ok := lineItemParams(w, r)
	if !ok {
		return
	}

	var req UpdateQuantityRequestDTO
	if err := bindAndValidate(w, r, &req, h.validate); err != nil {
		return
	}

	state := h.store.UpdateQuantity(r.Context(), modelID, size, req.Quantity)
	respondJSON(w, http.StatusOK, state)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	modelID, size, ok := lineItemParams(w, r)
	if !ok {
		return
	}

	state := h.store.RemoveItem(r.Context(), modelID, size)
	respondJSON(w, http.StatusOK, state)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	state := h.store.ClearCart(r.Context())
	respondJSON(w, http.StatusOK, state)
}

func lineItemParams(w http.ResponseWriter, r *http.Request) (int64, string, bool) {
	modelIDStr := chi.URLParam(r, "model_id")
	modelID, err := strconv.ParseInt(modelIDStr, 10, 64)
	if err != nil || modelID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_model_id", "model_id must be a positive integer")
		return 0, "", false
	}

	size := chi.URLParam(r, "size")
	if size == "" {
		respondError(w, http.StatusBadRequest, "invalid_size", "size is required")
		return 0, "", false
	}

	return modelID, size, true
}
