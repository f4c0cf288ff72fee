package http

import (
	"context"
	"log"
	"net/http"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/yoave717/yoavsshoes/internal/api"
	"github.com/yoave717/yoavsshoes/internal/cart"
)

type OrderPlacer interface {
	CreateOrder(ctx context.Context, req api.CreateOrderRequest) (*api.Order, error)
}

// CheckoutHandler turns the current cart into an order. Pricing, stock
// decrement, and order lifecycle are backend-owned; this only shapes the
// request and clears the cart on success.
type CheckoutHandler struct {
	store    *cart.Store
	orders   OrderPlacer
	validate *validatorv10.Validate
}

func NewCheckoutHandler(store *cart.Store, orders OrderPlacer) *CheckoutHandler {
	return &CheckoutHandler{
		store:    store,
		orders:   orders,
		validate: validatorv10.New(),
	}
}

type CheckoutRequestDTO struct {
	UserID              int64  `json:"userId" validate:"required,gt=0"`
	ShippingAddressID   int64  `json:"shippingAddressId" validate:"required,gt=0"`
	SpecialInstructions string `json:"specialInstructions"`
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequestDTO
	if err := bindAndValidate(w, r, &req, h.validate); err != nil {
		return
	}

	state := h.store.State()
	if len(state.Items) == 0 {
		respondError(w, http.StatusBadRequest, "empty_cart", "cart is empty")
		return
	}

	items := make([]api.CreateOrderItem, 0, len(state.Items))
	for _, it := range state.Items {
		items = append(items, api.CreateOrderItem{
			ShoeModelID: it.ModelID,
			Size:        it.Size,
			Quantity:    it.Quantity,
		})
	}

	order, err := h.orders.CreateOrder(r.Context(), api.CreateOrderRequest{
		UserID:              req.UserID,
		Items:               items,
		ShippingAddressID:   req.ShippingAddressID,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		log.Printf("create order failed: %v", err)
		respondError(w, http.StatusBadGateway, "backend_error", "failed to place order")
		return
	}

	h.store.ClearCart(r.Context())
	respondJSON(w, http.StatusCreated, order)
}
