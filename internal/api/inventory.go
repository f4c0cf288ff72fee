package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/yoave717/yoavsshoes/internal/catalog"
)

// UpdateInventoryRequest is the PATCH body for a per-size stock change.
// QuantityReserved is optional; nil leaves the reserved count untouched.
type UpdateInventoryRequest struct {
	QuantityAvailable int  `json:"quantityAvailable"`
	QuantityReserved  *int `json:"quantityReserved,omitempty"`
}

// UpdateInventory persists a stock change for one inventory record and
// returns the updated record as the backend sees it.
func (c *Client) UpdateInventory(ctx context.Context, inventoryID int64, req UpdateInventoryRequest) (*catalog.InventorySize, error) {
	var updated catalog.InventorySize
	path := "/inventory/" + strconv.FormatInt(inventoryID, 10)
	if err := c.do(ctx, http.MethodPatch, path, nil, req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// CreateInventoryRequest adds a new size record to a model.
type CreateInventoryRequest struct {
	ShoeModelID       int64  `json:"shoeModelId"`
	Size              string `json:"size"`
	QuantityAvailable int    `json:"quantityAvailable"`
	QuantityReserved  int    `json:"quantityReserved"`
}

func (c *Client) CreateInventory(ctx context.Context, req CreateInventoryRequest) (*catalog.InventorySize, error) {
	var created catalog.InventorySize
	if err := c.do(ctx, http.MethodPost, "/inventory", nil, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
