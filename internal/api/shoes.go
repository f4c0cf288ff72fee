package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/yoave717/yoavsshoes/internal/catalog"
)

// ShoeFilters are passed through to the backend's filtered listings.
type ShoeFilters struct {
	Search   string
	Brand    string
	Category string
	Gender   string
	SortBy   string
	SortDir  string
	Page     int
	Size     int
}

func (f ShoeFilters) values() url.Values {
	v := url.Values{}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.Brand != "" {
		v.Set("brand", f.Brand)
	}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.Gender != "" {
		v.Set("gender", f.Gender)
	}
	if f.SortBy != "" {
		v.Set("sortBy", f.SortBy)
	}
	if f.SortDir != "" {
		v.Set("sortDir", f.SortDir)
	}
	if f.Page > 0 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	if f.Size > 0 {
		v.Set("size", strconv.Itoa(f.Size))
	}
	return v
}

// Key returns a stable cache-key fragment for these filters.
func (f ShoeFilters) Key() string {
	return f.values().Encode()
}

func (c *Client) Shoes(ctx context.Context, filters ShoeFilters) (*catalog.Page[catalog.Shoe], error) {
	var page catalog.Page[catalog.Shoe]
	if err := c.do(ctx, http.MethodGet, "/shoes/filtered", filters.values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ShoeModels returns every model of a shoe with its per-size inventory.
func (c *Client) ShoeModels(ctx context.Context, shoeID int64) ([]catalog.ShoeModel, error) {
	var models []catalog.ShoeModel
	path := "/products/shoe/" + strconv.FormatInt(shoeID, 10)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &models); err != nil {
		return nil, err
	}
	return models, nil
}

// ShoeInventory returns the admin listing of shoes with denormalized stock.
func (c *Client) ShoeInventory(ctx context.Context, filters ShoeFilters) (*catalog.Page[catalog.ShoeInventoryView], error) {
	var page catalog.Page[catalog.ShoeInventoryView]
	if err := c.do(ctx, http.MethodGet, "/shoes/with-model-count", filters.values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) ShoeStats(ctx context.Context) (*catalog.ShoeStats, error) {
	var stats catalog.ShoeStats
	if err := c.do(ctx, http.MethodGet, "/shoes/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
