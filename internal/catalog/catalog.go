// Package catalog holds the wire model for the storefront backend resources.
// Field names and JSON tags follow the backend's response shapes.
package catalog

type Brand struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Shoe struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	BasePrice float64  `json:"basePrice"`
	Gender    string   `json:"gender"`
	Brand     Brand    `json:"brand"`
	Category  Category `json:"category"`
}

// InventorySize is the per-size stock record of a shoe model.
type InventorySize struct {
	ID                int64  `json:"id"`
	ShoeModelID       int64  `json:"shoeModelId"`
	Size              string `json:"size"`
	QuantityAvailable int    `json:"quantityAvailable"`
	QuantityReserved  int    `json:"quantityReserved"`
}

// ActualAvailable returns the stock actually sellable (available - reserved).
func (s InventorySize) ActualAvailable() int {
	return s.QuantityAvailable - s.QuantityReserved
}

func (s InventorySize) InStock() bool {
	return s.ActualAvailable() > 0
}

type ShoeModel struct {
	ID             int64           `json:"id"`
	ModelName      string          `json:"modelName"`
	Color          string          `json:"color"`
	Material       string          `json:"material,omitempty"`
	SKU            string          `json:"sku"`
	Price          float64         `json:"price"`
	ImageURL       string          `json:"imageUrl"`
	IsActive       bool            `json:"isActive"`
	DisplayName    string          `json:"displayName"`
	Shoe           Shoe            `json:"shoe"`
	AvailableSizes []InventorySize `json:"availableSizes"`
}

// ShoeInventoryView is the admin inventory listing entry: a shoe with its
// stock denormalized, without per-size detail.
type ShoeInventoryView struct {
	Shoe
	TotalStock int `json:"totalStock"`
	ModelCount int `json:"modelCount"`
}

// Page is the backend's pagination envelope.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

// ShoeStats is the aggregate for the admin overview cards.
type ShoeStats struct {
	TotalShoes    int `json:"totalShoes"`
	TotalModels   int `json:"totalModels"`
	TotalStock    int `json:"totalStock"`
	LowStockShoes int `json:"lowStockShoes"`
}
