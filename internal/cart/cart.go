package cart

// Item is a single cart line, identified by (ModelID, Size). The JSON tags
// match the snapshot format the web client persisted, so old carts rehydrate.
type Item struct {
	ModelID   int64   `json:"id"`
	ModelName string  `json:"modelName"`
	BrandName string  `json:"brandName"`
	Color     string  `json:"color"`
	Size      string  `json:"size"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"imageUrl,omitempty"`
	SKU       string  `json:"sku"`
}

// State is the full cart. TotalItems and TotalAmount are always the fold of
// Items; every transition recomputes them.
type State struct {
	Items       []Item  `json:"items"`
	TotalItems  int     `json:"totalItems"`
	TotalAmount float64 `json:"totalAmount"`
}

func Empty() State {
	return State{Items: []Item{}}
}

// Add merges one more unit of the given item into the cart. An existing
// (ModelID, Size) line gets its quantity bumped by exactly 1; the Quantity
// field of the argument is ignored. Otherwise the item is appended with
// quantity 1, preserving insertion order.
func (s State) Add(item Item) State {
	items := make([]Item, len(s.Items))
	copy(items, s.Items)

	merged := false
	for i := range items {
		if items[i].ModelID == item.ModelID && items[i].Size == item.Size {
			items[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		item.Quantity = 1
		items = append(items, item)
	}

	return withTotals(items)
}

// Remove drops the matching line, if any. Removing an absent item is a no-op.
func (s State) Remove(modelID int64, size string) State {
	items := make([]Item, 0, len(s.Items))
	for _, it := range s.Items {
		if it.ModelID == modelID && it.Size == size {
			continue
		}
		items = append(items, it)
	}
	return withTotals(items)
}

// UpdateQuantity replaces the matching line's quantity. A quantity of zero or
// below removes the line instead.
func (s State) UpdateQuantity(modelID int64, size string, quantity int) State {
	if quantity <= 0 {
		return s.Remove(modelID, size)
	}

	items := make([]Item, len(s.Items))
	copy(items, s.Items)
	for i := range items {
		if items[i].ModelID == modelID && items[i].Size == size {
			items[i].Quantity = quantity
		}
	}
	return withTotals(items)
}

func (s State) Clear() State {
	return Empty()
}

// Quantity returns the quantity of the matching line, or 0 if absent.
func (s State) Quantity(modelID int64, size string) int {
	for _, it := range s.Items {
		if it.ModelID == modelID && it.Size == size {
			return it.Quantity
		}
	}
	return 0
}

func withTotals(items []Item) State {
	st := State{Items: items}
	for _, it := range items {
		st.TotalItems += it.Quantity
		st.TotalAmount += it.Price * float64(it.Quantity)
	}
	return st
}
