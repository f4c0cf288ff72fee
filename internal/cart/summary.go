package cart

const (
	// FreeShippingThreshold is the subtotal above which shipping is free.
	// The rule is strictly greater-than: a subtotal of exactly 100.00 still
	// pays the flat fee.
	FreeShippingThreshold = 100.0

	FlatShippingFee = 9.99
)

type Summary struct {
	ItemCount int     `json:"itemCount"`
	Subtotal  float64 `json:"subtotal"`
	Shipping  float64 `json:"shipping"`
	Total     float64 `json:"total"`
}

// Summarize computes checkout totals for a list of items. It is independent
// of the Store so callers can price arbitrary item lists.
func Summarize(items []Item) Summary {
	var sum Summary
	for _, it := range items {
		sum.ItemCount += it.Quantity
		sum.Subtotal += it.Price * float64(it.Quantity)
	}

	if sum.Subtotal > FreeShippingThreshold {
		sum.Shipping = 0
	} else {
		sum.Shipping = FlatShippingFee
	}

	sum.Total = sum.Subtotal + sum.Shipping
	return sum
}
