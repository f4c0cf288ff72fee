package inventory

import "strconv"

// Cache keys for the catalog views the reconciler maintains. The gateway
// handlers populate these same keys, so an optimistic write here lands on the
// entries readers actually see.
const (
	modelListPrefix     = "shoe-models:"
	InventoryPagePrefix = "shoes:inventory:"
	StatsKey            = "shoe-stats"
)

func ModelListKey(shoeID int64) string {
	return modelListPrefix + strconv.FormatInt(shoeID, 10)
}

func InventoryPageKey(filterKey string) string {
	return InventoryPagePrefix + filterKey
}
