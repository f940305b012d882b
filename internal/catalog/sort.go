package catalog

import (
	"cmp"
	"slices"

	"storefront/internal/models"
)

// Claves de ordenamiento aceptadas
const (
	SortPriceLow   = "price_low"
	SortPriceHigh  = "price_high"
	SortRating     = "rating"
	SortNewest     = "newest"
	SortPopularity = "popularity"
)

// SortProducts retorna una copia ordenada. Una clave desconocida ordena por popularidad.
func SortProducts(products []models.Product, key string) []models.Product {
	sorted := slices.Clone(products)
	if sorted == nil {
		sorted = []models.Product{}
	}

	switch key {
	case SortPriceLow:
		slices.SortFunc(sorted, func(a, b models.Product) int { return cmp.Compare(a.Price, b.Price) })
	case SortPriceHigh:
		slices.SortFunc(sorted, func(a, b models.Product) int { return cmp.Compare(b.Price, a.Price) })
	case SortRating:
		slices.SortFunc(sorted, func(a, b models.Product) int { return cmp.Compare(b.Rating, a.Rating) })
	case SortNewest:
		slices.SortFunc(sorted, func(a, b models.Product) int { return b.CreatedAt.Compare(a.CreatedAt) })
	default:
		slices.SortFunc(sorted, func(a, b models.Product) int { return cmp.Compare(b.Reviews, a.Reviews) })
	}
	return sorted
}
