package catalog

import (
	"slices"
	"strings"

	"storefront/internal/models"
)

// Apply retorna los productos que cumplen todos los criterios del filtro.
// Un filtro nil devuelve la lista completa.
func Apply(products []models.Product, f *models.ProductFilter) []models.Product {
	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f == nil || Matches(p, f) {
			result = append(result, p)
		}
	}
	return result
}

// Matches indica si el producto cumple el filtro
func Matches(p models.Product, f *models.ProductFilter) bool {
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.PriceMin != nil && p.Price < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && p.Price > *f.PriceMax {
		return false
	}
	if len(f.Sizes) > 0 && !overlaps(p.Sizes, f.Sizes) {
		return false
	}
	if len(f.Colors) > 0 && !overlaps(p.Colors, f.Colors) {
		return false
	}
	if len(f.Brands) > 0 && !slices.Contains(f.Brands, p.Brand) {
		return false
	}
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Brand), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			return false
		}
	}
	return true
}

func overlaps(have, want []string) bool {
	for _, v := range have {
		if slices.Contains(want, v) {
			return true
		}
	}
	return false
}
