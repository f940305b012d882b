package models

import (
	"time"
)

// Product representa un producto en el catálogo
type Product struct {
	ID            int64     `json:"id" validate:"required"`
	Name          string    `json:"name" validate:"required"`
	Brand         string    `json:"brand" validate:"required"`
	Price         int64     `json:"price" validate:"gte=0"`
	OriginalPrice *int64    `json:"originalPrice,omitempty"`
	Discount      *int      `json:"discount,omitempty" validate:"omitempty,gte=0,lte=100"`
	Image         string    `json:"image"`
	Rating        float64   `json:"rating" validate:"gte=0,lte=5"`
	Reviews       int       `json:"reviews" validate:"gte=0"`
	Sizes         []string  `json:"sizes"`
	Colors        []string  `json:"colors"`
	Category      string    `json:"category" validate:"required"`
	Description   string    `json:"description,omitempty"`
	InStock       bool      `json:"inStock"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ProductFilter agrupa los criterios opcionales de búsqueda del catálogo.
// Todos los criterios presentes se combinan con AND.
type ProductFilter struct {
	Category string   `json:"category,omitempty" form:"category"`
	PriceMin *int64   `json:"priceMin,omitempty" form:"min_price"`
	PriceMax *int64   `json:"priceMax,omitempty" form:"max_price"`
	Sizes    []string `json:"sizes,omitempty" form:"-"`
	Colors   []string `json:"colors,omitempty" form:"-"`
	Brands   []string `json:"brands,omitempty" form:"-"`
	Search   string   `json:"search,omitempty" form:"q"`
}

// Ptr devuelve un puntero al valor dado
func Ptr[T any](v T) *T {
	return &v
}
