package catalog

import (
	"time"

	"storefront/internal/models"
)

const seedBrand = "DRIPZOID"

// SeedProducts retorna el inventario de demostración con el que se llena un
// catálogo vacío. Cada llamada devuelve una copia nueva.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:            1,
			Name:          "Oversized Drip Hoodie",
			Price:         1999,
			OriginalPrice: models.Ptr[int64](2999),
			Image:         "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=400&h=400&fit=crop",
			Brand:         seedBrand,
			Rating:        4.5,
			Reviews:       128,
			Discount:      models.Ptr(33),
			Sizes:         []string{"S", "M", "L", "XL", "XXL"},
			Colors:        []string{"Black", "White", "Gray"},
			Category:      "Men",
			Description:   "Premium oversized hoodie with street-inspired design",
			InStock:       true,
			CreatedAt:     seedDate(1, 15),
		},
		{
			ID:            2,
			Name:          "Streetwear Cargo Pants",
			Price:         1799,
			OriginalPrice: models.Ptr[int64](2299),
			Image:         "https://images.unsplash.com/photo-1473966968600-fa801b869a1a?w=400&h=400&fit=crop",
			Brand:         seedBrand,
			Rating:        4.3,
			Reviews:       89,
			Discount:      models.Ptr(22),
			Sizes:         []string{"S", "M", "L", "XL"},
			Colors:        []string{"Olive", "Black", "Navy"},
			Category:      "Men",
			Description:   "Multi-pocket cargo pants for urban style",
			InStock:       true,
			CreatedAt:     seedDate(1, 20),
		},
		{
			ID:            3,
			Name:          "Urban Graphic Tee",
			Price:         799,
			OriginalPrice: models.Ptr[int64](1299),
			Image:         "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400&h=400&fit=crop",
			Brand:         seedBrand,
			Rating:        4.6,
			Reviews:       203,
			Discount:      models.Ptr(38),
			Sizes:         []string{"S", "M", "L", "XL", "XXL"},
			Colors:        []string{"Black", "White", "Red"},
			Category:      "Men",
			Description:   "Stylish graphic tee with urban artwork",
			InStock:       true,
			CreatedAt:     seedDate(1, 10),
		},
		{
			ID:            4,
			Name:          "Denim Bomber Jacket",
			Price:         2499,
			OriginalPrice: models.Ptr[int64](3499),
			Image:         "https://images.unsplash.com/photo-1544966503-7cc5ac882d5c?w=400&h=400&fit=crop",
			Brand:         seedBrand,
			Rating:        4.8,
			Reviews:       67,
			Discount:      models.Ptr(29),
			Sizes:         []string{"S", "M", "L", "XL"},
			Colors:        []string{"Blue", "Black"},
			Category:      "Men",
			Description:   "Classic denim bomber with modern streetwear aesthetic",
			InStock:       true,
			CreatedAt:     seedDate(1, 25),
		},
		{
			ID:            5,
			Name:          "Sweat Shorts",
			Price:         899,
			OriginalPrice: models.Ptr[int64](1199),
			Image:         "https://images.unsplash.com/photo-1591195853828-11db59a44f6b?w=400&h=400&fit=crop",
			Brand:         seedBrand,
			Rating:        4.2,
			Reviews:       156,
			Discount:      models.Ptr(25),
			Sizes:         []string{"S", "M", "L", "XL"},
			Colors:        []string{"Black", "Gray", "Navy"},
			Category:      "Men",
			Description:   "Comfortable sweat shorts for casual wear",
			InStock:       true,
			CreatedAt:     seedDate(1, 5),
		},
		{
			ID:            6,
			Name:          "Oversized Tank Top",
			Price:         699,
			OriginalPrice: models.Ptr[int64](999),
			Image:         "https://images.unsplash.com/photo-1618354691373-d851c5c3a990?w=400&h=400&fit=crop",
			Brand:         seedBrand,
			Rating:        4.4,
			Reviews:       92,
			Discount:      models.Ptr(30),
			Sizes:         []string{"S", "M", "L", "XL", "XXL"},
			Colors:        []string{"White", "Black", "Gray"},
			Category:      "Men",
			Description:   "Relaxed fit tank top for summer streetwear",
			InStock:       true,
			CreatedAt:     seedDate(1, 30),
		},
		{
			ID:            7,
			Name:          "Crop Top Hoodie",
			Price:         1599,
			OriginalPrice: models.Ptr[int64](2199),
			Image:         "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=400&h=400&fit=crop",
			Brand:         seedBrand,
			Rating:        4.7,
			Reviews:       145,
			Discount:      models.Ptr(27),
			Sizes:         []string{"XS", "S", "M", "L", "XL"},
			Colors:        []string{"Pink", "Black", "White", "Purple"},
			Category:      "Women",
			Description:   "Trendy crop hoodie for the fashion-forward",
			InStock:       true,
			CreatedAt:     seedDate(1, 18),
		},
		{
			ID:            8,
			Name:          "High-Waist Joggers",
			Price:         1299,
			OriginalPrice: models.Ptr[int64](1799),
			Image:         "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=400&h=400&fit=crop",
			Brand:         seedBrand,
			Rating:        4.5,
			Reviews:       98,
			Discount:      models.Ptr(28),
			Sizes:         []string{"XS", "S", "M", "L", "XL"},
			Colors:        []string{"Black", "Gray", "Beige"},
			Category:      "Women",
			Description:   "Comfortable high-waist joggers with streetwear style",
			InStock:       true,
			CreatedAt:     seedDate(1, 22),
		},
	}
}

func seedDate(month time.Month, day int) time.Time {
	return time.Date(2024, month, day, 10, 0, 0, 0, time.UTC)
}
