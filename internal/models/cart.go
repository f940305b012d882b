package models

// CartLine es una línea del carrito. Los campos de presentación son una copia
// del producto tomada al momento de agregarlo.
type CartLine struct {
	ProductID     int64  `json:"id"`
	Name          string `json:"name"`
	Brand         string `json:"brand"`
	Price         int64  `json:"price"`
	OriginalPrice *int64 `json:"originalPrice,omitempty"`
	Image         string `json:"image"`
	Discount      *int   `json:"discount,omitempty"`
	Size          string `json:"size,omitempty"`
	Color         string `json:"color,omitempty"`
	Quantity      int    `json:"quantity"`
}

// Subtotal retorna precio por cantidad
func (l CartLine) Subtotal() int64 {
	return l.Price * int64(l.Quantity)
}

// WishlistEntry es un producto guardado en la lista de deseos
type WishlistEntry struct {
	ProductID     int64   `json:"id"`
	Name          string  `json:"name"`
	Brand         string  `json:"brand"`
	Price         int64   `json:"price"`
	OriginalPrice *int64  `json:"originalPrice,omitempty"`
	Image         string  `json:"image"`
	Rating        float64 `json:"rating"`
	Discount      *int    `json:"discount,omitempty"`
	InStock       bool    `json:"inStock"`
}

// NewCartLine copia los campos del producto en una línea nueva con cantidad 1
func NewCartLine(p Product, size, color string) CartLine {
	return CartLine{
		ProductID:     p.ID,
		Name:          p.Name,
		Brand:         p.Brand,
		Price:         p.Price,
		OriginalPrice: copyPtr(p.OriginalPrice),
		Image:         p.Image,
		Discount:      copyPtr(p.Discount),
		Size:          size,
		Color:         color,
		Quantity:      1,
	}
}

// NewWishlistEntry copia los campos del producto. InStock siempre es true.
func NewWishlistEntry(p Product) WishlistEntry {
	return WishlistEntry{
		ProductID:     p.ID,
		Name:          p.Name,
		Brand:         p.Brand,
		Price:         p.Price,
		OriginalPrice: copyPtr(p.OriginalPrice),
		Image:         p.Image,
		Rating:        p.Rating,
		Discount:      copyPtr(p.Discount),
		InStock:       true,
	}
}

func copyPtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
