// Package cart guarda el carrito y la lista de deseos de una sesión.
// El estado vive sólo en memoria.
package cart

import (
	"slices"
	"sync"

	"storefront/internal/models"
)

// Snapshot es una copia del estado que reciben los suscriptores
type Snapshot struct {
	Lines    []models.CartLine      `json:"items"`
	Wishlist []models.WishlistEntry `json:"wishlist"`
	Total    int64                  `json:"total"`
	Count    int                    `json:"count"`
}

// Listener recibe el estado después de cada cambio
type Listener func(Snapshot)

type Store struct {
	mu        sync.RWMutex
	lines     []models.CartLine
	wishlist  []models.WishlistEntry
	listeners map[int]Listener
	nextID    int
}

func NewStore() *Store {
	return &Store{
		listeners: make(map[int]Listener),
	}
}

// AddToCart suma una unidad si el producto ya está en el carrito; si no,
// agrega una línea nueva con cantidad 1.
func (s *Store) AddToCart(p models.Product) {
	s.AddToCartWithOptions(p, "", "")
}

// AddToCartWithOptions es AddToCart guardando talla y color en la línea nueva.
// Una línea existente sólo incrementa su cantidad.
func (s *Store) AddToCartWithOptions(p models.Product, size, color string) {
	s.mutate(func() {
		if i := s.lineIndex(p.ID); i >= 0 {
			s.lines[i].Quantity++
			return
		}
		s.lines = append(s.lines, models.NewCartLine(p, size, color))
	})
}

// RemoveFromCart elimina la línea; no hace nada si no existe
func (s *Store) RemoveFromCart(id int64) {
	s.mutate(func() {
		s.lines = slices.DeleteFunc(s.lines, func(l models.CartLine) bool { return l.ProductID == id })
	})
}

// UpdateQuantity fija la cantidad de la línea. Una cantidad <= 0 la elimina.
func (s *Store) UpdateQuantity(id int64, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(id)
		return
	}
	s.mutate(func() {
		if i := s.lineIndex(id); i >= 0 {
			s.lines[i].Quantity = quantity
		}
	})
}

// AddToWishlist alterna el producto: lo quita si ya está, si no lo agrega
// con InStock en true.
func (s *Store) AddToWishlist(p models.Product) {
	s.mutate(func() {
		if i := s.wishlistIndex(p.ID); i >= 0 {
			s.wishlist = slices.Delete(s.wishlist, i, i+1)
			return
		}
		s.wishlist = append(s.wishlist, models.NewWishlistEntry(p))
	})
}

func (s *Store) RemoveFromWishlist(id int64) {
	s.mutate(func() {
		s.wishlist = slices.DeleteFunc(s.wishlist, func(e models.WishlistEntry) bool { return e.ProductID == id })
	})
}

func (s *Store) IsInWishlist(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wishlistIndex(id) >= 0
}

// Total es la suma de precio por cantidad de todas las líneas
func (s *Store) Total() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total()
}

// Count es la suma de cantidades, no la cantidad de líneas
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count()
}

func (s *Store) Lines() []models.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneLines(s.lines)
}

func (s *Store) Wishlist() []models.WishlistEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneWishlist(s.wishlist)
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// Subscribe registra un listener y retorna la función para darlo de baja
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// mutate aplica el cambio bajo el lock y notifica fuera de él
func (s *Store) mutate(fn func()) {
	s.mu.Lock()
	fn()
	snap := s.snapshot()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
}

func (s *Store) snapshot() Snapshot {
	return Snapshot{
		Lines:    cloneLines(s.lines),
		Wishlist: cloneWishlist(s.wishlist),
		Total:    s.total(),
		Count:    s.count(),
	}
}

func (s *Store) total() int64 {
	var total int64
	for _, l := range s.lines {
		total += l.Subtotal()
	}
	return total
}

func (s *Store) count() int {
	var count int
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

func (s *Store) lineIndex(id int64) int {
	return slices.IndexFunc(s.lines, func(l models.CartLine) bool { return l.ProductID == id })
}

func (s *Store) wishlistIndex(id int64) int {
	return slices.IndexFunc(s.wishlist, func(e models.WishlistEntry) bool { return e.ProductID == id })
}

func cloneLines(lines []models.CartLine) []models.CartLine {
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	return out
}

func cloneWishlist(entries []models.WishlistEntry) []models.WishlistEntry {
	out := make([]models.WishlistEntry, len(entries))
	copy(out, entries)
	return out
}
