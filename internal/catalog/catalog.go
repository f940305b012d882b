// Package catalog expone el catálogo de productos junto con los usuarios y
// pedidos simulados de la tienda.
package catalog

import (
	"context"
	"fmt"
	"log"
	"sync"

	"storefront/internal/models"
)

// ProductStore es el repositorio de productos que usa el catálogo
type ProductStore interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id int64) (models.Product, bool, error)
	ReplaceAll(ctx context.Context, products []models.Product) error
}

// UserStore es el repositorio de usuarios
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, bool, error)
	Update(ctx context.Context, id int64, update models.UserUpdate) (models.User, bool, error)
}

// OrderStore es el repositorio de pedidos
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	FindByUser(ctx context.Context, userID int64) ([]models.Order, error)
}

type Catalog struct {
	products ProductStore
	users    UserStore
	orders   OrderStore
	seed     func() []models.Product

	// serializa la siembra y las escrituras de usuarios y pedidos
	mu sync.Mutex
}

func New(products ProductStore, users UserStore, orders OrderStore) *Catalog {
	return &Catalog{
		products: products,
		users:    users,
		orders:   orders,
		seed:     SeedProducts,
	}
}

// ListProducts retorna los productos que cumplen el filtro. Si la colección
// está vacía primero la llena con los productos de demostración.
func (c *Catalog) ListProducts(ctx context.Context, filter *models.ProductFilter) ([]models.Product, error) {
	products, err := c.loadOrSeed(ctx)
	if err != nil {
		return nil, err
	}
	return Apply(products, filter), nil
}

// GetProductByID busca un producto; false si no existe
func (c *Catalog) GetProductByID(ctx context.Context, id int64) (models.Product, bool, error) {
	p, found, err := c.products.FindByID(ctx, id)
	if err != nil || found {
		return p, found, err
	}

	// puede que el catálogo todavía no se haya sembrado
	_, seeded, err := c.seedIfEmpty(ctx)
	if err != nil || !seeded {
		return models.Product{}, false, err
	}
	return c.products.FindByID(ctx, id)
}

func (c *Catalog) loadOrSeed(ctx context.Context) ([]models.Product, error) {
	products, err := c.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) > 0 {
		return products, nil
	}

	products, _, err = c.seedIfEmpty(ctx)
	return products, err
}

// seedIfEmpty vuelve a leer bajo el lock y siembra solo si la colección sigue vacía
func (c *Catalog) seedIfEmpty(ctx context.Context) ([]models.Product, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	products, err := c.products.FindAll(ctx)
	if err != nil {
		return nil, false, err
	}
	if len(products) > 0 {
		return products, false, nil
	}

	products = c.seed()
	for _, p := range products {
		if err := models.ValidateProduct(p); err != nil {
			return nil, false, fmt.Errorf("invalid seed product %d: %w", p.ID, err)
		}
	}
	if err := c.products.ReplaceAll(ctx, products); err != nil {
		return nil, false, err
	}
	log.Printf("🌱 Seeded catalog with %d products", len(products))
	return products, true, nil
}

// CreateUser registra un usuario. Los emails duplicados no se rechazan aquí.
func (c *Catalog) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.users.Create(ctx, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (c *Catalog) GetUserByEmail(ctx context.Context, email string) (models.User, bool, error) {
	return c.users.FindByEmail(ctx, email)
}

// UpdateUser aplica una actualización parcial; false si el usuario no existe
func (c *Catalog) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.users.Update(ctx, id, update)
}

func (c *Catalog) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.orders.Create(ctx, &order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (c *Catalog) GetUserOrders(ctx context.Context, userID int64) ([]models.Order, error) {
	return c.orders.FindByUser(ctx, userID)
}
