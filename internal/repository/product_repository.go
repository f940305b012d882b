package repository

import (
	"context"

	"storefront/internal/models"
	"storefront/internal/storage"
)

type ProductRepository struct {
	products collection[models.Product]
}

func NewProductRepository(kv storage.KV, prefix string) *ProductRepository {
	return &ProductRepository{
		products: newCollection[models.Product](kv, prefix, ProductsCollection),
	}
}

// FindAll retorna la colección completa de productos
func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	return r.products.load(ctx)
}

// ReplaceAll reemplaza la colección completa
func (r *ProductRepository) ReplaceAll(ctx context.Context, products []models.Product) error {
	return r.products.save(ctx, products)
}

// FindByID obtiene un producto por ID
func (r *ProductRepository) FindByID(ctx context.Context, id int64) (models.Product, bool, error) {
	products, err := r.products.load(ctx)
	if err != nil {
		return models.Product{}, false, err
	}

	for _, p := range products {
		if p.ID == id {
			return p, true, nil
		}
	}
	return models.Product{}, false, nil
}
