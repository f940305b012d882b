package repository

import (
	"context"

	"storefront/internal/models"
	"storefront/internal/storage"
)

type OrderRepository struct {
	orders collection[models.Order]
	ids    *idClock
}

func NewOrderRepository(kv storage.KV, prefix string) *OrderRepository {
	return &OrderRepository{
		orders: newCollection[models.Order](kv, prefix, OrdersCollection),
		ids:    newIDClock(),
	}
}

// Create guarda un pedido nuevo. Sin estado explícito queda como pending.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	orders, err := r.orders.load(ctx)
	if err != nil {
		return err
	}

	var floor int64
	for _, o := range orders {
		if o.ID > floor {
			floor = o.ID
		}
	}

	order.ID, order.CreatedAt = r.ids.next(floor)
	if order.Status == "" {
		order.Status = models.OrderPending
	}
	orders = append(orders, *order)
	return r.orders.save(ctx, orders)
}

// FindByUser lista los pedidos de un usuario en orden de creación
func (r *OrderRepository) FindByUser(ctx context.Context, userID int64) ([]models.Order, error) {
	orders, err := r.orders.load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Order, 0)
	for _, o := range orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, nil
}
