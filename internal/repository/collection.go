package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"storefront/internal/storage"
)

// Nombres de las colecciones. La clave final es prefijo + nombre.
const (
	ProductsCollection = "products"
	UsersCollection    = "users"
	OrdersCollection   = "orders"
)

// collection lee y escribe un arreglo JSON completo bajo una sola clave.
// Un valor ausente o corrupto se trata como colección vacía.
type collection[T any] struct {
	kv  storage.KV
	key string
}

func newCollection[T any](kv storage.KV, prefix, name string) collection[T] {
	return collection[T]{kv: kv, key: prefix + name}
}

func (c collection[T]) load(ctx context.Context) ([]T, error) {
	data, err := c.kv.Get(ctx, c.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", c.key, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("⚠️ Ignoring corrupted collection %s: %v", c.key, err)
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.kv.Set(ctx, c.key, data); err != nil {
		return fmt.Errorf("write %s: %w", c.key, err)
	}
	return nil
}

// idClock genera ids derivados del reloj en milisegundos, siempre crecientes
type idClock struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func newIDClock() *idClock {
	return &idClock{now: time.Now}
}

// next retorna un id mayor que el último emitido y que floor
func (c *idClock) next(floor int64) (int64, time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	id := now.UnixMilli()
	if id <= c.last {
		id = c.last + 1
	}
	if id <= floor {
		id = floor + 1
	}
	c.last = id
	return id, now.UTC()
}
