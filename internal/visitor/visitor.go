// Package visitor agrupa el carrito y la sesión de cada cliente conectado.
package visitor

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront/internal/cart"
	"storefront/internal/session"
	"storefront/internal/storage"
)

// Visitor es el estado de un cliente: carrito en memoria y sesión persistida
type Visitor struct {
	ID      string
	Cart    *cart.Store
	Session *session.Store
}

type entry struct {
	visitor     *Visitor
	seen        time.Time
	unsubscribe func()
}

// Registry mantiene los visitantes activos del proceso. Los que no se ven
// durante idle se descartan; su sesión persistida se conserva.
type Registry struct {
	mu       sync.Mutex
	kv       storage.KV
	prefix   string
	idle     time.Duration
	now      func() time.Time
	visitors map[string]*entry
	stop     chan struct{}
	once     sync.Once
}

// NewRegistry crea el registro. Con idle > 0 arranca la limpieza periódica
// hasta Close.
func NewRegistry(kv storage.KV, prefix string, idle time.Duration) *Registry {
	r := &Registry{
		kv:       kv,
		prefix:   prefix,
		idle:     idle,
		now:      time.Now,
		visitors: make(map[string]*entry),
		stop:     make(chan struct{}),
	}
	if idle > 0 {
		go r.sweepEvery(sweepInterval(idle))
	}
	return r
}

func sweepInterval(idle time.Duration) time.Duration {
	every := min(idle/2, time.Minute)
	if every <= 0 {
		return idle
	}
	return every
}

// NewID genera un identificador de visitante
func NewID() string {
	return uuid.NewString()
}

// SessionKey es la clave donde se guarda la sesión del visitante
func (r *Registry) SessionKey(id string) string {
	return r.prefix + "user_" + id
}

// Get retorna el visitante, creándolo si es la primera vez que se ve en este proceso
func (r *Registry) Get(ctx context.Context, id string) (*Visitor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.visitors[id]; ok {
		e.seen = r.now()
		return e.visitor, nil
	}

	nav := session.NavigatorFunc(func(path string) {
		log.Printf("↪️ Visitor %s redirected to %s", id, path)
	})
	sess, err := session.New(ctx, r.kv, r.SessionKey(id), nav)
	if err != nil {
		return nil, err
	}

	v := &Visitor{
		ID:      id,
		Cart:    cart.NewStore(),
		Session: sess,
	}
	unsubscribe := v.Cart.Subscribe(func(s cart.Snapshot) {
		log.Printf("🛒 Visitor %s cart: %d items, total %d, wishlist %d", id, s.Count, s.Total, len(s.Wishlist))
	})
	r.visitors[id] = &entry{visitor: v, seen: r.now(), unsubscribe: unsubscribe}
	return v, nil
}

// Forget descarta el estado en memoria del visitante. La sesión persistida se conserva.
func (r *Registry) Forget(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drop(id)
}

func (r *Registry) drop(id string) {
	if e, ok := r.visitors[id]; ok {
		e.unsubscribe()
		delete(r.visitors, id)
	}
}

// Evict descarta los visitantes sin actividad durante idle y retorna cuántos
func (r *Registry) Evict() int {
	if r.idle <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.idle)
	removed := 0
	for id, e := range r.visitors {
		if e.seen.Before(cutoff) {
			r.drop(id)
			removed++
		}
	}
	return removed
}

func (r *Registry) sweepEvery(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			if n := r.Evict(); n > 0 {
				log.Printf("🧹 Evicted %d idle visitors", n)
			}
		}
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.visitors)
}

// Close detiene la limpieza y descarta todos los visitantes
func (r *Registry) Close() error {
	r.once.Do(func() { close(r.stop) })

	r.mu.Lock()
	defer r.mu.Unlock()
	for id := range r.visitors {
		r.drop(id)
	}
	return nil
}
