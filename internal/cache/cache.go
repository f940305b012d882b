// Package cache guarda respuestas JSON del catálogo con expiración.
package cache

import (
	"encoding/json"
	"strings"
	"sync"
	"time"
)

type entry struct {
	data    []byte
	expires time.Time
}

func (e entry) expired(now time.Time) bool {
	return now.After(e.expires)
}

// Cache es un mapa de blobs JSON con TTL. La limpieza corre en background
// hasta Close.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

func New(ttl time.Duration) *Cache {
	c := &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go c.sweepEvery(5 * time.Minute)
	return c
}

// Put guarda el blob con el TTL del caché
func (c *Cache) Put(key string, data []byte) {
	c.PutFor(key, data, c.ttl)
}

func (c *Cache) PutFor(key string, data []byte, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{data: data, expires: c.now().Add(ttl)}
}

// Get retorna el blob si existe y no expiró
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || e.expired(c.now()) {
		return nil, false
	}
	return e.data, true
}

// Invalidate elimina las claves que empiezan con prefix
func (c *Cache) Invalidate(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) Close() {
	c.once.Do(func() { close(c.stop) })
}

func (c *Cache) sweepEvery(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.sweep()
		}
	}
}

func (c *Cache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, key)
		}
	}
}

// Marshal serializa value y lo guarda
func (c *Cache) Marshal(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.Put(key, data)
	return nil
}

// Unmarshal lee la clave en target. Retorna false si no está en caché.
func (c *Cache) Unmarshal(key string, target any) (bool, error) {
	data, ok := c.Get(key)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, target); err != nil {
		return false, err
	}
	return true, nil
}
