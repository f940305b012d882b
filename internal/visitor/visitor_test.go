package visitor

import (
	"bytes"
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
	"storefront/internal/storage"
)

func TestRegistryReturnsSameVisitor(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(storage.NewMemory(), "dripzoid_", 0)

	a, err := r.Get(ctx, "a")
	require.NoError(t, err)
	again, err := r.Get(ctx, "a")
	require.NoError(t, err)
	b, err := r.Get(ctx, "b")
	require.NoError(t, err)

	assert.Same(t, a, again)
	assert.NotSame(t, a.Cart, b.Cart)
	assert.Equal(t, 2, r.Len())
}

func TestForgetKeepsPersistedSessionButDropsCart(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	r := NewRegistry(kv, "dripzoid_", 0)

	v, err := r.Get(ctx, "a")
	require.NoError(t, err)
	require.NoError(t, v.Session.Login(ctx, models.UserSession{ID: "1", FirstName: "Kabir", Email: "k@dripzoid.in"}))
	v.Cart.AddToCart(models.Product{ID: 1, Price: 1999})

	_, err = kv.Get(ctx, "dripzoid_user_a")
	require.NoError(t, err)

	r.Forget("a")
	back, err := r.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, back.Session.IsLoggedIn())
	assert.Zero(t, back.Cart.Count())
}

func TestCloseDropsVisitors(t *testing.T) {
	r := NewRegistry(storage.NewMemory(), "dripzoid_", 0)
	_, err := r.Get(context.Background(), NewID())
	require.NoError(t, err)

	require.NoError(t, r.Close())
	assert.Zero(t, r.Len())
}

func TestEvictDropsIdleAnonymousVisitors(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	r := NewRegistry(kv, "dripzoid_", 30*time.Minute)
	defer r.Close()

	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	r.mu.Lock()
	r.now = func() time.Time { return now }
	r.mu.Unlock()

	const anonymous = 500
	for range anonymous {
		_, err := r.Get(ctx, NewID())
		require.NoError(t, err)
	}
	require.Equal(t, anonymous, r.Len())

	now = now.Add(20 * time.Minute)
	active, err := r.Get(ctx, "active")
	require.NoError(t, err)
	require.NoError(t, active.Session.Login(ctx, models.UserSession{ID: "1", FirstName: "Kabir"}))

	now = now.Add(15 * time.Minute)
	_, err = r.Get(ctx, "active")
	require.NoError(t, err)

	assert.Equal(t, anonymous, r.Evict())
	assert.Equal(t, 1, r.Len())

	now = now.Add(time.Hour)
	assert.Equal(t, 1, r.Evict())
	assert.Zero(t, r.Len())

	back, err := r.Get(ctx, "active")
	require.NoError(t, err)
	assert.True(t, back.Session.IsLoggedIn())
}

func TestEvictDisabledWithoutIdle(t *testing.T) {
	r := NewRegistry(storage.NewMemory(), "dripzoid_", 0)
	_, err := r.Get(context.Background(), NewID())
	require.NoError(t, err)

	assert.Zero(t, r.Evict())
	assert.Equal(t, 1, r.Len())
}

func TestSweepInterval(t *testing.T) {
	assert.Equal(t, time.Minute, sweepInterval(time.Hour))
	assert.Equal(t, 10*time.Second, sweepInterval(20*time.Second))
	assert.Equal(t, time.Nanosecond, sweepInterval(time.Nanosecond))
}

func TestCartChangesAreLoggedUntilForget(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	r := NewRegistry(storage.NewMemory(), "dripzoid_", 0)
	v, err := r.Get(context.Background(), "a")
	require.NoError(t, err)

	v.Cart.AddToCart(models.Product{ID: 1, Price: 1999})
	assert.Contains(t, buf.String(), "Visitor a cart: 1 items, total 1999")

	r.Forget("a")
	buf.Reset()
	v.Cart.AddToCart(models.Product{ID: 2, Price: 799})
	assert.Empty(t, buf.String())
}
