package catalog

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/storage"
)

func newCatalog(t *testing.T) (*Catalog, *storage.Memory) {
	t.Helper()
	kv := storage.NewMemory()
	c := New(
		repository.NewProductRepository(kv, "dripzoid_"),
		repository.NewUserRepository(kv, "dripzoid_"),
		repository.NewOrderRepository(kv, "dripzoid_"),
	)
	return c, kv
}

func TestListProductsSeedsEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	c, kv := newCatalog(t)

	first, err := c.ListProducts(ctx, nil)
	require.NoError(t, err)
	require.Len(t, first, 8)

	raw, err := kv.Get(ctx, "dripzoid_products")
	require.NoError(t, err)
	assert.NotEmpty(t, raw)

	// la segunda llamada lee lo persistido en lugar de sembrar otra vez
	c.seed = func() []models.Product {
		t.Fatal("catalog reseeded")
		return nil
	}
	second, err := c.ListProducts(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSeedProductsAreValid(t *testing.T) {
	seen := map[int64]bool{}
	for _, p := range SeedProducts() {
		assert.NoError(t, models.ValidateProduct(p), p.Name)
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
	}
}

func TestListProductsFilters(t *testing.T) {
	ctx := context.Background()
	c, _ := newCatalog(t)

	tests := []struct {
		name   string
		filter models.ProductFilter
		ids    []int64
	}{
		{"category is case insensitive", models.ProductFilter{Category: "wOmEn"}, []int64{7, 8}},
		{"price bounds are inclusive", models.ProductFilter{PriceMin: models.Ptr[int64](799), PriceMax: models.Ptr[int64](1299)}, []int64{3, 5, 8}},
		{"any size overlaps", models.ProductFilter{Sizes: []string{"XS"}}, []int64{7, 8}},
		{"any color overlaps", models.ProductFilter{Colors: []string{"Olive", "Blue"}}, []int64{2, 4}},
		{"brand membership", models.ProductFilter{Brands: []string{"OTHER"}}, []int64{}},
		{"search matches description", models.ProductFilter{Search: "URBAN"}, []int64{2, 3}},
		{"search matches brand", models.ProductFilter{Search: "dripz"}, []int64{1, 2, 3, 4, 5, 6, 7, 8}},
		{"criteria are combined", models.ProductFilter{Category: "men", Colors: []string{"Gray"}, PriceMax: models.Ptr[int64](1000)}, []int64{5, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := c.ListProducts(ctx, &tt.filter)
			require.NoError(t, err)

			ids := make([]int64, 0, len(products))
			for _, p := range products {
				ids = append(ids, p.ID)
			}
			assert.ElementsMatch(t, tt.ids, ids)
		})
	}
}

func TestCategoryFilterOnlyReturnsMatchingCategory(t *testing.T) {
	ctx := context.Background()
	c, _ := newCatalog(t)

	for _, cat := range []string{"Men", "MEN", "women", "Kids"} {
		products, err := c.ListProducts(ctx, &models.ProductFilter{Category: cat})
		require.NoError(t, err)
		for _, p := range products {
			assert.True(t, strings.EqualFold(p.Category, cat))
		}
	}
}

func TestSortProducts(t *testing.T) {
	products := SeedProducts()
	original := SeedProducts()

	t.Run("price_low is non decreasing", func(t *testing.T) {
		sorted := SortProducts(products, SortPriceLow)
		for i := 1; i < len(sorted); i++ {
			assert.LessOrEqual(t, sorted[i-1].Price, sorted[i].Price)
		}
	})

	t.Run("price_high is non increasing", func(t *testing.T) {
		sorted := SortProducts(products, SortPriceHigh)
		for i := 1; i < len(sorted); i++ {
			assert.GreaterOrEqual(t, sorted[i-1].Price, sorted[i].Price)
		}
	})

	t.Run("rating", func(t *testing.T) {
		sorted := SortProducts(products, SortRating)
		assert.Equal(t, int64(4), sorted[0].ID)
	})

	t.Run("newest", func(t *testing.T) {
		sorted := SortProducts(products, SortNewest)
		assert.Equal(t, int64(6), sorted[0].ID)
		assert.Equal(t, int64(5), sorted[len(sorted)-1].ID)
	})

	t.Run("unknown key falls back to popularity", func(t *testing.T) {
		popular := SortProducts(products, SortPopularity)
		unknown := SortProducts(products, "bogus")
		assert.Equal(t, int64(3), popular[0].ID)
		assert.Equal(t, popular[0].ID, unknown[0].ID)
		for i := 1; i < len(unknown); i++ {
			assert.GreaterOrEqual(t, unknown[i-1].Reviews, unknown[i].Reviews)
		}
	})

	assert.Equal(t, original, products, "input must not be reordered")
	assert.Empty(t, SortProducts(nil, SortRating))
}

func TestGetProductByID(t *testing.T) {
	ctx := context.Background()
	c, _ := newCatalog(t)

	p, found, err := c.GetProductByID(ctx, 7)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Crop Top Hoodie", p.Name)

	_, found, err = c.GetProductByID(ctx, 99)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUsersAndOrders(t *testing.T) {
	ctx := context.Background()
	c, _ := newCatalog(t)

	user, err := c.CreateUser(ctx, models.User{Email: "riya@dripzoid.in", Name: "Riya"})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	found, ok, err := c.GetUserByEmail(ctx, "riya@dripzoid.in")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, user.ID, found.ID)

	name := "Riya S"
	updated, ok, err := c.UpdateUser(ctx, user.ID, models.UserUpdate{Name: &name})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Riya S", updated.Name)

	order, err := c.CreateOrder(ctx, models.Order{
		UserID: user.ID,
		Items:  []models.OrderItem{{ProductID: 1, Quantity: 1, Size: "M", Color: "Black", Price: 1999}},
		Total:  1999,
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, order.Status)

	orders, err := c.GetUserOrders(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

type failingProducts struct{}

func (failingProducts) FindAll(context.Context) ([]models.Product, error) {
	return nil, errors.New("disk on fire")
}

func (failingProducts) FindByID(context.Context, int64) (models.Product, bool, error) {
	return models.Product{}, false, errors.New("disk on fire")
}

func (failingProducts) ReplaceAll(context.Context, []models.Product) error {
	return nil
}

func TestListProductsPropagatesStorageFailure(t *testing.T) {
	c := New(failingProducts{}, nil, nil)
	_, err := c.ListProducts(context.Background(), nil)
	assert.Error(t, err)

	_, _, err = c.GetProductByID(context.Background(), 1)
	assert.Error(t, err)
}

func TestGetProductByIDSeedsOnlyOnce(t *testing.T) {
	ctx := context.Background()
	c, _ := newCatalog(t)

	p, found, err := c.GetProductByID(ctx, 4)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(4), p.ID)

	c.seed = func() []models.Product {
		t.Fatal("catalog reseeded")
		return nil
	}
	_, found, err = c.GetProductByID(ctx, 404)
	require.NoError(t, err)
	assert.False(t, found)
}

// gatedProducts retiene cada FindAll hasta que el test lo libera
type gatedProducts struct {
	ProductStore
	arrived chan struct{}
	release chan struct{}
}

func (g *gatedProducts) FindAll(ctx context.Context) ([]models.Product, error) {
	g.arrived <- struct{}{}
	<-g.release
	return g.ProductStore.FindAll(ctx)
}

func TestSeededReadsRunConcurrently(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	repo := repository.NewProductRepository(kv, "dripzoid_")
	require.NoError(t, repo.ReplaceAll(ctx, SeedProducts()))

	gate := &gatedProducts{ProductStore: repo, arrived: make(chan struct{}), release: make(chan struct{})}
	c := New(gate, nil, nil)

	const readers = 3
	var wg sync.WaitGroup
	errs := make(chan error, readers)
	for range readers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			products, err := c.ListProducts(ctx, nil)
			if err == nil && len(products) != 8 {
				err = errors.New("unexpected product count")
			}
			errs <- err
		}()
	}

	for i := 0; i < readers; i++ {
		select {
		case <-gate.arrived:
		case <-time.After(2 * time.Second):
			close(gate.release)
			t.Fatalf("only %d of %d reads reached storage at the same time", i, readers)
		}
	}
	close(gate.release)
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}
