package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/cache"
	"storefront/internal/catalog"
	"storefront/internal/models"
)

type ProductHandler struct {
	catalog *catalog.Catalog
	cache   *cache.Cache
}

func NewProductHandler(c *catalog.Catalog, cache *cache.Cache) *ProductHandler {
	return &ProductHandler{
		catalog: c,
		cache:   cache,
	}
}

// ListProducts lista productos filtrados y ordenados (con caché)
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var filter models.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	filter.Sizes = splitList(c.Query("sizes"))
	filter.Colors = splitList(c.Query("colors"))
	filter.Brands = splitList(c.Query("brands"))
	sortBy := c.DefaultQuery("sort", catalog.SortPopularity)

	cacheKey := fmt.Sprintf("products:list:%s", c.Request.URL.Query().Encode())

	var products []models.Product
	if found, _ := h.cache.Unmarshal(cacheKey, &products); !found {
		list, err := h.catalog.ListProducts(c.Request.Context(), &filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
			return
		}
		products = catalog.SortProducts(list, sortBy)
		_ = h.cache.Marshal(cacheKey, products)
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  nonNil(products),
		"total": len(products),
		"sort":  sortBy,
	})
}

// GetProduct obtiene un producto por ID (con caché)
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}
	cacheKey := fmt.Sprintf("product:%d", id)

	var product models.Product
	if found, _ := h.cache.Unmarshal(cacheKey, &product); found {
		c.JSON(http.StatusOK, product)
		return
	}

	product, found, err := h.catalog.GetProductByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get product"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	_ = h.cache.Marshal(cacheKey, product)
	c.JSON(http.StatusOK, product)
}

// productID lee el parámetro :id; responde 400 si no es un número
func productID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return 0, false
	}
	return id, true
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
