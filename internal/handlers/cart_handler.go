package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/catalog"
	"storefront/internal/middleware"
)

type CartHandler struct {
	catalog *catalog.Catalog
}

func NewCartHandler(c *catalog.Catalog) *CartHandler {
	return &CartHandler{catalog: c}
}

type addToCartRequest struct {
	ProductID int64  `json:"product_id" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GET /v1/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	v := middleware.CurrentVisitor(c)
	c.JSON(http.StatusOK, v.Cart.Snapshot())
}

// POST /v1/cart
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, found, err := h.catalog.GetProductByID(c.Request.Context(), req.ProductID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get product"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	v := middleware.CurrentVisitor(c)
	v.Cart.AddToCartWithOptions(product, req.Size, req.Color)
	c.JSON(http.StatusOK, v.Cart.Snapshot())
}

// PATCH /v1/cart/:id
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	v := middleware.CurrentVisitor(c)
	v.Cart.UpdateQuantity(id, *req.Quantity)
	c.JSON(http.StatusOK, v.Cart.Snapshot())
}

// DELETE /v1/cart/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	v := middleware.CurrentVisitor(c)
	v.Cart.RemoveFromCart(id)
	c.JSON(http.StatusOK, v.Cart.Snapshot())
}

// GET /v1/wishlist
func (h *CartHandler) GetWishlist(c *gin.Context) {
	v := middleware.CurrentVisitor(c)
	c.JSON(http.StatusOK, gin.H{"data": v.Cart.Wishlist()})
}

// POST /v1/wishlist/:id agrega o quita el producto
func (h *CartHandler) ToggleWishlist(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
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

	v := middleware.CurrentVisitor(c)
	v.Cart.AddToWishlist(product)
	c.JSON(http.StatusOK, gin.H{
		"id":         id,
		"inWishlist": v.Cart.IsInWishlist(id),
		"data":       v.Cart.Wishlist(),
	})
}

// DELETE /v1/wishlist/:id
func (h *CartHandler) RemoveFromWishlist(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	v := middleware.CurrentVisitor(c)
	v.Cart.RemoveFromWishlist(id)
	c.JSON(http.StatusOK, gin.H{"data": v.Cart.Wishlist()})
}
