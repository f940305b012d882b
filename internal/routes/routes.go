package routes

import (
	"github.com/gin-gonic/gin"

	"storefront/internal/auth"
	"storefront/internal/cache"
	"storefront/internal/catalog"
	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/visitor"
)

// Dependencies son los componentes que necesitan los handlers
type Dependencies struct {
	Catalog  *catalog.Catalog
	Cache    *cache.Cache
	Visitors *visitor.Registry
	Tokens   *auth.Tokens
}

// RegisterRoutes registra la API bajo /v1. Los middlewares extra se aplican
// antes de resolver el visitante. Las lecturas del catálogo no crean visitantes.
func RegisterRoutes(router *gin.Engine, deps Dependencies, extra ...gin.HandlerFunc) {
	products := handlers.NewProductHandler(deps.Catalog, deps.Cache)
	carts := handlers.NewCartHandler(deps.Catalog)
	sessions := handlers.NewSessionHandler()
	accounts := handlers.NewAccountHandler(deps.Catalog)

	v1 := router.Group("/v1")
	v1.Use(extra...)
	{
		v1.GET("/products", products.ListProducts)
		v1.GET("/products/:id", products.GetProduct)

		v1.POST("/users", accounts.CreateUser)
		v1.GET("/users", accounts.GetUserByEmail)
		v1.PATCH("/users/:id", accounts.UpdateUser)
		v1.GET("/users/:id/orders", accounts.GetUserOrders)
		v1.POST("/orders", accounts.CreateOrder)
	}

	stateful := v1.Group("", middleware.Visitor(deps.Tokens, deps.Visitors))
	{
		stateful.GET("/cart", carts.GetCart)
		stateful.POST("/cart", middleware.RequireAuth(), carts.AddToCart)
		stateful.PATCH("/cart/:id", carts.UpdateQuantity)
		stateful.DELETE("/cart/:id", carts.RemoveFromCart)

		stateful.GET("/wishlist", carts.GetWishlist)
		stateful.POST("/wishlist/:id", middleware.RequireAuth(), carts.ToggleWishlist)
		stateful.DELETE("/wishlist/:id", carts.RemoveFromWishlist)

		stateful.GET("/session", sessions.GetSession)
		stateful.POST("/session", sessions.Login)
		stateful.DELETE("/session", sessions.Logout)
	}
}
