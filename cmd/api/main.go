package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/auth"
	"storefront/internal/cache"
	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/repository"
	"storefront/internal/routes"
	"storefront/internal/storage"
	"storefront/internal/visitor"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.LoadConfig()

	kv, err := openStorage(cfg)
	if err != nil {
		log.Fatal("❌ Could not open storage: ", err)
	}
	defer kv.Close()

	responseCache := cache.New(cfg.CacheTTL)
	defer responseCache.Close()

	visitors := visitor.NewRegistry(kv, cfg.StoragePrefix, cfg.VisitorIdle)
	defer visitors.Close()

	deps := routes.Dependencies{
		Catalog: catalog.New(
			repository.NewProductRepository(kv, cfg.StoragePrefix),
			repository.NewUserRepository(kv, cfg.StoragePrefix),
			repository.NewOrderRepository(kv, cfg.StoragePrefix),
		),
		Cache:    responseCache,
		Visitors: visitors,
		Tokens:   auth.NewTokens([]byte(cfg.VisitorSecret), cfg.VisitorTTL),
	}

	router := gin.Default()
	validator, err := routes.RegisterDocs(router)
	if err != nil {
		log.Fatal("❌ Could not load API docs: ", err)
	}
	routes.RegisterRoutes(router, deps, validator)

	server := &http.Server{
		Handler:           router,
		Addr:              net.JoinHostPort("0.0.0.0", cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Println("🚀 Server running on port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Println("❌ Server stopped with error:", err)
		return
	}
	log.Println("👋 Server stopped")
}

func openStorage(cfg *config.Config) (storage.KV, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		log.Println("🧠 Using in-memory storage")
		return storage.NewMemory(), nil
	case config.DriverLevelDB:
		log.Println("📦 Using leveldb storage at", cfg.LevelDBPath)
		return storage.OpenLevelDB(cfg.LevelDBPath)
	case config.DriverMongo:
		if cfg.MongoURI == "" {
			return nil, errors.New("MONGO_URI is required for the mongo driver")
		}
		client, err := database.Connect(cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		collection := client.Database(cfg.MongoDB).Collection("storage")
		return storage.NewMongo(collection, client), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
