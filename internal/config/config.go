package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Drivers de almacenamiento soportados
const (
	DriverMemory  = "memory"
	DriverLevelDB = "leveldb"
	DriverMongo   = "mongo"
)

type Config struct {
	Port          string
	StorageDriver string
	LevelDBPath   string
	MongoURI      string
	MongoDB       string
	StoragePrefix string
	VisitorSecret string
	VisitorTTL    time.Duration
	VisitorIdle   time.Duration
	CacheTTL      time.Duration
}

func LoadConfig() *Config {
	// Solo cargar .env en desarrollo local
	if _, err := os.Stat(".env"); err == nil {
		err := godotenv.Load()
		if err != nil {
			log.Println("⚠️ Error loading .env file:", err)
		} else {
			log.Println("✅ .env file loaded successfully")
		}
	} else {
		log.Println("🌐 Using system environment variables")
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		StorageDriver: getEnv("STORAGE_DRIVER", DriverLevelDB),
		LevelDBPath:   getEnv("LEVELDB_PATH", "data/storefront.db"),
		MongoURI:      getEnv("MONGO_URI", ""),
		MongoDB:       getEnv("MONGO_DB", "storefront"),
		StoragePrefix: getEnv("STORAGE_PREFIX", "dripzoid_"),
		VisitorSecret: getEnv("VISITOR_SECRET", ""),
		VisitorTTL:    getDuration("VISITOR_TTL", 30*24*time.Hour),
		VisitorIdle:   getDuration("VISITOR_IDLE", 30*time.Minute),
		CacheTTL:      getDuration("CACHE_TTL", 2*time.Minute),
	}

	if cfg.VisitorSecret == "" {
		log.Println("⚠️ VISITOR_SECRET not set, using development secret")
		cfg.VisitorSecret = "dev-visitor-secret"
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("⚠️ Invalid %s=%q, using %s", key, value, fallback)
		return fallback
	}
	return d
}
