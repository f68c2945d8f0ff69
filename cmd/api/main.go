package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/printguard/printguard-api/internal/advisory"
	"github.com/printguard/printguard-api/internal/config"
	"github.com/printguard/printguard-api/internal/credentials"
	"github.com/printguard/printguard-api/internal/routes"
	"github.com/printguard/printguard-api/internal/storage"
	"github.com/printguard/printguard-api/internal/store"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	kv := newStorage(cfg)

	ctx := context.Background()

	st, err := store.New(ctx, kv)
	if err != nil {
		log.Fatalf("failed to load collections: %v", err)
	}

	creds, err := credentials.New(ctx, kv)
	if err != nil {
		log.Fatalf("failed to load credentials: %v", err)
	}

	advisor := advisory.NewClient(cfg.GeminiAPIKey)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, st, creds, advisor, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func newStorage(cfg *config.Config) storage.Store {
	if cfg.StorageDriver == "memory" {
		log.Printf("using in-memory storage, data will not survive restarts")
		return storage.NewMemoryStore()
	}

	kv, err := storage.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	return kv
}
