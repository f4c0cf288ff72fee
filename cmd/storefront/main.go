package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/yoave717/yoavsshoes/internal/api"
	"github.com/yoave717/yoavsshoes/internal/cart"
	h "github.com/yoave717/yoavsshoes/internal/http"
	"github.com/yoave717/yoavsshoes/internal/inventory"
	"github.com/yoave717/yoavsshoes/internal/persist"
	"github.com/yoave717/yoavsshoes/internal/query"
)

type Config struct {
	HTTPPort        string
	APIBaseURL      string
	RedisAddr       string
	RedisPassword   string
	CartOwnerID     string
	CartFile        string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		APIBaseURL:      getEnv("API_BASE_URL", "http://localhost:3001/api"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		CartOwnerID:     getEnv("CART_OWNER_ID", "default"),
		CartFile:        getEnv("CART_FILE", "cart.json"),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()
	ctx := context.Background()

	// Cart snapshots go to Redis when configured, a local file otherwise.
	var snaps persist.SnapshotStore
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatal("Redis connection failed:", err)
		}
		log.Printf("Redis ping succeeded")
		snaps = persist.NewRedisStore(redisClient, cfg.CartOwnerID)
	} else {
		snaps = persist.NewFileStore(cfg.CartFile)
	}

	cartStore := cart.NewStore(snaps)
	cartStore.Load(ctx)

	backend := api.NewClient(cfg.APIBaseURL)
	cache := query.New()
	reconciler := inventory.NewReconciler(cache, backend)

	cartHandler := h.NewCartHandler(cartStore)
	catalogHandler := h.NewCatalogHandler(cache, backend)
	adminHandler := h.NewAdminHandler(reconciler)
	checkoutHandler := h.NewCheckoutHandler(cartStore, backend)
	ordersHandler := h.NewOrdersHandler(cache, backend)

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(h.RequestIDMiddleware)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Get("/summary", cartHandler.GetSummary)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{model_id}/{size}", cartHandler.UpdateQuantity)
			r.Delete("/items/{model_id}/{size}", cartHandler.RemoveItem)
			r.Delete("/", cartHandler.ClearCart)
		})

		r.Post("/checkout", checkoutHandler.Checkout)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", ordersHandler.ListMyOrders)
			r.Get("/{order_id}", ordersHandler.GetOrder)
		})

		r.Route("/shoes", func(r chi.Router) {
			r.Get("/", catalogHandler.ListShoes)
			r.Get("/inventory", catalogHandler.ListShoeInventory)
			r.Get("/stats", catalogHandler.GetShoeStats)
			r.Get("/{shoe_id}/models", catalogHandler.ListShoeModels)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/inventory", adminHandler.CreateInventory)
			r.Patch("/inventory/{inventory_id}", adminHandler.UpdateInventory)
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Storefront gateway starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
