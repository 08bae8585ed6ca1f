package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"foodorder/internal/config"
	"foodorder/internal/database"
	"foodorder/internal/handlers"
	"foodorder/internal/migrations"
	"foodorder/internal/redis"
	"foodorder/internal/repository"
	"foodorder/internal/services"
	"foodorder/internal/token"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Migrate schema and seed default data
	if err := migrations.Run(db, cfg.SeedData); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize catalog cache; the API works without it
	var cache services.CatalogCache
	if client, err := redis.Initialize(cfg.RedisURL, time.Duration(cfg.CatalogCacheTTL)*time.Second); err != nil {
		log.Printf("Warning: Redis unavailable, catalog caching disabled: %v", err)
	} else {
		cache = client
	}

	// Initialize token service
	tokens := token.NewService(cfg.JWTSecret)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	foodRepo := repository.NewFoodItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, tokens)
	catalogService := services.NewCatalogService(foodRepo, cache)
	orderService := services.NewOrderService(orderRepo, foodRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, cfg.Production())
	foodHandler := handlers.NewFoodHandler(catalogService, orderService, cfg.Production())

	// Setup routes
	router := gin.Default()
	handlers.RegisterRoutes(router, tokens, authHandler, foodHandler)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
