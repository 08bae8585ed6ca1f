package main

import (
	"fmt"
	"log"

	"foodorder/internal/config"
	"foodorder/internal/database"
	"foodorder/internal/migrations"
	"foodorder/internal/models"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.OrderItem{},
		&models.Order{},
		&models.FoodItem{},
		&models.User{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Create tables and seed default data
	fmt.Println("Creating tables...")
	if err := migrations.Run(db, true); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	fmt.Println("Database initialized successfully")
	fmt.Println("Seed users log in with password: password123")
}
