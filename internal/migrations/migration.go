package migrations

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"foodorder/internal/models"
)

// Run migrates the schema and, when seed is set, loads the default users and
// menu into an empty database.
func Run(db *gorm.DB, seed bool) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return err
	}

	if seed {
		if err := seedUsers(db); err != nil {
			log.Printf("Warning: Failed to seed users: %v", err)
		}
		if err := seedFoodItems(db); err != nil {
			log.Printf("Warning: Failed to seed food items: %v", err)
		}
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

func seedUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding initial users...")

	users := []struct {
		name     string
		email    string
		password string
		role     string
		location string
	}{
		{"Captain Marvel", "marvel@nick.fury", "password123", "Admin", "India"},
		{"Captain America", "america@nick.fury", "password123", "Manager", "America"},
		{"Thanos", "thanos@nick.fury", "password123", "Member", "India"},
		{"Thor", "thor@nick.fury", "password123", "Member", "Wakanda"},
		{"Travis", "travis@nick.fury", "password123", "Member", "America"},
	}

	for _, u := range users {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := models.User{
			Name:     u.name,
			Email:    u.email,
			Password: string(hashed),
			Role:     u.role,
			Location: u.location,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Warning: Failed to create user %s: %v", u.name, err)
		} else {
			log.Printf("User %s created successfully", u.name)
		}
	}
	return nil
}

func seedFoodItems(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.FoodItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding initial food items...")

	items := []models.FoodItem{
		{Name: "Margherita Pizza", Description: "Classic pizza with tomato sauce, mozzarella, and basil", Price: 12.99, Available: true},
		{Name: "Chicken Burger", Description: "Grilled chicken burger with lettuce and mayo", Price: 8.99, Available: true},
		{Name: "Caesar Salad", Description: "Fresh romaine lettuce with Caesar dressing", Price: 7.99, Available: true},
		{Name: "Pasta Carbonara", Description: "Creamy pasta with bacon and parmesan", Price: 11.99, Available: true},
		{Name: "Fish Tacos", Description: "Three tacos with grilled fish and salsa", Price: 10.99, Available: true},
		{Name: "Veggie Wrap", Description: "Healthy wrap with mixed vegetables", Price: 6.99, Available: true},
		{Name: "Steak Sandwich", Description: "Tender steak with caramelized onions", Price: 14.99, Available: true},
		{Name: "Soup of the Day", Description: "Ask server for today's special", Price: 5.99, Available: true},
	}

	for _, item := range items {
		if err := db.Create(&item).Error; err != nil {
			log.Printf("Warning: Failed to create food item %s: %v", item.Name, err)
		} else {
			log.Printf("Food item %s added successfully", item.Name)
		}
	}
	return nil
}
