package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"foodorder/internal/migrations"
	"foodorder/internal/models"
	"foodorder/internal/token"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, migrations.Run(db, false))
	return db
}

func claimsFor(userID uint, role, location string) *token.Claims {
	return &token.Claims{
		UserID:   userID,
		Email:    "someone@nick.fury",
		Name:     "Someone",
		Role:     role,
		Location: location,
	}
}

func seedFoodItem(t *testing.T, db *gorm.DB, name string, price float64, available bool) *models.FoodItem {
	t.Helper()

	item := &models.FoodItem{
		Name:        name,
		Description: name + " description",
		Price:       price,
		Available:   available,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func seedUser(t *testing.T, db *gorm.DB, name, email, role, location string) *models.User {
	t.Helper()

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: "not-a-real-hash",
		Role:     role,
		Location: location,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
