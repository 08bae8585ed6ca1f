package repository

import (
	"foodorder/internal/models"

	"gorm.io/gorm"
)

type FoodItemRepository interface {
	Create(item *models.FoodItem) error
	GetByIDs(ids []uint) ([]models.FoodItem, error)
	GetAvailable() ([]models.FoodItem, error)
	GetAvailableByIDs(ids []uint) ([]models.FoodItem, error)
	UpdateFields(id uint, fields map[string]interface{}) (int64, error)
}

type foodItemRepository struct {
	db *gorm.DB
}

func NewFoodItemRepository(db *gorm.DB) FoodItemRepository {
	return &foodItemRepository{db: db}
}

func (r *foodItemRepository) Create(item *models.FoodItem) error {
	return r.db.Create(item).Error
}

func (r *foodItemRepository) GetByIDs(ids []uint) ([]models.FoodItem, error) {
	var items []models.FoodItem
	err := r.db.Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *foodItemRepository) GetAvailable() ([]models.FoodItem, error) {
	var items []models.FoodItem
	err := r.db.Where("available = ?", true).Find(&items).Error
	return items, err
}

func (r *foodItemRepository) GetAvailableByIDs(ids []uint) ([]models.FoodItem, error) {
	var items []models.FoodItem
	err := r.db.Where("id IN ? AND available = ?", ids, true).Find(&items).Error
	return items, err
}

// UpdateFields applies a partial update and reports how many rows matched.
func (r *foodItemRepository) UpdateFields(id uint, fields map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.FoodItem{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}
