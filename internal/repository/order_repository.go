package repository

import (
	"foodorder/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetAll() ([]models.Order, error)
	GetByUserID(userID uint) ([]models.Order, error)
	UpdateStatus(id uint, status string) (int64, error)
	UpdatePaymentMethod(id uint, method string) (int64, error)
	UpdatePaymentMethodOwned(id uint, method string, userID uint) (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create persists the order header and its line items as one transaction, so
// a failed item write never leaves an orphaned header behind.
func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByUserID(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateStatus(id uint, status string) (int64, error) {
	result := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *orderRepository) UpdatePaymentMethod(id uint, method string) (int64, error) {
	result := r.db.Model(&models.Order{}).Where("id = ?", id).Update("payment_method", method)
	return result.RowsAffected, result.Error
}

// UpdatePaymentMethodOwned scopes the update to the owner's orders in a
// single statement; zero rows means missing or not owned, indistinguishably.
func (r *orderRepository) UpdatePaymentMethodOwned(id uint, method string, userID uint) (int64, error) {
	result := r.db.Model(&models.Order{}).Where("id = ? AND user_id = ?", id, userID).Update("payment_method", method)
	return result.RowsAffected, result.Error
}
