package models

import (
	"time"
)

type Order struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	UserID        uint        `json:"user_id" gorm:"not null;index"`
	User          User        `json:"-" gorm:"foreignKey:UserID"`
	Status        string      `json:"status" gorm:"not null;default:'pending'"`
	TotalAmount   float64     `json:"total_amount" gorm:"not null"`
	PaymentMethod string      `json:"payment_method" gorm:"not null"`
	Items         []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time   `json:"created_at"`
}

// OrderStatus labels the well-known order states. The status column itself is
// a free-form label: Admins and Managers may set any non-empty value.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)
