package models

type OrderItem struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	OrderID    uint     `json:"order_id" gorm:"not null;index"`
	FoodItemID uint     `json:"food_item_id" gorm:"not null"`
	FoodItem   FoodItem `json:"-" gorm:"foreignKey:FoodItemID"`
	Quantity   int      `json:"quantity" gorm:"not null;check:quantity >= 1"`
	Price      float64  `json:"price" gorm:"not null"` // unit price frozen at order time

	// Joined from food_items for responses; not persisted.
	Name        string `json:"name,omitempty" gorm:"-"`
	Description string `json:"description,omitempty" gorm:"-"`
}
