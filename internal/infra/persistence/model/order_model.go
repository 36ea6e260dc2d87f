package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. DeliveryPartnerID stays NULL
// until a partner is assigned on acceptance.
type OrderModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RestaurantID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID            uuid.UUID  `gorm:"type:uuid;not null;index"`
	DeliveryPartnerID *uuid.UUID `gorm:"type:uuid;index"`
	Total             float64    `gorm:"not null"`
	Status            string     `gorm:"type:varchar(20);not null"`
	CreatedAt         time.Time  `gorm:"index"`
	UpdatedAt         time.Time

	Dishes []OrderDishModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderDishModel mirrors the 'order_dishes' link table. Rows are
// written once at placement and never touched again.
type OrderDishModel struct {
	OrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	DishID  uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (OrderDishModel) TableName() string {
	return "order_dishes"
}
