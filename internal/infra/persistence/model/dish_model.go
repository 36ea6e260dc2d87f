package model

import (
	"time"

	"github.com/google/uuid"
)

// DishModel mirrors the 'dishes' table. RestaurantID references restaurants.id (UUID).
type DishModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Description  string    `gorm:"type:text"`
	ImageURL     string    `gorm:"type:text"`
	Price        float64   `gorm:"not null"`
	Rating       float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DishModel) TableName() string {
	return "dishes"
}
