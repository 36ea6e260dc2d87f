package model

import (
	"time"

	"github.com/google/uuid"
)

// RestaurantModel mirrors the 'restaurants' table. The listing columns
// (rating, distance, offers, reviews) are plain scalars written by the
// restaurant account itself.
type RestaurantModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username             string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash         string    `gorm:"type:varchar(255);not null"`
	Name                 string    `gorm:"type:varchar(100)"`
	Mobile               string    `gorm:"type:varchar(20)"`
	Address              string    `gorm:"type:text"`
	ImageURL             string    `gorm:"type:text"`
	Cuisine              string    `gorm:"type:varchar(100)"`
	OpenTime             string    `gorm:"type:varchar(20)"`
	CloseTime            string    `gorm:"type:varchar(20)"`
	Rating               float64
	Distance             float64
	Offers               string `gorm:"type:text"`
	Reviews              string `gorm:"type:text"`
	ExpectedDeliveryTime string `gorm:"type:varchar(50)"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Dishes []DishModel  `gorm:"foreignKey:RestaurantID"`
	Orders []OrderModel `gorm:"foreignKey:RestaurantID"`
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}
