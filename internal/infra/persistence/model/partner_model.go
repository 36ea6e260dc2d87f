package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryPartnerModel mirrors the 'delivery_partners' table.
type DeliveryPartnerModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username     string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Name         string    `gorm:"type:varchar(100)"`
	Mobile       string    `gorm:"type:varchar(20)"`
	Rating       float64
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Orders []OrderModel `gorm:"foreignKey:DeliveryPartnerID"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryPartnerModel) TableName() string {
	return "delivery_partners"
}
