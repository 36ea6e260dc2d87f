package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryPartner is a courier account. Partners are independent of
// both customers and restaurants and get attached to orders during the
// REST_ACCEPTED transition.
type DeliveryPartner struct {
	ID           uuid.UUID
	Username     string // Login handle; unique across partners.
	PasswordHash string
	Name         string
	Mobile       string
	Rating       float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
