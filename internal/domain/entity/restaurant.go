package entity

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant is a merchant account together with its public listing
// profile. The presentation fields (rating, distance, offers, reviews,
// expected delivery time) are independent scalars maintained by the
// restaurant itself; nothing here is computed server-side.
type Restaurant struct {
	ID                   uuid.UUID
	Username             string // Login handle; unique across restaurants.
	PasswordHash         string
	Name                 string
	Mobile               string
	Address              string
	ImageURL             string
	Cuisine              string
	OpenTime             string // Opaque display string, e.g. "09:00".
	CloseTime            string
	Rating               float64
	Distance             float64
	Offers               string
	Reviews              string
	ExpectedDeliveryTime string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
