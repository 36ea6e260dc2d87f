package entity

import (
	"time"

	"github.com/google/uuid"
)

// Dish is a menu item owned by exactly one restaurant. The ownership
// never changes; updates mutate the row in place with no versioning.
type Dish struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	Name         string
	Description  string
	ImageURL     string
	Price        float64
	Rating       float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
