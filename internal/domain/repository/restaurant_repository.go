package repository

import (
	"context"
	"errors"

	"platter/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRestaurantNotFound is returned when a restaurant is not found.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantRepository defines the standard operations for restaurant persistence.
type RestaurantRepository interface {
	// Create persists a new restaurant entity to the storage.
	Create(ctx context.Context, restaurant *entity.Restaurant) error

	// FindByID retrieves a single restaurant by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// FindByUsername retrieves a single restaurant by its login handle.
	FindByUsername(ctx context.Context, username string) (*entity.Restaurant, error)

	// FindAll retrieves every restaurant for the public listing.
	FindAll(ctx context.Context) ([]*entity.Restaurant, error)

	// Update modifies an existing restaurant entity in the storage.
	Update(ctx context.Context, restaurant *entity.Restaurant) error
}
