package repository

import (
	"context"
	"errors"

	"platter/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDishNotFound is returned when a dish is not found.
var ErrDishNotFound = errors.New("dish not found")

// DishRepository defines the standard operations for menu persistence.
type DishRepository interface {
	// Create persists a new dish entity to the storage.
	Create(ctx context.Context, dish *entity.Dish) error

	// FindByID retrieves a single dish by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Dish, error)

	// FindByRestaurant retrieves all dishes owned by one restaurant.
	FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Dish, error)

	// Update modifies an existing dish entity in the storage.
	Update(ctx context.Context, dish *entity.Dish) error
}
