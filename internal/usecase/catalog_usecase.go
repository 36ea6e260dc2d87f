package usecase

import (
	"context"

	"platter/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddDishInput defines the data required to add a dish to a restaurant's menu.
type AddDishInput struct {
	RestaurantID uuid.UUID
	Name         string
	Description  string
	ImageURL     string
	Price        float64
	Rating       float64
}

// UpdateDishInput carries the mutable fields of an existing dish.
// RestaurantID scopes the update so one restaurant cannot edit
// another's menu.
type UpdateDishInput struct {
	DishID       uuid.UUID
	RestaurantID uuid.UUID
	Name         string
	Description  string
	ImageURL     string
	Price        float64
	Rating       float64
}

// --- Output DTOs ---

// MenuOutput is one restaurant's public menu: the owning restaurant's
// listing profile plus its dishes.
type MenuOutput struct {
	Restaurant *entity.Restaurant
	Dishes     []*entity.Dish
}

// CatalogUsecase defines the menu and restaurant browsing operations.
type CatalogUsecase interface {
	AddDish(ctx context.Context, input AddDishInput) (*entity.Dish, error)
	UpdateDish(ctx context.Context, input UpdateDishInput) (*entity.Dish, error)

	// ListDishes returns the menu of a restaurant; the restaurant must exist.
	ListDishes(ctx context.Context, restaurantID uuid.UUID) (*MenuOutput, error)

	// ListRestaurants returns every restaurant's listing profile.
	ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error)

	// MenuQR renders a PNG QR code that encodes the restaurant's menu
	// reference; the restaurant must exist.
	MenuQR(ctx context.Context, restaurantID uuid.UUID) ([]byte, error)
}
