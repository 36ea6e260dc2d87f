package repository

import (
	"context"
	"errors"

	"platter/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the operations for order and link-row persistence.
//
// The FindBy* listing methods return orders sorted by creation time
// descending (most recent first); callers rely on that ordering as a
// contract, not an implementation accident.
type OrderRepository interface {
	// Create persists a new order entity to the storage.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// Update modifies an existing order entity in the storage.
	Update(ctx context.Context, order *entity.Order) error

	// AddDish creates one link row pinning a dish to an order.
	AddDish(ctx context.Context, link *entity.OrderDish) error

	// FindDishesByOrder retrieves the link rows for one order.
	FindDishesByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderDish, error)

	// FindByRestaurant retrieves all orders placed at one restaurant.
	FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Order, error)

	// FindByCustomer retrieves all orders placed by one customer.
	FindByCustomer(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// FindByPartner retrieves all orders carried by one delivery partner.
	FindByPartner(ctx context.Context, partnerID uuid.UUID) ([]*entity.Order, error)
}
