package usecase

import (
	"context"

	"platter/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// PlaceOrderInput defines the data required to place an order. Status
// is optional; when empty the order starts as PENDING. Total is taken
// as supplied and never recomputed from dish prices.
type PlaceOrderInput struct {
	UserID       uuid.UUID
	RestaurantID uuid.UUID
	DishIDs      []uuid.UUID
	Total        float64
	Status       entity.OrderStatus
}

// UpdateStatusInput defines an order status transition request.
type UpdateStatusInput struct {
	OrderID uuid.UUID
	Status  entity.OrderStatus
}

// --- Output DTOs ---

// PlaceOrderOutput returns the created order's identity together with
// the dish IDs that were silently skipped because they do not exist.
type PlaceOrderOutput struct {
	OrderID        uuid.UUID
	Status         entity.OrderStatus
	SkippedDishIDs []uuid.UUID
}

// UpdateStatusOutput returns the order's state after the transition,
// including the partner assigned on acceptance.
type UpdateStatusOutput struct {
	OrderID           uuid.UUID
	Status            entity.OrderStatus
	DeliveryPartnerID *uuid.UUID
}

// OrderUsecase defines the order lifecycle operations: placement and
// status transitions.
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*PlaceOrderOutput, error)
	UpdateStatus(ctx context.Context, input UpdateStatusInput) (*UpdateStatusOutput, error)
}
