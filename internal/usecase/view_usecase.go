package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// --- Output DTOs ---
//
// The view sections are wire-level shapes: their JSON tags are part of
// the public API contract, so they live here rather than in handlers.

// OrderSection is the order's own state inside a composite view.
type OrderSection struct {
	ID                uuid.UUID  `json:"id"`
	RestaurantID      uuid.UUID  `json:"restaurant_id"`
	UserID            uuid.UUID  `json:"user_id"`
	DeliveryPartnerID *uuid.UUID `json:"delivery_partner_id"`
	Total             float64    `json:"total"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
}

// RestaurantSection is the restaurant summary inside a composite view.
type RestaurantSection struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	Address              string    `json:"address"`
	Mobile               string    `json:"mobile"`
	ImageURL             string    `json:"image_url"`
	Cuisine              string    `json:"cuisine"`
	Rating               float64   `json:"rating"`
	Distance             float64   `json:"distance"`
	Offers               string    `json:"offers"`
	Reviews              string    `json:"reviews"`
	OpensAt              string    `json:"opens_at"`
	ClosesAt             string    `json:"closes_at"`
	ExpectedDeliveryTime string    `json:"expected_delivery_time"`
}

// CustomerSection is the ordering customer's summary inside a
// composite view. It always describes the order's own customer, not
// the caller.
type CustomerSection struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	Mobile     string    `json:"mobile"`
	Membership string    `json:"membership_type"`
}

// PartnerSection is the assigned courier's summary inside a composite
// view. Nil while no partner is assigned.
type PartnerSection struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Mobile string    `json:"mobile"`
	Rating float64   `json:"rating"`
}

// DishSection is one ordered dish inside a composite view.
type DishSection struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	Price        float64   `json:"price"`
	Rating       float64   `json:"rating"`
}

// OrderView is the fully joined picture of one order.
type OrderView struct {
	Order           *OrderSection      `json:"order"`
	Restaurant      *RestaurantSection `json:"restaurant"`
	User            *CustomerSection   `json:"user"`
	DeliveryPartner *PartnerSection    `json:"delivery_partner"`
	Dishes          []*DishSection     `json:"dishes"`
}

// ViewUsecase assembles composite order views for single orders and
// per-party order histories. History lists are ordered most recent
// first; an anchor with no orders yields an empty list, not an error.
type ViewUsecase interface {
	GetOrderView(ctx context.Context, orderID uuid.UUID) (*OrderView, error)
	ListRestaurantOrders(ctx context.Context, restaurantID uuid.UUID) ([]*OrderView, error)
	ListPartnerOrders(ctx context.Context, partnerID uuid.UUID) ([]*OrderView, error)
	ListCustomerOrders(ctx context.Context, userID uuid.UUID) ([]*OrderView, error)
}
