package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order. The set of values
// and their wire spelling are part of the public API contract.
type OrderStatus string

const (
	// StatusPending is the canonical initial status for new orders.
	StatusPending OrderStatus = "PENDING"
	// StatusPaid marks an order whose payment has been confirmed.
	StatusPaid OrderStatus = "PAID"
	// StatusRestAccepted marks the restaurant accepting the order; a
	// delivery partner is assigned during this transition.
	StatusRestAccepted OrderStatus = "REST_ACCEPTED"
	// StatusPickedUp marks the assigned partner collecting the order.
	StatusPickedUp OrderStatus = "PICKED_UP"
	// StatusDelivered is a terminal status.
	StatusDelivered OrderStatus = "DELIVERED"
	// StatusCancelled is a terminal status.
	StatusCancelled OrderStatus = "CANCELLED"
)

// transitions is the allowed successor set for each status. Terminal
// statuses have no successors.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:      {StatusPaid, StatusRestAccepted, StatusCancelled},
	StatusPaid:         {StatusRestAccepted, StatusCancelled},
	StatusRestAccepted: {StatusPickedUp, StatusDelivered, StatusCancelled},
	StatusPickedUp:     {StatusDelivered},
	StatusDelivered:    {},
	StatusCancelled:    {},
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	_, ok := transitions[s]

	return ok
}

// IsTerminal reports whether no further transition is allowed.
func (s OrderStatus) IsTerminal() bool {
	return s.IsValid() && len(transitions[s]) == 0
}

// CanTransitionTo reports whether next is an allowed successor of s.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return slices.Contains(transitions[s], next)
}

// Order is the central mutable entity: one customer's purchase from
// one restaurant, optionally carried by one delivery partner. The
// total is supplied by the caller at placement and never recomputed
// from dish prices; a later dish price change leaves it untouched.
// Orders are never deleted.
type Order struct {
	ID                uuid.UUID
	RestaurantID      uuid.UUID
	UserID            uuid.UUID
	DeliveryPartnerID *uuid.UUID // Nil until a partner is assigned.
	Total             float64
	Status            OrderStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OrderDish is a link row pinning one dish to one order at placement
// time. Link rows are created once and never updated or deleted.
type OrderDish struct {
	OrderID uuid.UUID
	DishID  uuid.UUID
}
