package repository

import (
	"context"
	"errors"

	"platter/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPartnerNotFound is returned when a delivery partner is not found,
// including when FindFirst runs against an empty partner table.
var ErrPartnerNotFound = errors.New("delivery partner not found")

// PartnerRepository defines the standard operations for delivery partner persistence.
type PartnerRepository interface {
	// Create persists a new delivery partner entity to the storage.
	Create(ctx context.Context, partner *entity.DeliveryPartner) error

	// FindByID retrieves a single delivery partner by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryPartner, error)

	// FindByUsername retrieves a single delivery partner by their login handle.
	FindByUsername(ctx context.Context, username string) (*entity.DeliveryPartner, error)

	// FindFirst retrieves the oldest registered delivery partner. It backs
	// the order engine's first-available assignment policy.
	FindFirst(ctx context.Context) (*entity.DeliveryPartner, error)

	// Update modifies an existing delivery partner entity in the storage.
	Update(ctx context.Context, partner *entity.DeliveryPartner) error
}
