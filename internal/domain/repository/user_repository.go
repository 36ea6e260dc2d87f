// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"platter/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a customer is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for customer persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new customer entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single customer by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single customer by their login handle.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Update modifies an existing customer entity in the storage.
	Update(ctx context.Context, user *entity.User) error
}
