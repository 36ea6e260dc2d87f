// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"platter/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterCustomerInput defines the data required to register a new customer.
type RegisterCustomerInput struct {
	Username string
	Password string
	Name     string
	Address  string
	Mobile   string
}

// RegisterRestaurantInput defines the data required to register a new
// restaurant, including its public listing profile.
type RegisterRestaurantInput struct {
	Username             string
	Password             string
	Name                 string
	Mobile               string
	Address              string
	ImageURL             string
	Cuisine              string
	OpenTime             string
	CloseTime            string
	Rating               float64
	Distance             float64
	Offers               string
	Reviews              string
	ExpectedDeliveryTime string
}

// RegisterPartnerInput defines the data required to register a new delivery partner.
type RegisterPartnerInput struct {
	Username string
	Password string
	Name     string
	Mobile   string
	Rating   float64
}

// LoginInput defines the data required to log in. The same endpoint
// serves all three account kinds; Role selects the namespace the
// username is looked up in.
type LoginInput struct {
	Username string
	Password string
	Role     entity.Role
}

// UpdateRestaurantInput carries the mutable listing profile fields.
type UpdateRestaurantInput struct {
	RestaurantID         uuid.UUID
	Name                 string
	Mobile               string
	Address              string
	ImageURL             string
	Cuisine              string
	OpenTime             string
	CloseTime            string
	Rating               float64
	Distance             float64
	Offers               string
	Reviews              string
	ExpectedDeliveryTime string
}

// UpdatePartnerInput carries the mutable delivery partner fields.
type UpdatePartnerInput struct {
	PartnerID uuid.UUID
	Name      string
	Mobile    string
	Rating    float64
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's ID and role.
type RegisterOutput struct {
	ID   uuid.UUID
	Role entity.Role
}

// LoginOutput returns the issued token together with the account's
// public identity.
type LoginOutput struct {
	AccessToken string
	ID          uuid.UUID
	Username    string
	Name        string
	Role        entity.Role
	Membership  string
}

// AccountUsecase defines the business operations shared by the three
// account kinds: registration, login, profile updates, and the
// customer membership mutation.
type AccountUsecase interface {
	RegisterCustomer(ctx context.Context, input RegisterCustomerInput) (*RegisterOutput, error)
	RegisterRestaurant(ctx context.Context, input RegisterRestaurantInput) (*RegisterOutput, error)
	RegisterPartner(ctx context.Context, input RegisterPartnerInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// SetMembershipType overwrites the customer's loyalty tier label.
	SetMembershipType(ctx context.Context, userID uuid.UUID, membershipType string) error

	UpdateRestaurant(ctx context.Context, input UpdateRestaurantInput) error
	UpdatePartner(ctx context.Context, input UpdatePartnerInput) error
}
