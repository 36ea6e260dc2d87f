// Package entity contains the core business objects of the project.
package entity

// Role identifies which kind of account a caller authenticated as.
// It is resolved exactly once at login time and carried in the access
// token; everything downstream branches on the Role value, never on a
// raw string from the request body.
type Role string

const (
	// RoleCustomer is the default role for ordering users.
	RoleCustomer Role = "CUSTOMER"
	// RoleRestaurant is the role for restaurant accounts.
	RoleRestaurant Role = "RESTAURANT"
	// RolePartner is the role for delivery partner accounts.
	RolePartner Role = "DELIVERY_PARTNER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleRestaurant, RolePartner:
		return true
	default:
		return false
	}
}

// ParseRole maps a client-supplied role hint to a Role. An empty or
// unknown hint resolves to RoleCustomer, matching clients that never
// send a hint with their login request.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleRestaurant:
		return RoleRestaurant
	case RolePartner:
		return RolePartner
	default:
		return RoleCustomer
	}
}
