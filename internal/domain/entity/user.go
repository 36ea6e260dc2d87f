// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an ordering customer. Restaurants and delivery
// partners are separate identities with their own entities; the three
// never share a record.
type User struct {
	ID           uuid.UUID // The unique identifier for the customer account.
	Username     string    // The login handle; unique across all customers.
	PasswordHash string    // The bcrypt-hashed password. Never the plaintext.
	Name         string    // The customer's display name.
	Address      string    // The postal delivery address.
	Mobile       string    // The contact phone number.
	Membership   string    // Loyalty tier label, e.g. "GOLD". Empty until explicitly set.
	CreatedAt    time.Time // Timestamp of account creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
