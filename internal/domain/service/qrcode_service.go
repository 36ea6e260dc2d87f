package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for menu QR code generation and parsing.
type QRCodeService interface {
	// GenerateMenuQR generates a QR code image that points at a restaurant's menu.
	GenerateMenuQR(restaurantID uuid.UUID) ([]byte, error)

	// ParseMenuQR parses QR code data and returns the restaurant ID.
	ParseMenuQR(qrData string) (uuid.UUID, error)
}
