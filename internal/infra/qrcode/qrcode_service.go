package qrcode

import (
	"encoding/json"

	"platter/config"
	"platter/internal/domain/service"
	"platter/internal/errors"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	defaultSize     = 256
	payloadTypeMenu = "menu"
)

// menuPayload is the JSON document encoded into a menu QR code.
type menuPayload struct {
	RestaurantID string `json:"restaurant_id"`
	Type         string `json:"type"`
}

type qrCodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR code service configured from cfg.QRCode.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	level := qrcode.Medium

	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = parseRecoveryLevel(cfg.QRCode.ErrorCorrectionLevel)
	}

	return &qrCodeService{
		size:  size,
		level: level,
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

func (s *qrCodeService) GenerateMenuQR(restaurantID uuid.UUID) ([]byte, error) {
	payload := menuPayload{
		RestaurantID: restaurantID.String(),
		Type:         payloadTypeMenu,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "marshal menu payload")
	}

	png, err := qrcode.Encode(string(data), s.level, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "encode qr code")
	}

	return png, nil
}

func (s *qrCodeService) ParseMenuQR(qrData string) (uuid.UUID, error) {
	var payload menuPayload
	if err := json.Unmarshal([]byte(qrData), &payload); err != nil {
		return uuid.Nil, errors.Wrap(err, "unmarshal menu payload")
	}

	if payload.Type != payloadTypeMenu {
		return uuid.Nil, errors.Errorf("unexpected payload type: %s", payload.Type)
	}

	restaurantID, err := uuid.Parse(payload.RestaurantID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "parse restaurant id")
	}

	return restaurantID, nil
}
