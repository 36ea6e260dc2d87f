package qrcode

import (
	"encoding/json"
	"testing"

	"platter/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateMenuQR(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	png, err := svc.GenerateMenuQR(uuid.New())
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
}

func TestQRCodeService_ParseMenuQR(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})
	restaurantID := uuid.New()

	payload, err := json.Marshal(map[string]string{
		"restaurant_id": restaurantID.String(),
		"type":          "menu",
	})
	require.NoError(t, err)

	parsed, err := svc.ParseMenuQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, restaurantID, parsed)
}

func TestQRCodeService_ParseMenuQR_WrongType(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	payload, err := json.Marshal(map[string]string{
		"restaurant_id": uuid.New().String(),
		"type":          "table",
	})
	require.NoError(t, err)

	_, err = svc.ParseMenuQR(string(payload))
	assert.Error(t, err)
}

func TestQRCodeService_ConfiguredLevelAndSize(t *testing.T) {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"}}
	svc := NewQRCodeService(cfg)

	png, err := svc.GenerateMenuQR(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
