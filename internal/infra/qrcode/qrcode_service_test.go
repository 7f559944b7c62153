package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateOrderQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	orderID := uuid.New()

	qrBytes, err := service.GenerateOrderQR(orderID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateOrderQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")
			orderID := uuid.New()

			qrBytes, err := service.GenerateOrderQR(orderID)
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseOrderQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	orderID := uuid.New()

	// Create valid QR data
	data := QRCodeData{
		OrderID: orderID.String(),
		Type:    "order",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	// Parse the QR data
	parsedID, err := service.ParseOrderQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, orderID, parsedID)
}

func TestQRCodeService_ParseOrderQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.ParseOrderQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParseOrderQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(256, "M")

	// Create QR data with invalid type
	data := QRCodeData{
		OrderID: uuid.New().String(),
		Type:    "invalid_type",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseOrderQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParseOrderQR_InvalidUUID(t *testing.T) {
	service := NewQRCodeService(256, "M")

	// Create QR data with invalid UUID
	data := QRCodeData{
		OrderID: "not-a-valid-uuid",
		Type:    "order",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseOrderQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse order ID")
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M")
	originalOrderID := uuid.New()

	// Generate QR code
	qrBytes, err := service.GenerateOrderQR(originalOrderID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// The PNG itself is scanned by a device in real usage; for testing we
	// verify the payload structure round-trips through ParseOrderQR.
	data := QRCodeData{
		OrderID: originalOrderID.String(),
		Type:    "order",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseOrderQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, originalOrderID, parsedID)
}
