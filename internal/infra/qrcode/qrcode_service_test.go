package qrcode

import (
	"encoding/json"
	"testing"

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

func TestQRCodeService_GenerateVenueQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateVenueQR("bar-42")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_ParseVenueQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	data := QRCodeData{
		VenueID: "bar-42",
		Type:    qrTypeVenue,
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	venueID, err := service.ParseVenueQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, "bar-42", venueID)
}

func TestQRCodeService_ParseVenueQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.ParseVenueQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParseVenueQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(256, "M")

	data := QRCodeData{
		VenueID: "bar-42",
		Type:    "loyalty_card",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseVenueQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParseVenueQR_MissingVenueID(t *testing.T) {
	service := NewQRCodeService(256, "M")

	data := QRCodeData{
		Type: qrTypeVenue,
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseVenueQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing venue ID")
}
