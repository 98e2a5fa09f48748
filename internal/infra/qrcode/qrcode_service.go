package qrcode

import (
	"encoding/json"
	"fmt"

	"aroundtheblock/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	VenueID string `json:"venue_id"`
	Type    string `json:"type"`
}

const qrTypeVenue = "venue_checkin"

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateVenueQR generates the table-tent QR code that deep-links a phone
// into the bar's manual check-in screen.
func (s *qrcodeService) GenerateVenueQR(venueID string) ([]byte, error) {
	data := QRCodeData{
		VenueID: venueID,
		Type:    qrTypeVenue,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseVenueQR parses QR code data and returns the venue ID
func (s *qrcodeService) ParseVenueQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != qrTypeVenue {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.VenueID == "" {
		return "", fmt.Errorf("missing venue ID in QR code data")
	}

	return data.VenueID, nil
}
