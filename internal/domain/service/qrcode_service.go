package service

// QRCodeService defines the interface for venue QR code generation and parsing.
type QRCodeService interface {
	// GenerateVenueQR generates a QR code PNG deep-linking to manual check-in
	// at the given venue.
	GenerateVenueQR(venueID string) ([]byte, error)

	// ParseVenueQR parses QR code data and returns the venue ID.
	ParseVenueQR(qrData string) (string, error)
}
