package service

import "github.com/google/uuid"

// QRCodeService renders order references as QR codes so a package insert or
// confirmation page can link back to the order.
type QRCodeService interface {
	// GenerateOrderQR renders a PNG QR code embedding the order reference.
	GenerateOrderQR(orderID uuid.UUID) ([]byte, error)

	// ParseOrderQR decodes QR payload data back into the order ID.
	ParseOrderQR(qrData string) (uuid.UUID, error)
}
