package service

// QRCodeService generates QR code images for order tracking links shown on
// the order-success surface.
type QRCodeService interface {
	GenerateOrderQR(orderID string) ([]byte, error)
}
