package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateMessengerQR renders a QR code PNG for a page's m.me link,
	// suitable for print material pointing customers at the page inbox.
	GenerateMessengerQR(link string) ([]byte, error)
}
