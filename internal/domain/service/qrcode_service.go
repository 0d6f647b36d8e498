package service

// QRCodeService renders QR codes for sharing pages.
type QRCodeService interface {
	// GeneratePNG encodes content as a PNG image.
	GeneratePNG(content string) ([]byte, error)
}
