package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateVideoShareQR renders a PNG QR code pointing at the video's watch URL
	GenerateVideoShareQR(videoID uuid.UUID) ([]byte, error)

	// ParseVideoShareURL extracts the video ID from a watch URL
	ParseVideoShareURL(url string) (uuid.UUID, error)
}
