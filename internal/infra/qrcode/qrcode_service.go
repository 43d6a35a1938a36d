package qrcode

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"vidtube/config"
	"vidtube/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize      = 256
	defaultBaseURL   = "http://localhost:8080"
	watchPathSegment = "watch"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              *url.URL
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.QRCodeConfig) (service.QRCodeService, error) {
	size, levelName, rawBase := defaultSize, "M", defaultBaseURL
	if cfg != nil {
		if cfg.Size > 0 {
			size = cfg.Size
		}
		if cfg.ErrorCorrectionLevel != "" {
			levelName = cfg.ErrorCorrectionLevel
		}
		if cfg.BaseURL != "" {
			rawBase = cfg.BaseURL
		}
	}

	baseURL, err := url.Parse(strings.TrimRight(rawBase, "/"))
	if err != nil || baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("invalid qrcode base URL %q", rawBase)
	}

	// Set error correction level
	var level qrcode.RecoveryLevel
	switch levelName {
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
		baseURL:              baseURL,
	}, nil
}

// watchURL returns the public page of a video.
func (s *qrcodeService) watchURL(videoID uuid.UUID) string {
	u := *s.baseURL
	u.Path = path.Join("/", u.Path, watchPathSegment, videoID.String())

	return u.String()
}

// GenerateVideoShareQR generates a QR code encoding the video's watch URL
func (s *qrcodeService) GenerateVideoShareQR(videoID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.watchURL(videoID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseVideoShareURL extracts the video ID from a watch URL produced by this service
func (s *qrcodeService) ParseVideoShareURL(raw string) (uuid.UUID, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse share URL: %w", err)
	}
	if u.Host != s.baseURL.Host {
		return uuid.Nil, fmt.Errorf("share URL host %q does not belong to this service", u.Host)
	}

	dir, last := path.Split(strings.TrimRight(u.Path, "/"))
	if path.Base(dir) != watchPathSegment {
		return uuid.Nil, fmt.Errorf("not a watch URL: %s", u.Path)
	}

	videoID, err := uuid.Parse(last)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse video ID: %w", err)
	}

	return videoID, nil
}
