package service

import (
	"context"
	"time"
)

// MediaEventType names what happened to a video.
type MediaEventType string

const (
	MediaEventVideoPublished MediaEventType = "video.published"
	MediaEventVideoUpdated   MediaEventType = "video.updated"
	MediaEventVideoDeleted   MediaEventType = "video.deleted"
)

// MediaEvent is emitted after a media-bearing database write has committed.
type MediaEvent struct {
	RequestID  string         `json:"request_id,omitempty"` // For distributed tracing
	Type       MediaEventType `json:"type"`
	VideoID    string         `json:"video_id"`
	OwnerID    string         `json:"owner_id"`
	VideoURL   string         `json:"video_url,omitempty"`
	Thumbnail  string         `json:"thumbnail_url,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMediaEvent publishes a media lifecycle event
	PublishMediaEvent(ctx context.Context, event *MediaEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
