package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a text reply attached to a video.
type Comment struct {
	ID        uuid.UUID
	Content   string
	VideoID   uuid.UUID
	OwnerID   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Comment) ResourceID() uuid.UUID { return c.ID }
func (c *Comment) OwnerRef() uuid.UUID   { return c.OwnerID }
