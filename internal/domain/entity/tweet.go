package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tweet is a short channel post not tied to a video.
type Tweet struct {
	ID        uuid.UUID
	Content   string
	OwnerID   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t *Tweet) ResourceID() uuid.UUID { return t.ID }
func (t *Tweet) OwnerRef() uuid.UUID   { return t.OwnerID }
