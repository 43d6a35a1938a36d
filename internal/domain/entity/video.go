package entity

import (
	"time"

	"github.com/google/uuid"
)

// Video is a published upload: a video file plus its thumbnail.
type Video struct {
	ID          uuid.UUID
	Title       string
	Description string
	VideoFile   *MediaAsset
	Thumbnail   *MediaAsset
	Duration    float64
	Views       int64
	IsPublished bool
	OwnerID     uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (v *Video) ResourceID() uuid.UUID { return v.ID }
func (v *Video) OwnerRef() uuid.UUID   { return v.OwnerID }

// Assets returns every remote artifact the video references.
func (v *Video) Assets() []*MediaAsset {
	var assets []*MediaAsset
	if !v.VideoFile.IsZero() {
		assets = append(assets, v.VideoFile)
	}
	if !v.Thumbnail.IsZero() {
		assets = append(assets, v.Thumbnail)
	}

	return assets
}
