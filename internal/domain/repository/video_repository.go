package repository

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// VideoSortField lists the columns a video listing may be ordered by.
type VideoSortField string

const (
	VideoSortCreatedAt VideoSortField = "createdAt"
	VideoSortViews     VideoSortField = "views"
	VideoSortDuration  VideoSortField = "duration"
	VideoSortTitle     VideoSortField = "title"
)

// IsValid reports whether the sort field is supported.
func (f VideoSortField) IsValid() bool {
	switch f {
	case VideoSortCreatedAt, VideoSortViews, VideoSortDuration, VideoSortTitle:
		return true
	default:
		return false
	}
}

// VideoFilter narrows a video listing.
type VideoFilter struct {
	Query     string     // Case-insensitive match on title or description.
	OwnerID   *uuid.UUID // Only videos owned by this user.
	SortBy    VideoSortField
	Ascending bool
	Page      Page
}

// VideoRepository stores videos.
type VideoRepository interface {
	Collection[*entity.Video]

	// List returns one page of videos matching the filter.
	List(ctx context.Context, filter VideoFilter) (*PageResult[*entity.Video], error)

	// IncrementViews adds one view and returns the updated video.
	IncrementViews(ctx context.Context, id uuid.UUID) (*entity.Video, error)
}
