package usecase

import (
	"context"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository"

	"github.com/google/uuid"
)

// ListVideosInput carries the listing query parameters.
type ListVideosInput struct {
	Page     int
	Limit    int
	Query    string
	SortBy   string
	SortType string // "asc" or "desc"
	UserID   string
}

// PublishVideoInput carries the publish form. VideoFile and Thumbnail are local temp paths.
type PublishVideoInput struct {
	Title       string
	Description string
	VideoFile   string
	Thumbnail   string
}

// UpdateVideoInput carries a partial update. Nil text fields and empty paths are left unchanged.
type UpdateVideoInput struct {
	Title       *string
	Description *string
	VideoFile   string
	Thumbnail   string
}

// VideoUsecase defines the video operations.
type VideoUsecase interface {
	ListVideos(ctx context.Context, input ListVideosInput) (*repository.PageResult[*entity.Video], error)
	PublishVideo(ctx context.Context, ownerID uuid.UUID, input PublishVideoInput) (*entity.Video, error)
	GetVideo(ctx context.Context, viewerID, videoID uuid.UUID) (*entity.Video, error)
	FindVideo(ctx context.Context, videoID uuid.UUID) (*entity.Video, error)
	UpdateVideo(ctx context.Context, videoID uuid.UUID, input UpdateVideoInput) (*entity.Video, error)
	DeleteVideo(ctx context.Context, videoID uuid.UUID) error
	TogglePublish(ctx context.Context, videoID uuid.UUID) (*entity.Video, error)
	ShareQR(ctx context.Context, videoID uuid.UUID) ([]byte, error)
}
