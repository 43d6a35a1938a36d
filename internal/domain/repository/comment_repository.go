package repository

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// CommentRepository stores comments on videos.
type CommentRepository interface {
	Collection[*entity.Comment]

	// ListByVideo returns one page of comments on a video, newest first.
	ListByVideo(ctx context.Context, videoID uuid.UUID, page Page) (*PageResult[*entity.Comment], error)

	// DeleteByVideo removes every comment on a video.
	DeleteByVideo(ctx context.Context, videoID uuid.UUID) error
}
