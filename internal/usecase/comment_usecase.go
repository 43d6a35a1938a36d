package usecase

import (
	"context"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository"

	"github.com/google/uuid"
)

// CommentUsecase defines the comment operations.
type CommentUsecase interface {
	ListComments(ctx context.Context, videoID uuid.UUID, page repository.Page) (*repository.PageResult[*entity.Comment], error)
	AddComment(ctx context.Context, ownerID, videoID uuid.UUID, content string) (*entity.Comment, error)
	FindComment(ctx context.Context, commentID uuid.UUID) (*entity.Comment, error)
	UpdateComment(ctx context.Context, commentID uuid.UUID, content string) (*entity.Comment, error)
	DeleteComment(ctx context.Context, commentID uuid.UUID) error
}
