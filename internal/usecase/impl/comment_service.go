package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// commentService implements the CommentUsecase interface.
type commentService struct {
	commentRepo repository.CommentRepository
	videoRepo   repository.VideoRepository
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	CommentRepo repository.CommentRepository
	VideoRepo   repository.VideoRepository
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		commentRepo: params.CommentRepo,
		videoRepo:   params.VideoRepo,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *commentService) ListComments(ctx context.Context, videoID uuid.UUID, page repository.Page) (*repository.PageResult[*entity.Comment], error) {
	if _, err := srv.videoRepo.FindByID(ctx, videoID); err != nil {
		return nil, mapVideoErr(err)
	}

	result, err := srv.commentRepo.ListByVideo(ctx, videoID, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return result, nil
}

// AddComment attaches a comment to an existing video.
func (srv *commentService) AddComment(ctx context.Context, ownerID, videoID uuid.UUID, content string) (*entity.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("content is required"), "add comment")
	}
	if _, err := srv.videoRepo.FindByID(ctx, videoID); err != nil {
		return nil, mapVideoErr(err)
	}

	comment := &entity.Comment{Content: content, VideoID: videoID, OwnerID: ownerID}
	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to create comment")
	}

	srv.log(ctx).Debug("Comment added", slog.Any("comment_id", comment.ID), slog.Any("video_id", videoID))

	return comment, nil
}

func (srv *commentService) FindComment(ctx context.Context, commentID uuid.UUID) (*entity.Comment, error) {
	comment, err := srv.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return nil, mapResourceErr(err, "comment")
	}

	return comment, nil
}

func (srv *commentService) UpdateComment(ctx context.Context, commentID uuid.UUID, content string) (*entity.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("content is required"), "update comment")
	}

	comment, err := srv.commentRepo.FindByIDAndUpdate(ctx, commentID, func(c *entity.Comment) error {
		c.Content = content

		return nil
	})
	if err != nil {
		return nil, mapResourceErr(err, "comment")
	}

	return comment, nil
}

func (srv *commentService) DeleteComment(ctx context.Context, commentID uuid.UUID) error {
	if _, err := srv.commentRepo.FindByIDAndDelete(ctx, commentID); err != nil {
		return mapResourceErr(err, "comment")
	}

	srv.log(ctx).Debug("Comment deleted", slog.Any("comment_id", commentID))

	return nil
}

// mapResourceErr turns a collection miss into NOT_FOUND and wraps everything else.
func mapResourceErr(err error, kind string) error {
	if errors.Is(err, repository.ErrResourceNotFound) {
		return errors.Wrap(domainerrors.ErrNotFound.WithDetails(kind+" not found"), err.Error())
	}

	return errors.Wrap(err, kind+" store")
}
