package postgres

import (
	"context"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// commentRepository implements the domain.CommentRepository interface using GORM.
type commentRepository struct {
	*gormCollection[*entity.Comment, model.CommentModel]
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{
		gormCollection: &gormCollection[*entity.Comment, model.CommentModel]{
			db:         db,
			name:       "comment",
			toDomain:   toCommentDomain,
			fromDomain: fromCommentDomain,
			assign:     func(dst *entity.Comment, src *model.CommentModel) { *dst = *toCommentDomain(src) },
		},
	}
}

// ListByVideo returns one page of comments on a video, newest first.
func (repo *commentRepository) ListByVideo(ctx context.Context, videoID uuid.UUID, page repository.Page) (*repository.PageResult[*entity.Comment], error) {
	page = page.Normalize()
	query := repo.db.WithContext(ctx).Model(&model.CommentModel{}).Where("video_id = ?", videoID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count comments")
	}

	var rows []*model.CommentModel
	if err := query.Order("created_at DESC").Offset(page.Offset()).Limit(page.Limit).Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, toCommentDomain(row))
	}

	return &repository.PageResult[*entity.Comment]{
		Items: comments,
		Total: total,
		Page:  page.Page,
		Limit: page.Limit,
	}, nil
}

// DeleteByVideo removes every comment on a video.
func (repo *commentRepository) DeleteByVideo(ctx context.Context, videoID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("video_id = ?", videoID).Delete(&model.CommentModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete comments of video")
	}

	return nil
}
