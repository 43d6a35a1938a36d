package postgres

import (
	"context"
	"strings"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var videoSortColumns = map[repository.VideoSortField]string{
	repository.VideoSortCreatedAt: "created_at",
	repository.VideoSortViews:     "views",
	repository.VideoSortDuration:  "duration",
	repository.VideoSortTitle:     "title",
}

// videoRepository implements the domain.VideoRepository interface using GORM.
type videoRepository struct {
	*gormCollection[*entity.Video, model.VideoModel]
}

// NewVideoRepository is the constructor for videoRepository.
func NewVideoRepository(db *gorm.DB) repository.VideoRepository {
	return &videoRepository{
		gormCollection: &gormCollection[*entity.Video, model.VideoModel]{
			db:         db,
			name:       "video",
			toDomain:   toVideoDomain,
			fromDomain: fromVideoDomain,
			assign:     func(dst *entity.Video, src *model.VideoModel) { *dst = *toVideoDomain(src) },
		},
	}
}

// List returns one page of videos matching the filter.
func (repo *videoRepository) List(ctx context.Context, filter repository.VideoFilter) (*repository.PageResult[*entity.Video], error) {
	page := filter.Page.Normalize()

	query := repo.db.WithContext(ctx).Model(&model.VideoModel{})
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + escapeLike(q) + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count videos")
	}

	column, ok := videoSortColumns[filter.SortBy]
	if !ok {
		column = videoSortColumns[repository.VideoSortCreatedAt]
	}

	var rows []*model.VideoModel
	err := query.
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: !filter.Ascending}).
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list videos")
	}

	videos := make([]*entity.Video, 0, len(rows))
	for _, row := range rows {
		videos = append(videos, toVideoDomain(row))
	}

	return &repository.PageResult[*entity.Video]{
		Items: videos,
		Total: total,
		Page:  page.Page,
		Limit: page.Limit,
	}, nil
}

// IncrementViews adds one view and returns the updated video.
func (repo *videoRepository) IncrementViews(ctx context.Context, id uuid.UUID) (*entity.Video, error) {
	var videoM model.VideoModel
	result := repo.db.WithContext(ctx).
		Model(&videoM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if err := result.Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to increment views")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrResourceNotFound
	}

	return toVideoDomain(&videoM), nil
}

// escapeLike neutralises LIKE wildcards in user input.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
