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

// tweetRepository implements the domain.TweetRepository interface using GORM.
type tweetRepository struct {
	*gormCollection[*entity.Tweet, model.TweetModel]
}

// NewTweetRepository is the constructor for tweetRepository.
func NewTweetRepository(db *gorm.DB) repository.TweetRepository {
	return &tweetRepository{
		gormCollection: &gormCollection[*entity.Tweet, model.TweetModel]{
			db:         db,
			name:       "tweet",
			toDomain:   toTweetDomain,
			fromDomain: fromTweetDomain,
			assign:     func(dst *entity.Tweet, src *model.TweetModel) { *dst = *toTweetDomain(src) },
		},
	}
}

// ListByOwner returns every tweet of a user, newest first.
func (repo *tweetRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Tweet, error) {
	var rows []*model.TweetModel
	if err := repo.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list tweets")
	}

	tweets := make([]*entity.Tweet, 0, len(rows))
	for _, row := range rows {
		tweets = append(tweets, toTweetDomain(row))
	}

	return tweets, nil
}
