package postgres

import (
	"context"
	"encoding/json"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// playlistRepository implements the domain.PlaylistRepository interface using GORM.
type playlistRepository struct {
	*gormCollection[*entity.Playlist, model.PlaylistModel]
}

// NewPlaylistRepository is the constructor for playlistRepository.
func NewPlaylistRepository(db *gorm.DB) repository.PlaylistRepository {
	return &playlistRepository{
		gormCollection: &gormCollection[*entity.Playlist, model.PlaylistModel]{
			db:         db,
			name:       "playlist",
			toDomain:   toPlaylistDomain,
			fromDomain: fromPlaylistDomain,
			assign:     func(dst *entity.Playlist, src *model.PlaylistModel) { *dst = *toPlaylistDomain(src) },
		},
	}
}

// ListByOwner returns every playlist of a user, newest first.
func (repo *playlistRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error) {
	var rows []*model.PlaylistModel
	if err := repo.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list playlists")
	}

	playlists := make([]*entity.Playlist, 0, len(rows))
	for _, row := range rows {
		playlists = append(playlists, toPlaylistDomain(row))
	}

	return playlists, nil
}

// RemoveVideoEverywhere strips videoID from the jsonb video list of every playlist.
func (repo *playlistRepository) RemoveVideoEverywhere(ctx context.Context, videoID uuid.UUID) error {
	entry, err := json.Marshal([]string{videoID.String()})
	if err != nil {
		return errors.Wrap(err, "failed to encode playlist entry")
	}

	err = repo.db.WithContext(ctx).
		Model(&model.PlaylistModel{}).
		Where("video_ids @> ?::jsonb", string(entry)).
		Update("video_ids", gorm.Expr("video_ids - ?", videoID.String())).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove video from playlists")
	}

	return nil
}
