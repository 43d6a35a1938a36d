package repository

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaylistRepository stores playlists.
type PlaylistRepository interface {
	Collection[*entity.Playlist]

	// ListByOwner returns every playlist of a user, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error)

	// RemoveVideoEverywhere drops videoID from all playlists that contain it.
	RemoveVideoEverywhere(ctx context.Context, videoID uuid.UUID) error
}
