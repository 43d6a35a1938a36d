package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaylistInput carries playlist fields. On update, nil fields are left unchanged.
type PlaylistInput struct {
	Name        *string
	Description *string
	Privacy     *string
}

// PlaylistUsecase defines the playlist operations.
type PlaylistUsecase interface {
	CreatePlaylist(ctx context.Context, ownerID uuid.UUID, input PlaylistInput) (*entity.Playlist, error)
	GetPlaylist(ctx context.Context, viewerID, playlistID uuid.UUID) (*entity.Playlist, error)
	FindPlaylist(ctx context.Context, playlistID uuid.UUID) (*entity.Playlist, error)
	ListUserPlaylists(ctx context.Context, viewerID, userID uuid.UUID) ([]*entity.Playlist, error)
	UpdatePlaylist(ctx context.Context, playlistID uuid.UUID, input PlaylistInput) (*entity.Playlist, error)
	DeletePlaylist(ctx context.Context, playlistID uuid.UUID) error
	AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) (*entity.Playlist, error)
	RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) (*entity.Playlist, error)
}
