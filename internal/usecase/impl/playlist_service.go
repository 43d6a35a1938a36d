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

// playlistService implements the PlaylistUsecase interface.
type playlistService struct {
	playlistRepo repository.PlaylistRepository
	videoRepo    repository.VideoRepository
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// PlaylistServiceParams holds dependencies for PlaylistService, injected by Fx.
type PlaylistServiceParams struct {
	fx.In

	PlaylistRepo repository.PlaylistRepository
	VideoRepo    repository.VideoRepository
	UserRepo     repository.UserRepository
	Logger       *slog.Logger
}

// NewPlaylistService is the constructor for playlistService.
func NewPlaylistService(params PlaylistServiceParams) usecase.PlaylistUsecase {
	return &playlistService{
		playlistRepo: params.PlaylistRepo,
		videoRepo:    params.VideoRepo,
		userRepo:     params.UserRepo,
		logger:       params.Logger,
	}
}

func (srv *playlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePlaylist requires a name; privacy defaults to Private.
func (srv *playlistService) CreatePlaylist(ctx context.Context, ownerID uuid.UUID, input usecase.PlaylistInput) (*entity.Playlist, error) {
	playlist := &entity.Playlist{OwnerID: ownerID, Privacy: entity.PlaylistPrivacyPrivate, VideoIDs: []uuid.UUID{}}
	if input.Name == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("name is required"), "create playlist")
	}
	if err := applyPlaylistInput(playlist, input); err != nil {
		return nil, err
	}

	if err := srv.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, errors.Wrap(err, "failed to create playlist")
	}

	srv.log(ctx).Debug("Playlist created", slog.Any("playlist_id", playlist.ID))

	return playlist, nil
}

// GetPlaylist hides private playlists from everyone but their owner.
func (srv *playlistService) GetPlaylist(ctx context.Context, viewerID, playlistID uuid.UUID) (*entity.Playlist, error) {
	playlist, err := srv.FindPlaylist(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist.Privacy == entity.PlaylistPrivacyPrivate && !entity.IsOwnedBy(playlist, viewerID) {
		return nil, errors.Wrap(domainerrors.ErrNotFound.WithDetails("playlist not found"), "playlist is private")
	}

	return playlist, nil
}

func (srv *playlistService) FindPlaylist(ctx context.Context, playlistID uuid.UUID) (*entity.Playlist, error) {
	playlist, err := srv.playlistRepo.FindByID(ctx, playlistID)
	if err != nil {
		return nil, mapResourceErr(err, "playlist")
	}

	return playlist, nil
}

// ListUserPlaylists returns all playlists to their owner and only public ones to others.
func (srv *playlistService) ListUserPlaylists(ctx context.Context, viewerID, userID uuid.UUID) ([]*entity.Playlist, error) {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		return nil, mapUserErr(err)
	}

	playlists, err := srv.playlistRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list playlists")
	}
	if viewerID == userID {
		return playlists, nil
	}

	visible := make([]*entity.Playlist, 0, len(playlists))
	for _, p := range playlists {
		if p.Privacy == entity.PlaylistPrivacyPublic {
			visible = append(visible, p)
		}
	}

	return visible, nil
}

func (srv *playlistService) UpdatePlaylist(ctx context.Context, playlistID uuid.UUID, input usecase.PlaylistInput) (*entity.Playlist, error) {
	playlist, err := srv.playlistRepo.FindByIDAndUpdate(ctx, playlistID, func(p *entity.Playlist) error {
		return applyPlaylistInput(p, input)
	})
	if err != nil {
		return nil, mapResourceErr(err, "playlist")
	}

	return playlist, nil
}

func (srv *playlistService) DeletePlaylist(ctx context.Context, playlistID uuid.UUID) error {
	if _, err := srv.playlistRepo.FindByIDAndDelete(ctx, playlistID); err != nil {
		return mapResourceErr(err, "playlist")
	}

	return nil
}

// AddVideo appends an existing video once.
func (srv *playlistService) AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) (*entity.Playlist, error) {
	if _, err := srv.videoRepo.FindByID(ctx, videoID); err != nil {
		return nil, mapVideoErr(err)
	}

	playlist, err := srv.playlistRepo.FindByIDAndUpdate(ctx, playlistID, func(p *entity.Playlist) error {
		p.AddVideo(videoID)

		return nil
	})
	if err != nil {
		return nil, mapResourceErr(err, "playlist")
	}

	return playlist, nil
}

func (srv *playlistService) RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) (*entity.Playlist, error) {
	playlist, err := srv.playlistRepo.FindByIDAndUpdate(ctx, playlistID, func(p *entity.Playlist) error {
		if !p.RemoveVideo(videoID) {
			return errors.Wrap(domainerrors.ErrNotFound.WithDetails("video is not in the playlist"), "remove video")
		}

		return nil
	})
	if err != nil {
		return nil, mapResourceErr(err, "playlist")
	}

	return playlist, nil
}

// applyPlaylistInput validates and copies the set fields onto p.
func applyPlaylistInput(p *entity.Playlist, input usecase.PlaylistInput) error {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("name cannot be empty"), "playlist")
		}
		p.Name = name
	}
	if input.Description != nil {
		p.Description = strings.TrimSpace(*input.Description)
	}
	if input.Privacy != nil {
		privacy := entity.PlaylistPrivacy(strings.TrimSpace(*input.Privacy))
		if !privacy.IsValid() {
			return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("privacy must be Unlisted, Private or Public"), "playlist")
		}
		p.Privacy = privacy
	}

	return nil
}
