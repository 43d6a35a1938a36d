package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// videoService implements the VideoUsecase interface.
type videoService struct {
	txManager repository.TransactionManager
	videoRepo repository.VideoRepository
	userRepo  repository.UserRepository
	media     usecase.MediaOrchestrator
	events    service.EventPublisher
	qrCode    service.QRCodeService
	logger    *slog.Logger
}

// VideoServiceParams holds dependencies for VideoService, injected by Fx.
type VideoServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	VideoRepo repository.VideoRepository
	UserRepo  repository.UserRepository
	Media     usecase.MediaOrchestrator
	Events    service.EventPublisher
	QRCode    service.QRCodeService
	Logger    *slog.Logger
}

// NewVideoService is the constructor for videoService.
func NewVideoService(params VideoServiceParams) usecase.VideoUsecase {
	return &videoService{
		txManager: params.TxManager,
		videoRepo: params.VideoRepo,
		userRepo:  params.UserRepo,
		media:     params.Media,
		events:    params.Events,
		qrCode:    params.QRCode,
		logger:    params.Logger,
	}
}

func (srv *videoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListVideos returns one page of videos. Unknown sort fields fall back to creation time.
func (srv *videoService) ListVideos(ctx context.Context, input usecase.ListVideosInput) (*repository.PageResult[*entity.Video], error) {
	filter := repository.VideoFilter{
		Query:     strings.TrimSpace(input.Query),
		SortBy:    repository.VideoSortField(input.SortBy),
		Ascending: !strings.EqualFold(input.SortType, "desc"),
		Page:      repository.Page{Page: input.Page, Limit: input.Limit},
	}
	if !filter.SortBy.IsValid() {
		filter.SortBy = repository.VideoSortCreatedAt
	}
	if input.UserID != "" {
		ownerID, err := uuid.Parse(input.UserID)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrInvalidID.WithDetails("userId is malformed"), "list videos")
		}
		filter.OwnerID = &ownerID
	}

	result, err := srv.videoRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list videos")
	}

	return result, nil
}

// PublishVideo uploads the video file and thumbnail and creates the record.
func (srv *videoService) PublishVideo(ctx context.Context, ownerID uuid.UUID, input usecase.PublishVideoInput) (*entity.Video, error) {
	files := []usecase.MediaFile{
		{Field: usecase.FieldVideoFile, LocalPath: input.VideoFile, Required: true},
		{Field: usecase.FieldThumbnail, LocalPath: input.Thumbnail, Required: true},
	}

	video := &entity.Video{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		OwnerID:     ownerID,
	}
	if video.Title == "" || video.Description == "" {
		srv.media.Discard(ctx, files)

		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("title and description are required"), "publish video")
	}

	err := srv.media.Publish(ctx, files, func(ctx context.Context, assets usecase.UploadedAssets) error {
		video.VideoFile = assets[usecase.FieldVideoFile]
		video.Thumbnail = assets[usecase.FieldThumbnail]
		video.Duration = video.VideoFile.Duration

		return srv.videoRepo.Create(ctx, video)
	})
	if err != nil {
		srv.log(ctx).Error("Video publish failed", slog.Any("owner_id", ownerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Video published", slog.Any("video_id", video.ID), slog.Any("owner_id", ownerID))
	srv.publishEvent(ctx, service.MediaEventVideoPublished, video)

	return video, nil
}

// GetVideo returns a video and counts the view the first time this viewer opens it.
// Unpublished videos are only visible to their owner.
func (srv *videoService) GetVideo(ctx context.Context, viewerID, videoID uuid.UUID) (*entity.Video, error) {
	video, err := srv.FindVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !video.IsPublished && !entity.IsOwnedBy(video, viewerID) {
		return nil, errors.Wrap(domainerrors.ErrVideoNotFound, "video is not published")
	}

	firstView, err := srv.userRepo.AddToWatchHistory(ctx, viewerID, videoID)
	if err != nil {
		return nil, mapUserErr(err)
	}
	if !firstView {
		return video, nil
	}

	updated, err := srv.videoRepo.IncrementViews(ctx, videoID)
	if err != nil {
		return nil, mapVideoErr(err)
	}

	return updated, nil
}

// FindVideo loads a video without side effects.
func (srv *videoService) FindVideo(ctx context.Context, videoID uuid.UUID) (*entity.Video, error) {
	video, err := srv.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		return nil, mapVideoErr(err)
	}

	return video, nil
}

// UpdateVideo edits text fields and swaps in any new media, deleting the replaced artifacts last.
func (srv *videoService) UpdateVideo(ctx context.Context, videoID uuid.UUID, input usecase.UpdateVideoInput) (*entity.Video, error) {
	files := []usecase.MediaFile{
		{Field: usecase.FieldVideoFile, LocalPath: input.VideoFile},
		{Field: usecase.FieldThumbnail, LocalPath: input.Thumbnail},
	}

	if (input.Title != nil && strings.TrimSpace(*input.Title) == "") ||
		(input.Description != nil && strings.TrimSpace(*input.Description) == "") {
		srv.media.Discard(ctx, files)

		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("title and description cannot be empty"), "update video")
	}

	var updated *entity.Video
	err := srv.media.Replace(ctx, files, func(ctx context.Context, assets usecase.UploadedAssets) ([]*entity.MediaAsset, error) {
		var replaced []*entity.MediaAsset

		video, err := srv.videoRepo.FindByIDAndUpdate(ctx, videoID, func(v *entity.Video) error {
			replaced = nil
			if input.Title != nil {
				v.Title = strings.TrimSpace(*input.Title)
			}
			if input.Description != nil {
				v.Description = strings.TrimSpace(*input.Description)
			}
			if asset, ok := assets[usecase.FieldVideoFile]; ok {
				replaced = append(replaced, v.VideoFile)
				v.VideoFile = asset
				v.Duration = asset.Duration
			}
			if asset, ok := assets[usecase.FieldThumbnail]; ok {
				replaced = append(replaced, v.Thumbnail)
				v.Thumbnail = asset
			}

			return nil
		})
		if err != nil {
			return nil, mapVideoErr(err)
		}
		updated = video

		return replaced, nil
	})
	if err != nil {
		srv.log(ctx).Error("Video update failed", slog.Any("video_id", videoID), slog.Any("error", err))

		return nil, err
	}

	srv.publishEvent(ctx, service.MediaEventVideoUpdated, updated)

	return updated, nil
}

// DeleteVideo removes the record together with its comments and playlist entries, then
// deletes the remote artifacts. Artifact deletion failures are reported after the fact.
func (srv *videoService) DeleteVideo(ctx context.Context, videoID uuid.UUID) error {
	var deleted *entity.Video

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		video, err := repoFactory.NewVideoRepository().FindByIDAndDelete(ctx, videoID)
		if err != nil {
			return mapVideoErr(err)
		}
		if err := repoFactory.NewCommentRepository().DeleteByVideo(ctx, videoID); err != nil {
			return errors.Wrap(err, "failed to delete comments")
		}
		if err := repoFactory.NewPlaylistRepository().RemoveVideoEverywhere(ctx, videoID); err != nil {
			return errors.Wrap(err, "failed to detach video from playlists")
		}
		deleted = video

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Video delete failed", slog.Any("video_id", videoID), slog.Any("error", err))

		return err
	}

	srv.publishEvent(ctx, service.MediaEventVideoDeleted, deleted)

	return srv.media.Purge(ctx, deleted.Assets())
}

// TogglePublish flips the published flag.
func (srv *videoService) TogglePublish(ctx context.Context, videoID uuid.UUID) (*entity.Video, error) {
	video, err := srv.videoRepo.FindByIDAndUpdate(ctx, videoID, func(v *entity.Video) error {
		v.IsPublished = !v.IsPublished

		return nil
	})
	if err != nil {
		return nil, mapVideoErr(err)
	}

	srv.log(ctx).Info("Video publish status toggled", slog.Any("video_id", videoID), slog.Bool("is_published", video.IsPublished))

	return video, nil
}

// ShareQR renders the watch URL of a published video as a PNG QR code.
func (srv *videoService) ShareQR(ctx context.Context, videoID uuid.UUID) ([]byte, error) {
	video, err := srv.FindVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !video.IsPublished {
		return nil, errors.Wrap(domainerrors.ErrVideoNotFound, "video is not published")
	}

	png, err := srv.qrCode.GenerateVideoShareQR(video.ID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return png, nil
}

// publishEvent emits a media event after a committed write. Failures are only logged.
func (srv *videoService) publishEvent(ctx context.Context, eventType service.MediaEventType, video *entity.Video) {
	event := &service.MediaEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		VideoID:    video.ID.String(),
		OwnerID:    video.OwnerID.String(),
		VideoURL:   video.VideoFile.URLOrEmpty(),
		Thumbnail:  video.Thumbnail.URLOrEmpty(),
		OccurredAt: time.Now().UTC(),
	}

	if err := srv.events.PublishMediaEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish media event",
			slog.String("type", string(eventType)), slog.Any("video_id", video.ID), slog.Any("error", err))
	}
}

func mapVideoErr(err error) error {
	if errors.Is(err, repository.ErrResourceNotFound) {
		return errors.Wrap(domainerrors.ErrVideoNotFound, err.Error())
	}

	return errors.Wrap(err, "video store")
}
