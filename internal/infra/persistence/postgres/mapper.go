package postgres

import (
	"vidtube/internal/domain/entity"
	"vidtube/internal/infra/persistence/model"

	"github.com/google/uuid"
)

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toMediaAsset(data model.MediaColumns) *entity.MediaAsset {
	if data.RemoteID == "" {
		return nil
	}

	return &entity.MediaAsset{
		RemoteID:     data.RemoteID,
		URL:          data.URL,
		ResourceType: entity.ResourceType(data.ResourceType),
		Duration:     data.Duration,
	}
}

func fromMediaAsset(data *entity.MediaAsset) model.MediaColumns {
	if data.IsZero() {
		return model.MediaColumns{}
	}

	return model.MediaColumns{
		RemoteID:     data.RemoteID,
		URL:          data.URL,
		ResourceType: data.ResourceType.String(),
		Duration:     data.Duration,
	}
}

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		FullName:     data.FullName,
		Avatar:       toMediaAsset(data.Avatar),
		CoverImage:   toMediaAsset(data.CoverImage),
		PasswordHash: data.PasswordHash,
		WatchHistory: data.WatchHistory,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if data.RefreshTokenHash != nil {
		user.RefreshTokenHash = *data.RefreshTokenHash
	}

	return user
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		FullName:     data.FullName,
		Avatar:       fromMediaAsset(data.Avatar),
		CoverImage:   fromMediaAsset(data.CoverImage),
		PasswordHash: data.PasswordHash,
		WatchHistory: data.WatchHistory,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if userM.WatchHistory == nil {
		userM.WatchHistory = []uuid.UUID{}
	}
	if data.RefreshTokenHash != "" {
		hash := data.RefreshTokenHash
		userM.RefreshTokenHash = &hash
	}

	return userM
}

func toVideoDomain(data *model.VideoModel) *entity.Video {
	return &entity.Video{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		VideoFile:   toMediaAsset(data.VideoFile),
		Thumbnail:   toMediaAsset(data.Thumbnail),
		Duration:    data.Duration,
		Views:       data.Views,
		IsPublished: data.IsPublished,
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromVideoDomain(data *entity.Video) *model.VideoModel {
	return &model.VideoModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		VideoFile:   fromMediaAsset(data.VideoFile),
		Thumbnail:   fromMediaAsset(data.Thumbnail),
		Duration:    data.Duration,
		Views:       data.Views,
		IsPublished: data.IsPublished,
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toCommentDomain(data *model.CommentModel) *entity.Comment {
	return &entity.Comment{
		ID:        data.ID,
		Content:   data.Content,
		VideoID:   data.VideoID,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	return &model.CommentModel{
		ID:        data.ID,
		Content:   data.Content,
		VideoID:   data.VideoID,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toTweetDomain(data *model.TweetModel) *entity.Tweet {
	return &entity.Tweet{
		ID:        data.ID,
		Content:   data.Content,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromTweetDomain(data *entity.Tweet) *model.TweetModel {
	return &model.TweetModel{
		ID:        data.ID,
		Content:   data.Content,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toPlaylistDomain(data *model.PlaylistModel) *entity.Playlist {
	return &entity.Playlist{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Privacy:     entity.PlaylistPrivacy(data.Privacy),
		VideoIDs:    data.VideoIDs,
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromPlaylistDomain(data *entity.Playlist) *model.PlaylistModel {
	videoIDs := data.VideoIDs
	if videoIDs == nil {
		videoIDs = []uuid.UUID{}
	}

	return &model.PlaylistModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Privacy:     data.Privacy.String(),
		VideoIDs:    videoIDs,
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
