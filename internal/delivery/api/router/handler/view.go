package handler

import (
	"time"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository"

	"github.com/google/uuid"
)

// Views project entities for clients: media assets become plain URLs and storage ids never
// leave the server.

type UserView struct {
	ID           uuid.UUID   `json:"id"`
	Username     string      `json:"username"`
	Email        string      `json:"email"`
	FullName     string      `json:"fullName"`
	Avatar       string      `json:"avatar"`
	CoverImage   string      `json:"coverImage"`
	WatchHistory []uuid.UUID `json:"watchHistory"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

func newUserView(u *entity.User) *UserView {
	if u == nil {
		return nil
	}

	history := u.WatchHistory
	if history == nil {
		history = []uuid.UUID{}
	}

	return &UserView{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FullName:     u.FullName,
		Avatar:       u.Avatar.URLOrEmpty(),
		CoverImage:   u.CoverImage.URLOrEmpty(),
		WatchHistory: history,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

type VideoView struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	VideoFile   string    `json:"videoFile"`
	Thumbnail   string    `json:"thumbnail"`
	Duration    float64   `json:"duration"`
	Views       int64     `json:"views"`
	IsPublished bool      `json:"isPublished"`
	Owner       uuid.UUID `json:"owner"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newVideoView(v *entity.Video) *VideoView {
	return &VideoView{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		VideoFile:   v.VideoFile.URLOrEmpty(),
		Thumbnail:   v.Thumbnail.URLOrEmpty(),
		Duration:    v.Duration,
		Views:       v.Views,
		IsPublished: v.IsPublished,
		Owner:       v.OwnerID,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

type CommentView struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	Video     uuid.UUID `json:"video"`
	Owner     uuid.UUID `json:"owner"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newCommentView(cm *entity.Comment) *CommentView {
	return &CommentView{
		ID:        cm.ID,
		Content:   cm.Content,
		Video:     cm.VideoID,
		Owner:     cm.OwnerID,
		CreatedAt: cm.CreatedAt,
		UpdatedAt: cm.UpdatedAt,
	}
}

type TweetView struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	Owner     uuid.UUID `json:"owner"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newTweetView(t *entity.Tweet) *TweetView {
	return &TweetView{ID: t.ID, Content: t.Content, Owner: t.OwnerID, CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt}
}

type PlaylistView struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Privacy     string      `json:"privacy"`
	Videos      []uuid.UUID `json:"videos"`
	Owner       uuid.UUID   `json:"owner"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func newPlaylistView(p *entity.Playlist) *PlaylistView {
	videos := p.VideoIDs
	if videos == nil {
		videos = []uuid.UUID{}
	}

	return &PlaylistView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Privacy:     p.Privacy.String(),
		Videos:      videos,
		Owner:       p.OwnerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// PageView is one page of a listing.
type PageView[V any] struct {
	Items      []V   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

func newPageView[T, V any](page *repository.PageResult[T], project func(T) V) *PageView[V] {
	return &PageView[V]{
		Items:      mapSlice(page.Items, project),
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages(),
	}
}

func mapSlice[T, V any](items []T, project func(T) V) []V {
	out := make([]V, 0, len(items))
	for _, item := range items {
		out = append(out, project(item))
	}

	return out
}
