package model

import (
	"time"

	"github.com/google/uuid"
)

// PlaylistModel mirrors the 'playlists' table. Video order is kept in a jsonb array.
type PlaylistModel struct {
	ID          uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string      `gorm:"type:varchar(255);not null"`
	Description string      `gorm:"type:text"`
	Privacy     string      `gorm:"type:varchar(16);not null;default:'Private'"`
	VideoIDs    []uuid.UUID `gorm:"column:video_ids;type:jsonb;serializer:json;not null;default:'[]'"`
	OwnerID     uuid.UUID   `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlaylistModel) TableName() string {
	return "playlists"
}

// All returns every persistence model, in dependency order, for schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&VideoModel{},
		&CommentModel{},
		&TweetModel{},
		&PlaylistModel{},
	}
}
