package model

import (
	"time"

	"github.com/google/uuid"
)

// VideoModel mirrors the 'videos' table.
type VideoModel struct {
	ID          uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string       `gorm:"type:varchar(255);not null"`
	Description string       `gorm:"type:text;not null"`
	VideoFile   MediaColumns `gorm:"embedded;embeddedPrefix:video_file_"`
	Thumbnail   MediaColumns `gorm:"embedded;embeddedPrefix:thumbnail_"`
	Duration    float64      `gorm:"not null;default:0"`
	Views       int64        `gorm:"not null;default:0"`
	IsPublished bool         `gorm:"not null;default:true"`
	OwnerID     uuid.UUID    `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time    `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (VideoModel) TableName() string {
	return "videos"
}
