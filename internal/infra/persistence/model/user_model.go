package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
type UserModel struct {
	ID               uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username         string       `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email            string       `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName         string       `gorm:"type:varchar(255);not null"`
	Avatar           MediaColumns `gorm:"embedded;embeddedPrefix:avatar_"`
	CoverImage       MediaColumns `gorm:"embedded;embeddedPrefix:cover_image_"`
	PasswordHash     string       `gorm:"type:varchar(255);not null"`
	RefreshTokenHash *string      `gorm:"type:varchar(128)"`
	WatchHistory     []uuid.UUID  `gorm:"type:jsonb;serializer:json;not null;default:'[]'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
