package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// PlaylistPrivacy controls who may see a playlist.
type PlaylistPrivacy string

const (
	PlaylistPrivacyUnlisted PlaylistPrivacy = "Unlisted"
	PlaylistPrivacyPrivate  PlaylistPrivacy = "Private"
	PlaylistPrivacyPublic   PlaylistPrivacy = "Public"
)

// String returns the string representation of the PlaylistPrivacy.
func (p PlaylistPrivacy) String() string {
	return string(p)
}

// IsValid checks if the PlaylistPrivacy is a valid value.
func (p PlaylistPrivacy) IsValid() bool {
	switch p {
	case PlaylistPrivacyUnlisted, PlaylistPrivacyPrivate, PlaylistPrivacyPublic:
		return true
	default:
		return false
	}
}

// Playlist is an ordered, owner-curated list of videos.
type Playlist struct {
	ID          uuid.UUID
	Name        string
	Description string
	Privacy     PlaylistPrivacy
	VideoIDs    []uuid.UUID
	OwnerID     uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p *Playlist) ResourceID() uuid.UUID { return p.ID }
func (p *Playlist) OwnerRef() uuid.UUID   { return p.OwnerID }

// AddVideo appends the video once; it reports whether the list changed.
func (p *Playlist) AddVideo(videoID uuid.UUID) bool {
	if slices.Contains(p.VideoIDs, videoID) {
		return false
	}
	p.VideoIDs = append(p.VideoIDs, videoID)

	return true
}

// RemoveVideo drops the video; it reports whether the list changed.
func (p *Playlist) RemoveVideo(videoID uuid.UUID) bool {
	idx := slices.Index(p.VideoIDs, videoID)
	if idx < 0 {
		return false
	}
	p.VideoIDs = slices.Delete(p.VideoIDs, idx, idx+1)

	return true
}
