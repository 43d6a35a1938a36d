// Package entity contains the core business objects of the project.
package entity

import "strings"

// ResourceType classifies a remote artifact, mirroring the storage provider's buckets of work.
type ResourceType string

const (
	// ResourceTypeImage is used for avatars, cover images and thumbnails.
	ResourceTypeImage ResourceType = "image"
	// ResourceTypeVideo is used for uploaded video files.
	ResourceTypeVideo ResourceType = "video"
	// ResourceTypeRaw is used for anything the storage layer cannot classify.
	ResourceTypeRaw ResourceType = "raw"
)

// String returns the string representation of the ResourceType.
func (r ResourceType) String() string {
	return string(r)
}

// IsValid checks if the ResourceType is a valid value.
func (r ResourceType) IsValid() bool {
	switch r {
	case ResourceTypeImage, ResourceTypeVideo, ResourceTypeRaw:
		return true
	default:
		return false
	}
}

// ResourceTypeFromMIME maps a detected content type onto a ResourceType.
func ResourceTypeFromMIME(mime string) ResourceType {
	switch {
	case strings.HasPrefix(mime, "image/"):
		return ResourceTypeImage
	case strings.HasPrefix(mime, "video/"), strings.HasPrefix(mime, "audio/"):
		return ResourceTypeVideo
	default:
		return ResourceTypeRaw
	}
}
