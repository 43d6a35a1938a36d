package usecase

import (
	"context"

	"vidtube/internal/domain/entity"
)

// Logical multipart field names carrying media.
const (
	FieldAvatar     = "avatar"
	FieldCoverImage = "coverImage"
	FieldVideoFile  = "videoFile"
	FieldThumbnail  = "thumbnail"
)

// MediaFile is one received local file bound to a logical field.
// An empty LocalPath means the client did not send the field.
type MediaFile struct {
	Field     string
	LocalPath string
	Required  bool
}

// UploadedAssets maps a field name to the artifact it was uploaded as.
type UploadedAssets map[string]*entity.MediaAsset

// PublishWrite persists a record referencing freshly uploaded artifacts.
type PublishWrite func(ctx context.Context, assets UploadedAssets) error

// ReplaceWrite persists a record pointing at new artifacts and returns the artifacts
// it no longer references.
type ReplaceWrite func(ctx context.Context, assets UploadedAssets) (replaced []*entity.MediaAsset, err error)

// MediaOrchestrator keeps remote artifacts and the database record that references
// them consistent across the publish, replace and delete flows.
type MediaOrchestrator interface {
	// Publish uploads every file, then runs write. Any failure deletes what was uploaded.
	Publish(ctx context.Context, files []MediaFile, write PublishWrite) error

	// Replace uploads the new files, runs write, and only then deletes the replaced artifacts.
	Replace(ctx context.Context, files []MediaFile, write ReplaceWrite) error

	// Purge deletes artifacts whose record is already gone. Failures are reported, not retried.
	Purge(ctx context.Context, assets []*entity.MediaAsset) error

	// Discard releases local files that will never be uploaded.
	Discard(ctx context.Context, files []MediaFile)
}
