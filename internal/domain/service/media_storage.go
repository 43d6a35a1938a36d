package service

import (
	"context"

	"vidtube/internal/domain/entity"
)

// MediaStorage is the remote object store artifacts are uploaded to.
type MediaStorage interface {
	// Upload copies the local file to remote storage and removes the local file,
	// whether or not the upload succeeded.
	Upload(ctx context.Context, localPath string) (*entity.MediaAsset, error)

	// Delete removes a remote artifact. Deleting an id that is already gone succeeds.
	Delete(ctx context.Context, remoteID string, resourceType entity.ResourceType) error
}
