package impl

import (
	"context"
	"testing"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/errors"
	"vidtube/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publishFiles(t *testing.T) []usecase.MediaFile {
	t.Helper()

	return []usecase.MediaFile{
		{Field: usecase.FieldVideoFile, LocalPath: writeTempFile(t, "clip.mp4"), Required: true},
		{Field: usecase.FieldThumbnail, LocalPath: writeTempFile(t, "thumb.png"), Required: true},
	}
}

func TestMediaOrchestrator_Publish_Success(t *testing.T) {
	storage := newFakeStorage()
	orch, m := newTestOrchestrator(storage)
	files := publishFiles(t)

	var seen usecase.UploadedAssets
	err := orch.Publish(context.Background(), files, func(_ context.Context, assets usecase.UploadedAssets) error {
		seen = assets

		return nil
	})

	require.NoError(t, err)
	require.Len(t, seen, 2)
	assert.Equal(t, "remote/clip.mp4", seen[usecase.FieldVideoFile].RemoteID)
	assert.Equal(t, "remote/thumb.png", seen[usecase.FieldThumbnail].RemoteID)
	assert.Zero(t, storage.totalDeletes())
	for _, f := range files {
		assert.False(t, fileExists(f.LocalPath), "local file %s should be released", f.LocalPath)
	}
	assert.InDelta(t, 2, counterValue(t, m.Registry(), "vidtube_media_uploads_total", ""), 0)
}

func TestMediaOrchestrator_Publish_WriteFailureDeletesEveryArtifactOnce(t *testing.T) {
	storage := newFakeStorage()
	orch, m := newTestOrchestrator(storage)

	err := orch.Publish(context.Background(), publishFiles(t), func(context.Context, usecase.UploadedAssets) error {
		return domainerrors.ErrUserAlreadyExists
	})

	require.Error(t, err)
	assert.Equal(t, 1, storage.deleteCount("remote/clip.mp4"))
	assert.Equal(t, 1, storage.deleteCount("remote/thumb.png"))
	assert.Equal(t, 2, storage.totalDeletes())

	// The client still sees the write's own error kind.
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 409, appErr.HTTPCode())
	assert.InDelta(t, 2, counterValue(t, m.Registry(), "vidtube_media_compensations_total", flowPublish), 0)
}

func TestMediaOrchestrator_Publish_CompensationFailureKeepsPrimaryKind(t *testing.T) {
	storage := newFakeStorage()
	storage.deleteErrs["remote/thumb.png"] = errors.New("storage unavailable")
	orch, m := newTestOrchestrator(storage)

	err := orch.Publish(context.Background(), publishFiles(t), func(context.Context, usecase.UploadedAssets) error {
		return domainerrors.ErrValidationFailed
	})

	require.Error(t, err)
	upstream, ok := errors.AsType[*domainerrors.UpstreamError](err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), upstream.ErrorCode())
	assert.Len(t, upstream.Compensation(), 1)
	assert.Contains(t, upstream.Details(), "storage unavailable")
	assert.InDelta(t, 1, counterValue(t, m.Registry(), "vidtube_media_orphaned_artifacts_total", flowPublish), 0)
}

func TestMediaOrchestrator_Publish_UploadFailureRollsBackOthers(t *testing.T) {
	storage := newFakeStorage()
	storage.uploadErrs["clip.mp4"] = errors.New("transcoder down")
	orch, _ := newTestOrchestrator(storage)
	files := publishFiles(t)

	writeCalled := false
	err := orch.Publish(context.Background(), files, func(context.Context, usecase.UploadedAssets) error {
		writeCalled = true

		return nil
	})

	require.Error(t, err)
	assert.False(t, writeCalled)
	assert.Equal(t, 1, storage.deleteCount("remote/thumb.png"))
	assert.Equal(t, 1, storage.totalDeletes())
	assert.False(t, fileExists(files[0].LocalPath))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrUpstreamFailure.ErrorCode(), appErr.ErrorCode())
}

func TestMediaOrchestrator_Publish_MissingRequiredFile(t *testing.T) {
	storage := newFakeStorage()
	orch, _ := newTestOrchestrator(storage)
	thumb := writeTempFile(t, "thumb.png")
	files := []usecase.MediaFile{
		{Field: usecase.FieldVideoFile, Required: true},
		{Field: usecase.FieldThumbnail, LocalPath: thumb, Required: true},
	}

	err := orch.Publish(context.Background(), files, func(context.Context, usecase.UploadedAssets) error {
		t.Fatal("write must not run")

		return nil
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingMedia))
	assert.Empty(t, storage.uploaded)
	assert.False(t, fileExists(thumb))
}

func TestMediaOrchestrator_Replace_WriteFailureKeepsOldArtifact(t *testing.T) {
	storage := newFakeStorage()
	orch, _ := newTestOrchestrator(storage)
	old := &entity.MediaAsset{RemoteID: "remote/old.png", ResourceType: entity.ResourceTypeImage}
	files := []usecase.MediaFile{{Field: usecase.FieldThumbnail, LocalPath: writeTempFile(t, "new.png")}}

	err := orch.Replace(context.Background(), files, func(context.Context, usecase.UploadedAssets) ([]*entity.MediaAsset, error) {
		return []*entity.MediaAsset{old}, errors.New("db down")
	})

	require.Error(t, err)
	assert.Zero(t, storage.deleteCount("remote/old.png"))
	assert.Equal(t, 1, storage.deleteCount("remote/new.png"))
}

func TestMediaOrchestrator_Replace_DeletesOldAfterWrite(t *testing.T) {
	storage := newFakeStorage()
	orch, _ := newTestOrchestrator(storage)
	old := &entity.MediaAsset{RemoteID: "remote/old.png", ResourceType: entity.ResourceTypeImage}
	files := []usecase.MediaFile{{Field: usecase.FieldThumbnail, LocalPath: writeTempFile(t, "new.png")}}

	err := orch.Replace(context.Background(), files, func(_ context.Context, assets usecase.UploadedAssets) ([]*entity.MediaAsset, error) {
		assert.Zero(t, storage.deleteCount("remote/old.png"), "old artifact deleted before write")
		assert.Equal(t, "remote/new.png", assets[usecase.FieldThumbnail].RemoteID)

		return []*entity.MediaAsset{old, nil}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, storage.deleteCount("remote/old.png"))
	assert.Zero(t, storage.deleteCount("remote/new.png"))
}

func TestMediaOrchestrator_Replace_OldDeleteFailureIsNotFatal(t *testing.T) {
	storage := newFakeStorage()
	storage.deleteErrs["remote/old.png"] = errors.New("timeout")
	orch, m := newTestOrchestrator(storage)
	old := &entity.MediaAsset{RemoteID: "remote/old.png", ResourceType: entity.ResourceTypeImage}
	files := []usecase.MediaFile{{Field: usecase.FieldAvatar, LocalPath: writeTempFile(t, "new.png")}}

	err := orch.Replace(context.Background(), files, func(context.Context, usecase.UploadedAssets) ([]*entity.MediaAsset, error) {
		return []*entity.MediaAsset{old}, nil
	})

	require.NoError(t, err)
	assert.InDelta(t, 1, counterValue(t, m.Registry(), "vidtube_media_orphaned_artifacts_total", flowReplace), 0)
}

func TestMediaOrchestrator_Purge(t *testing.T) {
	storage := newFakeStorage()
	storage.deleteErrs["remote/b"] = errors.New("gone wrong")
	orch, m := newTestOrchestrator(storage)

	err := orch.Purge(context.Background(), []*entity.MediaAsset{
		{RemoteID: "remote/a", ResourceType: entity.ResourceTypeVideo},
		{RemoteID: "remote/b", ResourceType: entity.ResourceTypeImage},
		nil,
	})

	require.Error(t, err)
	assert.Equal(t, 1, storage.deleteCount("remote/a"))
	assert.Equal(t, 1, storage.deleteCount("remote/b"))
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 502, appErr.HTTPCode())
	assert.InDelta(t, 1, counterValue(t, m.Registry(), "vidtube_media_orphaned_artifacts_total", flowPurge), 0)

	assert.NoError(t, orch.Purge(context.Background(), nil))
}
