// Package storage implements remote media storage on top of gocloud.dev/blob.
package storage

import (
	"context"
	"crypto/rand"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"vidtube/config"
	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/lifecycle"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"
	"vidtube/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/oklog/ulid/v2"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// BlobStorage uploads local files to a bucket and deletes them by key.
type BlobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	keyPrefix     string
	logger        *slog.Logger
	now           func() time.Time
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.MediaStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage.bucketUrl must be configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %q", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStorage(bucket, cfg, params.Logger), nil
}

// NewBlobStorage wraps an already opened bucket.
func NewBlobStorage(bucket *blob.Bucket, cfg *config.StorageConfig, logger *slog.Logger) *BlobStorage {
	s := &BlobStorage{
		bucket: bucket,
		logger: logger,
		now:    time.Now,
	}
	if cfg != nil {
		s.publicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")
		s.keyPrefix = strings.Trim(cfg.KeyPrefix, "/")
	}

	return s
}

func (s *BlobStorage) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Upload streams localPath into the bucket under a fresh ULID key.
// The local file is removed on every path out of this method.
func (s *BlobStorage) Upload(ctx context.Context, localPath string) (*entity.MediaAsset, error) {
	defer s.removeLocal(ctx, localPath)

	if localPath == "" {
		return nil, errors.New("local path is empty")
	}

	mt, err := mimetype.DetectFile(localPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to detect content type of %s", localPath)
	}
	resourceType := entity.ResourceTypeFromMIME(mt.String())

	key, err := s.newKey(resourceType, mt.Extension())
	if err != nil {
		return nil, err
	}

	file, err := os.Open(localPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", localPath)
	}
	defer file.Close()

	// Cancelling the writer context aborts the upload instead of committing a partial object.
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	writer, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{ContentType: mt.String()})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open writer for %s", key)
	}
	written, err := io.Copy(writer, file)
	if err != nil {
		cancel()
		_ = writer.Close()

		return nil, errors.Wrapf(err, "failed to upload %s", key)
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrapf(err, "failed to commit %s", key)
	}

	s.log(ctx).Debug("Uploaded artifact",
		slog.String("remote_id", key),
		slog.String("resource_type", resourceType.String()),
		slog.String("content_type", mt.String()),
		slog.String("size", util.FormatBytes(written)),
	)

	return &entity.MediaAsset{
		RemoteID:     key,
		URL:          s.publicURL(key),
		ResourceType: resourceType,
	}, nil
}

// Delete removes the object. A missing object counts as deleted.
func (s *BlobStorage) Delete(ctx context.Context, remoteID string, resourceType entity.ResourceType) error {
	if remoteID == "" {
		return nil
	}

	if err := s.bucket.Delete(ctx, remoteID); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			s.log(ctx).Debug("Artifact already deleted", slog.String("remote_id", remoteID))

			return nil
		}

		return errors.Wrapf(err, "failed to delete %s artifact %s", resourceType, remoteID)
	}

	s.log(ctx).Debug("Deleted artifact",
		slog.String("remote_id", remoteID),
		slog.String("resource_type", resourceType.String()),
	)

	return nil
}

func (s *BlobStorage) newKey(resourceType entity.ResourceType, ext string) (string, error) {
	id, err := ulid.New(ulid.Timestamp(s.now()), rand.Reader)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate object key")
	}

	return path.Join(s.keyPrefix, resourceType.String(), strings.ToLower(id.String())+ext), nil
}

func (s *BlobStorage) publicURL(key string) string {
	if s.publicBaseURL == "" {
		return key
	}

	return s.publicBaseURL + "/" + key
}

func (s *BlobStorage) removeLocal(ctx context.Context, localPath string) {
	if localPath == "" {
		return
	}
	if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
		s.log(ctx).Warn("Failed to remove local upload", slog.String("path", localPath), slog.Any("error", err))
	}
}
