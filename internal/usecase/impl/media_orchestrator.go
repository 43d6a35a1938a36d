// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"os"
	"sync"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"
	"vidtube/internal/infra/metrics"
	"vidtube/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// Flow labels used for metrics and logs.
const (
	flowPublish = "publish"
	flowReplace = "replace"
	flowPurge   = "purge"
)

// mediaOrchestrator implements the MediaOrchestrator interface.
type mediaOrchestrator struct {
	storage service.MediaStorage
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// MediaOrchestratorParams holds dependencies for the orchestrator, injected by Fx.
type MediaOrchestratorParams struct {
	fx.In

	Storage service.MediaStorage
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// NewMediaOrchestrator is the constructor for mediaOrchestrator.
func NewMediaOrchestrator(params MediaOrchestratorParams) usecase.MediaOrchestrator {
	return &mediaOrchestrator{
		storage: params.Storage,
		metrics: params.Metrics,
		logger:  params.Logger,
	}
}

func (o *mediaOrchestrator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, o.logger)
}

// Publish uploads every received file and then runs write. Nothing uploaded survives a failure.
func (o *mediaOrchestrator) Publish(ctx context.Context, files []usecase.MediaFile, write usecase.PublishWrite) error {
	for _, f := range files {
		if f.Required && f.LocalPath == "" {
			o.Discard(ctx, files)

			return errors.Wrapf(domainerrors.ErrMissingMedia.WithDetails(f.Field+" is required"), "missing %s", f.Field)
		}
	}

	assets, err := o.uploadAll(ctx, files)
	if err != nil {
		compErrs := o.compensate(ctx, flowPublish, assets)

		return domainerrors.NewUpstreamError(err, "media upload failed", compErrs...)
	}

	if err := write(ctx, assets); err != nil {
		o.log(ctx).Warn("Record write failed after upload, deleting artifacts",
			slog.String("flow", flowPublish), slog.Any("error", err))
		compErrs := o.compensate(ctx, flowPublish, assets)

		return domainerrors.NewUpstreamError(err, "record write failed", compErrs...)
	}

	return nil
}

// Replace uploads the new artifacts first and deletes the old ones only after write succeeds.
// A failing delete of an old artifact leaves it orphaned but does not fail the request.
func (o *mediaOrchestrator) Replace(ctx context.Context, files []usecase.MediaFile, write usecase.ReplaceWrite) error {
	assets, err := o.uploadAll(ctx, files)
	if err != nil {
		compErrs := o.compensate(ctx, flowReplace, assets)

		return domainerrors.NewUpstreamError(err, "media upload failed", compErrs...)
	}

	replaced, err := write(ctx, assets)
	if err != nil {
		o.log(ctx).Warn("Record write failed after upload, deleting new artifacts",
			slog.String("flow", flowReplace), slog.Any("error", err))
		compErrs := o.compensate(ctx, flowReplace, assets)

		return domainerrors.NewUpstreamError(err, "record write failed", compErrs...)
	}

	for _, old := range replaced {
		if old.IsZero() {
			continue
		}
		if err := o.storage.Delete(ctx, old.RemoteID, old.ResourceType); err != nil {
			o.metrics.Orphaned(flowReplace)
			o.log(ctx).Error("Failed to delete replaced artifact",
				slog.String("remote_id", old.RemoteID), slog.Any("error", err))
		}
	}

	return nil
}

// Purge deletes the artifacts of an already removed record, concurrently, and reports every failure.
func (o *mediaOrchestrator) Purge(ctx context.Context, assets []*entity.MediaAsset) error {
	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []error
	)

	for _, asset := range assets {
		if asset.IsZero() {
			continue
		}
		g.Go(func() error {
			if err := o.storage.Delete(ctx, asset.RemoteID, asset.ResourceType); err != nil {
				o.metrics.Orphaned(flowPurge)
				o.log(ctx).Error("Failed to delete artifact of removed record",
					slog.String("remote_id", asset.RemoteID), slog.Any("error", err))
				mu.Lock()
				errs = append(errs, errors.Wrapf(err, "delete %s", asset.RemoteID))
				mu.Unlock()
			}

			return nil
		})
	}
	_ = g.Wait()

	if len(errs) > 0 {
		return domainerrors.NewUpstreamError(errors.Join(errs...), "remote artifact deletion failed")
	}

	return nil
}

// Discard removes local temp files that will not be uploaded.
func (o *mediaOrchestrator) Discard(ctx context.Context, files []usecase.MediaFile) {
	for _, f := range files {
		if f.LocalPath == "" {
			continue
		}
		if err := os.Remove(f.LocalPath); err != nil && !os.IsNotExist(err) {
			o.log(ctx).Warn("Failed to remove temp file", slog.String("path", f.LocalPath), slog.Any("error", err))
		}
	}
}

// uploadAll uploads every file that was sent. All uploads settle before it returns, so the
// returned assets are exactly the artifacts that now exist remotely, even on error.
func (o *mediaOrchestrator) uploadAll(ctx context.Context, files []usecase.MediaFile) (usecase.UploadedAssets, error) {
	var (
		g      errgroup.Group
		mu     sync.Mutex
		assets = make(usecase.UploadedAssets, len(files))
	)

	for _, f := range files {
		if f.LocalPath == "" {
			continue
		}
		g.Go(func() error {
			asset, err := o.storage.Upload(ctx, f.LocalPath)
			if err != nil {
				o.metrics.UploadFailed(f.Field)

				return errors.Wrapf(err, "upload %s", f.Field)
			}
			o.metrics.UploadSucceeded(asset.ResourceType.String())

			mu.Lock()
			assets[f.Field] = asset
			mu.Unlock()

			return nil
		})
	}

	return assets, g.Wait()
}

// compensate deletes each uploaded artifact once and returns the deletes that failed.
func (o *mediaOrchestrator) compensate(ctx context.Context, flow string, assets usecase.UploadedAssets) []error {
	var errs []error
	for field, asset := range assets {
		err := o.storage.Delete(ctx, asset.RemoteID, asset.ResourceType)
		o.metrics.Compensated(flow, err)
		if err != nil {
			o.log(ctx).Error("Compensating delete failed, artifact orphaned",
				slog.String("flow", flow), slog.String("field", field),
				slog.String("remote_id", asset.RemoteID), slog.Any("error", err))
			errs = append(errs, errors.Wrapf(err, "compensate %s", field))
		}
	}

	return errs
}
