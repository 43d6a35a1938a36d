// Package upload stages multipart files on local disk for the media orchestrator.
package upload

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"

	"vidtube/config"
	deliverycontext "vidtube/internal/delivery/context"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var safeExt = regexp.MustCompile(`^\.[A-Za-z0-9]{1,8}$`)

// Intake copies multipart files into the staging directory.
type Intake struct {
	tempDir string
	maxSize int64
	logger  *slog.Logger
}

// NewIntake is the constructor for Intake.
func NewIntake(cfg *config.Config, logger *slog.Logger) *Intake {
	return &Intake{
		tempDir: cfg.Storage.TempDir,
		maxSize: cfg.Storage.MaxUploadSize,
		logger:  logger,
	}
}

// Files are the staged temp paths of one request, keyed by field name.
type Files struct {
	paths  map[string]string
	logger *slog.Logger
}

// Path returns the staged path for field, or "" when the field was not sent.
func (f *Files) Path(field string) string {
	if f == nil {
		return ""
	}

	return f.paths[field]
}

// Release removes every staged file that still exists. The storage adapter removes files it
// uploaded, so most calls find nothing left.
func (f *Files) Release() {
	if f == nil {
		return
	}
	for field, path := range f.paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			f.logger.Warn("Failed to release staged upload", slog.String("field", field), slog.Any("error", err))
		}
	}
}

// Claim stages each named field. A field may carry at most one file, and a request that is
// not multipart yields an empty set. Callers must Release the result on every path.
func (in *Intake) Claim(c echo.Context, fields ...string) (*Files, error) {
	log := deliverycontext.GetLoggerOrDefault(c.Request().Context(), in.logger)
	files := &Files{paths: make(map[string]string, len(fields)), logger: log}

	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return files, nil
		}

		return files, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("malformed multipart form"), err.Error())
	}
	defer func() {
		if err := form.RemoveAll(); err != nil {
			log.Warn("Failed to remove multipart spill files", slog.Any("error", err))
		}
	}()

	if err := os.MkdirAll(in.tempDir, 0o750); err != nil {
		return files, errors.Wrap(err, "failed to create upload staging directory")
	}

	for _, field := range fields {
		headers := form.File[field]
		switch {
		case len(headers) == 0:
			continue
		case len(headers) > 1:
			return files, domainerrors.ErrValidationFailed.WithDetails(field + " accepts a single file")
		case in.maxSize > 0 && headers[0].Size > in.maxSize:
			return files, domainerrors.ErrValidationFailed.WithDetails(field + " exceeds the upload limit of " + util.FormatBytes(in.maxSize))
		}

		path, err := in.stage(headers[0])
		if err != nil {
			return files, errors.Wrapf(err, "stage %s", field)
		}
		files.paths[field] = path
	}

	return files, nil
}

func (in *Intake) stage(header *multipart.FileHeader) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer src.Close()

	ext := filepath.Ext(header.Filename)
	if !safeExt.MatchString(ext) {
		ext = ""
	}

	dst, err := os.CreateTemp(in.tempDir, "upload-*"+ext)
	if err != nil {
		return "", errors.WithStack(err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())

		return "", errors.WithStack(err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())

		return "", errors.WithStack(err)
	}

	return dst.Name(), nil
}
