package upload

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"vidtube/config"
	domainerrors "vidtube/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIntake(t *testing.T, maxSize int64) *Intake {
	t.Helper()

	cfg := &config.Config{Storage: &config.StorageConfig{TempDir: t.TempDir(), MaxUploadSize: maxSize}}

	return NewIntake(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type part struct {
	field, filename, content string
}

func multipartRequest(t *testing.T, parts ...part) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, p := range parts {
		fw, err := w.CreateFormFile(p.field, p.filename)
		require.NoError(t, err)
		_, err = io.Copy(fw, strings.NewReader(p.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.WriteField("title", "hello"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	return req
}

func TestIntake_Claim(t *testing.T) {
	in := newTestIntake(t, 1024)
	c := echo.New().NewContext(multipartRequest(t,
		part{"videoFile", "clip.mp4", "video-bytes"},
		part{"thumbnail", "thumb.png", "png-bytes"},
	), httptest.NewRecorder())

	files, err := in.Claim(c, "videoFile", "thumbnail", "avatar")
	require.NoError(t, err)

	video := files.Path("videoFile")
	require.NotEmpty(t, video)
	assert.True(t, strings.HasSuffix(video, ".mp4"))
	data, err := os.ReadFile(video)
	require.NoError(t, err)
	assert.Equal(t, "video-bytes", string(data))
	assert.Empty(t, files.Path("avatar"))
	assert.Equal(t, "hello", c.FormValue("title"))

	files.Release()
	_, err = os.Stat(video)
	assert.True(t, os.IsNotExist(err))
	files.Release()
}

func TestIntake_Claim_RejectsMultipleFilesPerField(t *testing.T) {
	in := newTestIntake(t, 1024)
	c := echo.New().NewContext(multipartRequest(t,
		part{"thumbnail", "a.png", "a"},
		part{"thumbnail", "b.png", "b"},
	), httptest.NewRecorder())

	files, err := in.Claim(c, "thumbnail")
	defer files.Release()

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestIntake_Claim_RejectsOversizedFile(t *testing.T) {
	in := newTestIntake(t, 4)
	c := echo.New().NewContext(multipartRequest(t, part{"avatar", "a.png", "too large"}), httptest.NewRecorder())

	files, err := in.Claim(c, "avatar")
	defer files.Release()

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestIntake_Claim_NotMultipart(t *testing.T) {
	in := newTestIntake(t, 1024)
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"title":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	files, err := in.Claim(c, "thumbnail")
	require.NoError(t, err)
	assert.Empty(t, files.Path("thumbnail"))
}
