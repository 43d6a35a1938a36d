package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"vidtube/internal/delivery/api/response"
	"vidtube/internal/delivery/api/upload"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VideoHandlerParams holds dependencies for VideoHandler, injected by Fx.
type VideoHandlerParams struct {
	fx.In

	VideoUC usecase.VideoUsecase
	Intake  *upload.Intake
	Logger  *slog.Logger
}

// VideoHandler holds dependencies for video handlers.
type VideoHandler struct {
	videoUC usecase.VideoUsecase
	intake  *upload.Intake
	logger  *slog.Logger
}

// NewVideoHandler is the constructor for VideoHandler
func NewVideoHandler(params VideoHandlerParams) *VideoHandler {
	return &VideoHandler{
		videoUC: params.VideoUC,
		intake:  params.Intake,
		logger:  params.Logger,
	}
}

// ListVideosRequest holds the listing query.
type ListVideosRequest struct {
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
	Query    string `query:"query"`
	SortBy   string `query:"sortBy"`
	SortType string `query:"sortType" validate:"omitempty,oneof=asc desc"`
	UserID   string `query:"userId"`
}

// PublishVideoRequest is the text part of a multipart publication.
type PublishVideoRequest struct {
	Title       string `form:"title" validate:"required,notblank"`
	Description string `form:"description" validate:"required,notblank"`
}

// UpdateVideoRequest is the JSON form of a metadata-only update.
type UpdateVideoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// ListVideos handles the paged listing.
func (h *VideoHandler) ListVideos(c echo.Context) error {
	var req ListVideosRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	page, err := h.videoUC.ListVideos(c.Request().Context(), usecase.ListVideosInput{
		Page:     req.Page,
		Limit:    req.Limit,
		Query:    req.Query,
		SortBy:   req.SortBy,
		SortType: req.SortType,
		UserID:   req.UserID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPageView(page, newVideoView), "Videos fetched successfully")
}

// PublishVideo handles the multipart publication.
func (h *VideoHandler) PublishVideo(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	files, err := h.intake.Claim(c, usecase.FieldVideoFile, usecase.FieldThumbnail)
	defer files.Release()
	if err != nil {
		return errors.WithStack(err)
	}

	var req PublishVideoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	video, err := h.videoUC.PublishVideo(c.Request().Context(), user.ID, usecase.PublishVideoInput{
		Title:       req.Title,
		Description: req.Description,
		VideoFile:   files.Path(usecase.FieldVideoFile),
		Thumbnail:   files.Path(usecase.FieldThumbnail),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newVideoView(video), "Video published successfully")
}

// GetVideo returns one video and counts the view.
func (h *VideoHandler) GetVideo(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}

	video, err := h.videoUC.GetVideo(c.Request().Context(), user.ID, videoID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newVideoView(video), "Video fetched successfully")
}

// UpdateVideo accepts JSON for metadata only, or multipart to also replace the media.
func (h *VideoHandler) UpdateVideo(c echo.Context) error {
	videoID, err := ownedID(c, "videoId")
	if err != nil {
		return err
	}

	files, err := h.intake.Claim(c, usecase.FieldVideoFile, usecase.FieldThumbnail)
	defer files.Release()
	if err != nil {
		return errors.WithStack(err)
	}

	input := usecase.UpdateVideoInput{
		VideoFile: files.Path(usecase.FieldVideoFile),
		Thumbnail: files.Path(usecase.FieldThumbnail),
	}
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		var req UpdateVideoRequest
		if err := c.Bind(&req); err != nil {
			return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("malformed request body"), err.Error())
		}
		input.Title, input.Description = req.Title, req.Description
	} else {
		form, err := c.FormParams()
		if err != nil {
			return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("malformed form"), err.Error())
		}
		input.Title = optionalFormValue(form, "title")
		input.Description = optionalFormValue(form, "description")
	}

	video, err := h.videoUC.UpdateVideo(c.Request().Context(), videoID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newVideoView(video), "Video updated successfully")
}

// DeleteVideo removes the record and then its media.
func (h *VideoHandler) DeleteVideo(c echo.Context) error {
	videoID, err := ownedID(c, "videoId")
	if err != nil {
		return err
	}

	if err := h.videoUC.DeleteVideo(c.Request().Context(), videoID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{}, "Video deleted successfully")
}

// TogglePublish flips the published flag.
func (h *VideoHandler) TogglePublish(c echo.Context) error {
	videoID, err := ownedID(c, "videoId")
	if err != nil {
		return err
	}

	video, err := h.videoUC.TogglePublish(c.Request().Context(), videoID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newVideoView(video), "Publish status toggled")
}

// ShareQR renders the watch URL of a published video as a PNG.
func (h *VideoHandler) ShareQR(c echo.Context) error {
	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}

	png, err := h.videoUC.ShareQR(c.Request().Context(), videoID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
