package handler

import (
	"log/slog"
	"net/http"

	"vidtube/internal/delivery/api/response"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PlaylistHandlerParams holds dependencies for PlaylistHandler, injected by Fx.
type PlaylistHandlerParams struct {
	fx.In

	PlaylistUC usecase.PlaylistUsecase
	Logger     *slog.Logger
}

// PlaylistHandler holds dependencies for playlist handlers.
type PlaylistHandler struct {
	playlistUC usecase.PlaylistUsecase
	logger     *slog.Logger
}

// NewPlaylistHandler is the constructor for PlaylistHandler
func NewPlaylistHandler(params PlaylistHandlerParams) *PlaylistHandler {
	return &PlaylistHandler{playlistUC: params.PlaylistUC, logger: params.Logger}
}

// PlaylistRequest uses pointers so a PATCH can tell an omitted field from an empty one.
type PlaylistRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Privacy     *string `json:"privacy" validate:"omitempty,oneof=Unlisted Private Public"`
}

func (r PlaylistRequest) input() usecase.PlaylistInput {
	return usecase.PlaylistInput{Name: r.Name, Description: r.Description, Privacy: r.Privacy}
}

func (h *PlaylistHandler) CreatePlaylist(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	var req PlaylistRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	playlist, err := h.playlistUC.CreatePlaylist(c.Request().Context(), user.ID, req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newPlaylistView(playlist), "Playlist created successfully")
}

func (h *PlaylistHandler) GetPlaylist(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	playlistID, err := pathID(c, "playlistId")
	if err != nil {
		return err
	}

	playlist, err := h.playlistUC.GetPlaylist(c.Request().Context(), user.ID, playlistID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPlaylistView(playlist), "Playlist fetched successfully")
}

func (h *PlaylistHandler) ListUserPlaylists(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	playlists, err := h.playlistUC.ListUserPlaylists(c.Request().Context(), user.ID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mapSlice(playlists, newPlaylistView), "Playlists fetched successfully")
}

func (h *PlaylistHandler) UpdatePlaylist(c echo.Context) error {
	playlistID, err := ownedID(c, "playlistId")
	if err != nil {
		return err
	}

	var req PlaylistRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	playlist, err := h.playlistUC.UpdatePlaylist(c.Request().Context(), playlistID, req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPlaylistView(playlist), "Playlist updated successfully")
}

func (h *PlaylistHandler) DeletePlaylist(c echo.Context) error {
	playlistID, err := ownedID(c, "playlistId")
	if err != nil {
		return err
	}

	if err := h.playlistUC.DeletePlaylist(c.Request().Context(), playlistID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{}, "Playlist deleted successfully")
}

func (h *PlaylistHandler) AddVideo(c echo.Context) error {
	playlistID, err := ownedID(c, "playlistId")
	if err != nil {
		return err
	}

	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}

	playlist, err := h.playlistUC.AddVideo(c.Request().Context(), playlistID, videoID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPlaylistView(playlist), "Video added to playlist")
}

func (h *PlaylistHandler) RemoveVideo(c echo.Context) error {
	playlistID, err := ownedID(c, "playlistId")
	if err != nil {
		return err
	}

	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}

	playlist, err := h.playlistUC.RemoveVideo(c.Request().Context(), playlistID, videoID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPlaylistView(playlist), "Video removed from playlist")
}
