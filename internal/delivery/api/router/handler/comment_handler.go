package handler

import (
	"log/slog"
	"net/http"

	"vidtube/internal/delivery/api/response"
	"vidtube/internal/domain/repository"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CommentHandlerParams holds dependencies for CommentHandler, injected by Fx.
type CommentHandlerParams struct {
	fx.In

	CommentUC usecase.CommentUsecase
	Logger    *slog.Logger
}

// CommentHandler holds dependencies for comment handlers.
type CommentHandler struct {
	commentUC usecase.CommentUsecase
	logger    *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler
func NewCommentHandler(params CommentHandlerParams) *CommentHandler {
	return &CommentHandler{commentUC: params.CommentUC, logger: params.Logger}
}

// ContentRequest is the body shared by comments and tweets.
type ContentRequest struct {
	Content string `json:"content" form:"content" validate:"required,notblank"`
}

// PageRequest holds paging query parameters.
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// ListComments handles the paged comment listing of a video.
func (h *CommentHandler) ListComments(c echo.Context) error {
	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}

	var req PageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	page, err := h.commentUC.ListComments(c.Request().Context(), videoID, repository.Page{Page: req.Page, Limit: req.Limit})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPageView(page, newCommentView), "Comments fetched successfully")
}

// AddComment handles adding a comment to a video.
func (h *CommentHandler) AddComment(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}

	var req ContentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.commentUC.AddComment(c.Request().Context(), user.ID, videoID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newCommentView(comment), "Comment added successfully")
}

// UpdateComment handles editing a comment.
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	commentID, err := ownedID(c, "commentId")
	if err != nil {
		return err
	}

	var req ContentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.commentUC.UpdateComment(c.Request().Context(), commentID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCommentView(comment), "Comment updated successfully")
}

// DeleteComment handles deleting a comment.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	commentID, err := ownedID(c, "commentId")
	if err != nil {
		return err
	}

	if err := h.commentUC.DeleteComment(c.Request().Context(), commentID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{}, "Comment deleted successfully")
}
