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

// TweetHandlerParams holds dependencies for TweetHandler, injected by Fx.
type TweetHandlerParams struct {
	fx.In

	TweetUC usecase.TweetUsecase
	Logger  *slog.Logger
}

// TweetHandler holds dependencies for tweet handlers.
type TweetHandler struct {
	tweetUC usecase.TweetUsecase
	logger  *slog.Logger
}

// NewTweetHandler is the constructor for TweetHandler
func NewTweetHandler(params TweetHandlerParams) *TweetHandler {
	return &TweetHandler{tweetUC: params.TweetUC, logger: params.Logger}
}

func (h *TweetHandler) CreateTweet(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	var req ContentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	tweet, err := h.tweetUC.CreateTweet(c.Request().Context(), user.ID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newTweetView(tweet), "Tweet created successfully")
}

func (h *TweetHandler) ListUserTweets(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	tweets, err := h.tweetUC.ListUserTweets(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mapSlice(tweets, newTweetView), "Tweets fetched successfully")
}

func (h *TweetHandler) UpdateTweet(c echo.Context) error {
	tweetID, err := ownedID(c, "tweetId")
	if err != nil {
		return err
	}

	var req ContentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	tweet, err := h.tweetUC.UpdateTweet(c.Request().Context(), tweetID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTweetView(tweet), "Tweet updated successfully")
}

func (h *TweetHandler) DeleteTweet(c echo.Context) error {
	tweetID, err := ownedID(c, "tweetId")
	if err != nil {
		return err
	}

	if err := h.tweetUC.DeleteTweet(c.Request().Context(), tweetID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{}, "Tweet deleted successfully")
}
