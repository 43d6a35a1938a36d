package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tweetService implements the TweetUsecase interface.
type tweetService struct {
	tweetRepo repository.TweetRepository
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// TweetServiceParams holds dependencies for TweetService, injected by Fx.
type TweetServiceParams struct {
	fx.In

	TweetRepo repository.TweetRepository
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewTweetService is the constructor for tweetService.
func NewTweetService(params TweetServiceParams) usecase.TweetUsecase {
	return &tweetService{
		tweetRepo: params.TweetRepo,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (srv *tweetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *tweetService) CreateTweet(ctx context.Context, ownerID uuid.UUID, content string) (*entity.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("content is required"), "create tweet")
	}

	tweet := &entity.Tweet{Content: content, OwnerID: ownerID}
	if err := srv.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, errors.Wrap(err, "failed to create tweet")
	}

	srv.log(ctx).Debug("Tweet created", slog.Any("tweet_id", tweet.ID))

	return tweet, nil
}

// ListUserTweets returns the tweets of an existing user, newest first.
func (srv *tweetService) ListUserTweets(ctx context.Context, userID uuid.UUID) ([]*entity.Tweet, error) {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		return nil, mapUserErr(err)
	}

	tweets, err := srv.tweetRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tweets")
	}

	return tweets, nil
}

func (srv *tweetService) FindTweet(ctx context.Context, tweetID uuid.UUID) (*entity.Tweet, error) {
	tweet, err := srv.tweetRepo.FindByID(ctx, tweetID)
	if err != nil {
		return nil, mapResourceErr(err, "tweet")
	}

	return tweet, nil
}

func (srv *tweetService) UpdateTweet(ctx context.Context, tweetID uuid.UUID, content string) (*entity.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("content is required"), "update tweet")
	}

	tweet, err := srv.tweetRepo.FindByIDAndUpdate(ctx, tweetID, func(t *entity.Tweet) error {
		t.Content = content

		return nil
	})
	if err != nil {
		return nil, mapResourceErr(err, "tweet")
	}

	return tweet, nil
}

func (srv *tweetService) DeleteTweet(ctx context.Context, tweetID uuid.UUID) error {
	if _, err := srv.tweetRepo.FindByIDAndDelete(ctx, tweetID); err != nil {
		return mapResourceErr(err, "tweet")
	}

	return nil
}
