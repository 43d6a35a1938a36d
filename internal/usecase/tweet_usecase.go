package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// TweetUsecase defines the tweet operations.
type TweetUsecase interface {
	CreateTweet(ctx context.Context, ownerID uuid.UUID, content string) (*entity.Tweet, error)
	ListUserTweets(ctx context.Context, userID uuid.UUID) ([]*entity.Tweet, error)
	FindTweet(ctx context.Context, tweetID uuid.UUID) (*entity.Tweet, error)
	UpdateTweet(ctx context.Context, tweetID uuid.UUID, content string) (*entity.Tweet, error)
	DeleteTweet(ctx context.Context, tweetID uuid.UUID) error
}
