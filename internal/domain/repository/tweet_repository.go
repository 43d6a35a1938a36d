package repository

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// TweetRepository stores short text posts.
type TweetRepository interface {
	Collection[*entity.Tweet]

	// ListByOwner returns every tweet of a user, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Tweet, error)
}
