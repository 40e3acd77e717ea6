package repository

import (
	"context"

	"github.com/streamhive/backend/internal/domain/entity"
)

type CommentRepository interface {
	Create(ctx context.Context, c *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	ListByVideo(ctx context.Context, videoID string, page, limit int) ([]entity.Comment, int64, error)
	UpdateContent(ctx context.Context, id, content string) (*entity.Comment, error)
	Delete(ctx context.Context, id string) error
}

type LikeRepository interface {
	Create(ctx context.Context, l *entity.Like) error
	// DeleteByTarget removes the caller's like on the target if present and
	// reports whether a row was deleted. Together with Create this gives
	// toggle semantics without a boolean flag.
	DeleteByTarget(ctx context.Context, likedBy string, target entity.LikeTarget, targetID string) (bool, error)
}

type TweetRepository interface {
	Create(ctx context.Context, t *entity.Tweet) error
	GetByID(ctx context.Context, id string) (*entity.Tweet, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Tweet, error)
	UpdateContent(ctx context.Context, id, content string) (*entity.Tweet, error)
	Delete(ctx context.Context, id string) error
}
