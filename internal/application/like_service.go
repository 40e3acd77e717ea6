package application

import (
	"context"
	"errors"

	"github.com/streamhive/backend/internal/domain/entity"
	"github.com/streamhive/backend/internal/domain/repository"
	"github.com/streamhive/backend/pkg/apperr"
)

// LikeService toggles likes across videos, comments and tweets.
type LikeService struct {
	Likes    repository.LikeRepository
	Videos   repository.VideoRepository
	Comments repository.CommentRepository
	Tweets   repository.TweetRepository
	Channels repository.ChannelRepository
}

func NewLikeService(likes repository.LikeRepository, videos repository.VideoRepository, comments repository.CommentRepository, tweets repository.TweetRepository, channels repository.ChannelRepository) *LikeService {
	return &LikeService{Likes: likes, Videos: videos, Comments: comments, Tweets: tweets, Channels: channels}
}

// Toggle flips the caller's like on a target. Returns true when the like
// exists after the call.
func (s *LikeService) Toggle(ctx context.Context, userID string, target entity.LikeTarget, targetID string) (bool, error) {
	if !target.Valid() {
		return false, apperr.Validation("invalid like target")
	}
	if err := s.targetExists(ctx, target, targetID); err != nil {
		return false, err
	}

	deleted, err := s.Likes.DeleteByTarget(ctx, userID, target, targetID)
	if err != nil {
		return false, apperr.Upstream("failed to toggle like", err)
	}
	if deleted {
		return false, nil
	}
	l := &entity.Like{LikedBy: userID, TargetType: target, TargetID: targetID}
	if err := s.Likes.Create(ctx, l); err != nil {
		// A concurrent toggle may have created the like already.
		if errors.Is(err, repository.ErrDuplicate) {
			return true, nil
		}
		return false, apperr.Upstream("failed to toggle like", err)
	}
	return true, nil
}

func (s *LikeService) targetExists(ctx context.Context, target entity.LikeTarget, targetID string) error {
	var err error
	var missing string
	switch target {
	case entity.LikeTargetVideo:
		_, err = s.Videos.GetByID(ctx, targetID)
		missing = "video not found"
	case entity.LikeTargetComment:
		_, err = s.Comments.GetByID(ctx, targetID)
		missing = "comment not found"
	case entity.LikeTargetTweet:
		_, err = s.Tweets.GetByID(ctx, targetID)
		missing = "tweet not found"
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound(missing)
		}
		return apperr.Upstream("failed to load like target", err)
	}
	return nil
}

// LikedVideos lists the published videos a user has liked.
func (s *LikeService) LikedVideos(ctx context.Context, userID string) ([]entity.Video, error) {
	out, err := s.Channels.LikedVideos(ctx, userID)
	if err != nil {
		return nil, apperr.Upstream("failed to list liked videos", err)
	}
	return out, nil
}
