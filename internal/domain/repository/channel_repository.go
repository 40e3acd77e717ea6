package repository

import (
	"context"

	"github.com/streamhive/backend/internal/domain/entity"
)

// ChannelRepository computes read-only derived views by joining the
// user/video/subscription/like/comment tables. No denormalized counters.
type ChannelRepository interface {
	// Profile resolves a channel by case-insensitive username relative to
	// an optional viewer. Returns ErrNotFound when no user matches.
	Profile(ctx context.Context, username, viewerID string) (*entity.ChannelProfile, error)
	// VideoDetail enriches a video with like/subscription facts relative
	// to the viewer.
	VideoDetail(ctx context.Context, videoID, viewerID string) (*entity.VideoDetail, error)
	// Stats aggregates views/likes/comments/duration across the channel's
	// videos. A channel with zero videos yields zeroed stats.
	Stats(ctx context.Context, channelID string) (*entity.ChannelStats, error)
	Subscribers(ctx context.Context, channelID string) ([]entity.OwnerInfo, error)
	SubscribedChannels(ctx context.Context, subscriberID string) ([]entity.OwnerInfo, error)
	LikedVideos(ctx context.Context, userID string) ([]entity.Video, error)
}
