package application

import (
	"context"
	"errors"

	"github.com/streamhive/backend/internal/domain/entity"
	"github.com/streamhive/backend/internal/domain/repository"
	"github.com/streamhive/backend/pkg/apperr"
)

// DashboardService serves the channel owner's aggregate stats and the
// full video list including unpublished entries.
type DashboardService struct {
	Channels repository.ChannelRepository
	Videos   repository.VideoRepository
	Users    repository.UserRepository
}

func NewDashboardService(channels repository.ChannelRepository, videos repository.VideoRepository, users repository.UserRepository) *DashboardService {
	return &DashboardService{Channels: channels, Videos: videos, Users: users}
}

func (s *DashboardService) Stats(ctx context.Context, channelID string) (*entity.ChannelStats, error) {
	if _, err := s.Users.GetByID(ctx, channelID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("channel does not exist")
		}
		return nil, apperr.Upstream("failed to load channel", err)
	}
	stats, err := s.Channels.Stats(ctx, channelID)
	if err != nil {
		return nil, apperr.Upstream("failed to aggregate channel stats", err)
	}
	return stats, nil
}

// Videos lists every video the channel owns, published or not.
func (s *DashboardService) ChannelVideos(ctx context.Context, channelID string, page, limit int) ([]entity.Video, int64, error) {
	videos, total, err := s.Videos.List(ctx, repository.ListVideosParams{
		OwnerID:       channelID,
		Page:          page,
		Limit:         limit,
		OnlyPublished: false,
	})
	if err != nil {
		return nil, 0, apperr.Upstream("failed to list channel videos", err)
	}
	return videos, total, nil
}
