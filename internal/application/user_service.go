package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/streamhive/backend/internal/domain/entity"
	"github.com/streamhive/backend/internal/domain/repository"
	"github.com/streamhive/backend/internal/media"
	"github.com/streamhive/backend/pkg/apperr"
)

// watchHistoryCap bounds the per-user watch history; appending beyond the
// cap drops the oldest entries.
const watchHistoryCap = 10

// UserService covers profile reads/updates, the channel profile
// aggregation and the bounded watch history.
type UserService struct {
	Users    repository.UserRepository
	Videos   repository.VideoRepository
	Channels repository.ChannelRepository
	Media    *media.Manager
	Logger   *logrus.Logger
}

func NewUserService(users repository.UserRepository, videos repository.VideoRepository, channels repository.ChannelRepository, m *media.Manager, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, Videos: videos, Channels: channels, Media: m, Logger: logger}
}

func (s *UserService) GetByID(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Upstream("failed to load user", err)
	}
	return u, nil
}

func (s *UserService) UpdateAccount(ctx context.Context, userID, fullName, email string) (*entity.User, error) {
	u, err := s.Users.UpdateAccount(ctx, userID, fullName, email)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, apperr.NotFound("user not found")
		case errors.Is(err, repository.ErrDuplicate):
			return nil, apperr.Conflict("email already in use")
		}
		return nil, apperr.Upstream("failed to update account", err)
	}
	return u, nil
}

// UpdateAvatar uploads the replacement first, then releases the previous
// reference. Exactly one avatar reference remains attached afterwards.
func (s *UserService) UpdateAvatar(ctx context.Context, userID string, file *Upload) (*entity.User, error) {
	return s.replaceImage(ctx, userID, file, media.KindAvatar)
}

func (s *UserService) UpdateCoverImage(ctx context.Context, userID string, file *Upload) (*entity.User, error) {
	return s.replaceImage(ctx, userID, file, media.KindCover)
}

func (s *UserService) replaceImage(ctx context.Context, userID string, file *Upload, kind media.Kind) (*entity.User, error) {
	if file == nil {
		return nil, apperr.Validation("image file is missing")
	}
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	oldURL := u.AvatarURL
	if kind == media.KindCover {
		oldURL = u.CoverImageURL
	}

	url, err := s.Media.Replace(ctx, kind, userID, file.Filename, file.ContentType, file.Reader, oldURL)
	if err != nil {
		return nil, apperr.Upstream("failed to upload image", err)
	}

	if kind == media.KindCover {
		u, err = s.Users.UpdateCoverImage(ctx, userID, url)
	} else {
		u, err = s.Users.UpdateAvatar(ctx, userID, url)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Upstream("failed to update image reference", err)
	}
	return u, nil
}

// ChannelProfile aggregates subscription edges in both directions for a
// channel, relative to an optional viewer.
func (s *UserService) ChannelProfile(ctx context.Context, username, viewerID string) (*entity.ChannelProfile, error) {
	p, err := s.Channels.Profile(ctx, username, viewerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("channel does not exist")
		}
		return nil, apperr.Upstream("failed to load channel profile", err)
	}
	return p, nil
}

func (s *UserService) WatchHistory(ctx context.Context, userID string) ([]entity.Video, error) {
	history, err := s.Users.WatchHistory(ctx, userID)
	if err != nil {
		return nil, apperr.Upstream("failed to load watch history", err)
	}
	return history, nil
}

// AddToWatchHistory appends a video at the most-recent position and trims
// the list back to the cap, dropping the oldest entries.
func (s *UserService) AddToWatchHistory(ctx context.Context, userID, videoID string) error {
	if _, err := s.Videos.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("video not found")
		}
		return apperr.Upstream("failed to load video", err)
	}
	if err := s.Users.AppendWatchHistory(ctx, userID, videoID); err != nil {
		return apperr.Upstream("failed to record watch history", err)
	}
	if err := s.Users.TrimWatchHistory(ctx, userID, watchHistoryCap); err != nil {
		return apperr.Upstream("failed to trim watch history", err)
	}
	return nil
}

func (s *UserService) ClearWatchHistory(ctx context.Context, userID string) error {
	if err := s.Users.ClearWatchHistory(ctx, userID); err != nil {
		return apperr.Upstream("failed to clear watch history", err)
	}
	return nil
}
