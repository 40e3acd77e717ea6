package application

import (
	"context"
	"errors"

	"github.com/streamhive/backend/internal/domain/entity"
	"github.com/streamhive/backend/internal/domain/repository"
	"github.com/streamhive/backend/pkg/apperr"
)

// SubscriptionService toggles and queries the subscriber graph.
type SubscriptionService struct {
	Subs     repository.SubscriptionRepository
	Users    repository.UserRepository
	Channels repository.ChannelRepository
}

func NewSubscriptionService(subs repository.SubscriptionRepository, users repository.UserRepository, channels repository.ChannelRepository) *SubscriptionService {
	return &SubscriptionService{Subs: subs, Users: users, Channels: channels}
}

// Toggle subscribes when no edge exists and unsubscribes when one does.
// Returns true when the caller is subscribed after the call.
func (s *SubscriptionService) Toggle(ctx context.Context, subscriberID, channelID string) (bool, error) {
	if subscriberID == channelID {
		return false, apperr.Validation("cannot subscribe to your own channel")
	}
	if _, err := s.Users.GetByID(ctx, channelID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, apperr.NotFound("channel does not exist")
		}
		return false, apperr.Upstream("failed to load channel", err)
	}

	existing, err := s.Subs.Get(ctx, subscriberID, channelID)
	switch {
	case err == nil:
		if err := s.Subs.Delete(ctx, existing.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return false, apperr.Upstream("failed to unsubscribe", err)
		}
		return false, nil
	case errors.Is(err, repository.ErrNotFound):
		if _, err := s.Subs.Create(ctx, subscriberID, channelID); err != nil {
			// A concurrent toggle may have created the edge already.
			if errors.Is(err, repository.ErrDuplicate) {
				return true, nil
			}
			return false, apperr.Upstream("failed to subscribe", err)
		}
		return true, nil
	default:
		return false, apperr.Upstream("failed to check subscription", err)
	}
}

func (s *SubscriptionService) Status(ctx context.Context, subscriberID, channelID string) (bool, error) {
	ok, err := s.Subs.Exists(ctx, subscriberID, channelID)
	if err != nil {
		return false, apperr.Upstream("failed to check subscription", err)
	}
	return ok, nil
}

// Subscribers lists the users subscribed to a channel.
func (s *SubscriptionService) Subscribers(ctx context.Context, channelID string) ([]entity.OwnerInfo, error) {
	if _, err := s.Users.GetByID(ctx, channelID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("channel does not exist")
		}
		return nil, apperr.Upstream("failed to load channel", err)
	}
	out, err := s.Channels.Subscribers(ctx, channelID)
	if err != nil {
		return nil, apperr.Upstream("failed to list subscribers", err)
	}
	return out, nil
}

// SubscribedChannels lists the channels a user subscribes to.
func (s *SubscriptionService) SubscribedChannels(ctx context.Context, subscriberID string) ([]entity.OwnerInfo, error) {
	out, err := s.Channels.SubscribedChannels(ctx, subscriberID)
	if err != nil {
		return nil, apperr.Upstream("failed to list subscribed channels", err)
	}
	return out, nil
}
