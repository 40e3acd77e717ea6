package repository

import (
	"context"

	"github.com/streamhive/backend/internal/domain/entity"
)

type SubscriptionRepository interface {
	Get(ctx context.Context, subscriberID, channelID string) (*entity.Subscription, error)
	Create(ctx context.Context, subscriberID, channelID string) (*entity.Subscription, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, subscriberID, channelID string) (bool, error)
}
