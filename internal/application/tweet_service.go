package application

import (
	"context"
	"errors"

	"github.com/streamhive/backend/internal/domain/entity"
	"github.com/streamhive/backend/internal/domain/repository"
	"github.com/streamhive/backend/pkg/apperr"
)

// TweetService manages short text posts attached to a channel.
type TweetService struct {
	Tweets repository.TweetRepository
	Users  repository.UserRepository
}

func NewTweetService(tweets repository.TweetRepository, users repository.UserRepository) *TweetService {
	return &TweetService{Tweets: tweets, Users: users}
}

func (s *TweetService) Create(ctx context.Context, ownerID, content string) (*entity.Tweet, error) {
	t := &entity.Tweet{OwnerID: ownerID, Content: content}
	if err := s.Tweets.Create(ctx, t); err != nil {
		return nil, apperr.Upstream("failed to create tweet", err)
	}
	return t, nil
}

func (s *TweetService) ListByOwner(ctx context.Context, ownerID string) ([]entity.Tweet, error) {
	if _, err := s.Users.GetByID(ctx, ownerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Upstream("failed to load user", err)
	}
	out, err := s.Tweets.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperr.Upstream("failed to list tweets", err)
	}
	return out, nil
}

func (s *TweetService) Update(ctx context.Context, tweetID, callerID, content string) (*entity.Tweet, error) {
	t, err := s.Tweets.GetByID(ctx, tweetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("tweet not found")
		}
		return nil, apperr.Upstream("failed to load tweet", err)
	}
	if t.OwnerID != callerID {
		return nil, apperr.Unauthorized("only the author can update this tweet")
	}
	updated, err := s.Tweets.UpdateContent(ctx, tweetID, content)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("tweet not found")
		}
		return nil, apperr.Upstream("failed to update tweet", err)
	}
	return updated, nil
}

func (s *TweetService) Delete(ctx context.Context, tweetID, callerID string) error {
	t, err := s.Tweets.GetByID(ctx, tweetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("tweet not found")
		}
		return apperr.Upstream("failed to load tweet", err)
	}
	if t.OwnerID != callerID {
		return apperr.Unauthorized("only the author can delete this tweet")
	}
	if err := s.Tweets.Delete(ctx, tweetID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("tweet not found")
		}
		return apperr.Upstream("failed to delete tweet", err)
	}
	return nil
}
