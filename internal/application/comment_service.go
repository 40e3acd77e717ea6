package application

import (
	"context"
	"errors"

	"github.com/streamhive/backend/internal/domain/entity"
	"github.com/streamhive/backend/internal/domain/repository"
	"github.com/streamhive/backend/pkg/apperr"
)

// CommentService manages comments under videos. Only the author may edit
// or delete a comment.
type CommentService struct {
	Comments repository.CommentRepository
	Videos   repository.VideoRepository
}

func NewCommentService(comments repository.CommentRepository, videos repository.VideoRepository) *CommentService {
	return &CommentService{Comments: comments, Videos: videos}
}

func (s *CommentService) Add(ctx context.Context, videoID, ownerID, content string) (*entity.Comment, error) {
	if _, err := s.Videos.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("video not found")
		}
		return nil, apperr.Upstream("failed to load video", err)
	}
	c := &entity.Comment{VideoID: videoID, OwnerID: ownerID, Content: content}
	if err := s.Comments.Create(ctx, c); err != nil {
		return nil, apperr.Upstream("failed to add comment", err)
	}
	return c, nil
}

func (s *CommentService) ListByVideo(ctx context.Context, videoID string, page, limit int) ([]entity.Comment, int64, error) {
	if _, err := s.Videos.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, 0, apperr.NotFound("video not found")
		}
		return nil, 0, apperr.Upstream("failed to load video", err)
	}
	comments, total, err := s.Comments.ListByVideo(ctx, videoID, page, limit)
	if err != nil {
		return nil, 0, apperr.Upstream("failed to list comments", err)
	}
	return comments, total, nil
}

func (s *CommentService) Update(ctx context.Context, commentID, callerID, content string) (*entity.Comment, error) {
	c, err := s.Comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("comment not found")
		}
		return nil, apperr.Upstream("failed to load comment", err)
	}
	if c.OwnerID != callerID {
		return nil, apperr.Unauthorized("only the author can update this comment")
	}
	updated, err := s.Comments.UpdateContent(ctx, commentID, content)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("comment not found")
		}
		return nil, apperr.Upstream("failed to update comment", err)
	}
	return updated, nil
}

func (s *CommentService) Delete(ctx context.Context, commentID, callerID string) error {
	c, err := s.Comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("comment not found")
		}
		return apperr.Upstream("failed to load comment", err)
	}
	if c.OwnerID != callerID {
		return apperr.Unauthorized("only the author can delete this comment")
	}
	if err := s.Comments.Delete(ctx, commentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("comment not found")
		}
		return apperr.Upstream("failed to delete comment", err)
	}
	return nil
}
