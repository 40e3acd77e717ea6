package repository

import (
	"context"

	"github.com/streamhive/backend/internal/domain/entity"
)

// ListVideosParams narrows and pages the video listing.
type ListVideosParams struct {
	OwnerID       string // optional filter
	Query         string // optional title/description match (SQL fallback path)
	SortBy        string // createdAt | views | duration
	SortAsc       bool
	Page          int
	Limit         int
	OnlyPublished bool
}

type VideoRepository interface {
	Create(ctx context.Context, v *entity.Video) error
	GetByID(ctx context.Context, id string) (*entity.Video, error)
	List(ctx context.Context, p ListVideosParams) ([]entity.Video, int64, error)
	UpdateDetails(ctx context.Context, id, title, description, thumbnailURL string) (*entity.Video, error)
	Delete(ctx context.Context, id string) error
	// IncrementViews bumps the monotonic view counter atomically.
	IncrementViews(ctx context.Context, id string) error
	// TogglePublish flips is_published in a single statement and returns
	// the new state, so concurrent toggles each flip exactly once.
	TogglePublish(ctx context.Context, id string) (*entity.Video, error)
}
