package repository

import (
	"context"

	"github.com/streamhive/backend/internal/domain/entity"
)

// UserRepository defines user-related database operations, including the
// refresh-token pointer and the bounded watch-history list.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)
	UpdateAccount(ctx context.Context, id, fullName, email string) (*entity.User, error)
	UpdateAvatar(ctx context.Context, id, url string) (*entity.User, error)
	UpdateCoverImage(ctx context.Context, id, url string) (*entity.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error

	// SetRefreshToken overwrites the single current refresh token.
	// An empty token clears it (logout).
	SetRefreshToken(ctx context.Context, id, token string) error

	AppendWatchHistory(ctx context.Context, userID, videoID string) error
	TrimWatchHistory(ctx context.Context, userID string, keep int) error
	ClearWatchHistory(ctx context.Context, userID string) error
	WatchHistory(ctx context.Context, userID string) ([]entity.Video, error)
}
