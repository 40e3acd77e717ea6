package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/streamhive/backend/internal/domain/entity"
	"github.com/streamhive/backend/internal/domain/repository"
)

type LikeRepository struct {
	pool *pgxpool.Pool
}

func NewLikeRepository(pool *pgxpool.Pool) *LikeRepository {
	return &LikeRepository{pool: pool}
}

func (r *LikeRepository) Create(ctx context.Context, l *entity.Like) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO likes (liked_by, target_type, target_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, l.LikedBy, l.TargetType, l.TargetID).Scan(&l.ID, &l.CreatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return repository.ErrDuplicate
	}
	return err
}

func (r *LikeRepository) DeleteByTarget(ctx context.Context, likedBy string, target entity.LikeTarget, targetID string) (bool, error) {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM likes WHERE liked_by = $1 AND target_type = $2 AND target_id = $3
	`, likedBy, target, targetID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

var _ repository.LikeRepository = (*LikeRepository)(nil)
