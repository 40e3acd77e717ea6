package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/streamhive/backend/internal/domain/entity"
	"github.com/streamhive/backend/internal/domain/repository"
)

type VideoRepository struct {
	pool *pgxpool.Pool
}

func NewVideoRepository(pool *pgxpool.Pool) *VideoRepository {
	return &VideoRepository{pool: pool}
}

const videoColumns = `id, owner_id, video_url, thumbnail_url, title, description,
	duration, views, is_published, created_at, updated_at`

func scanVideo(row pgx.Row) (*entity.Video, error) {
	v := &entity.Video{}
	err := row.Scan(&v.ID, &v.OwnerID, &v.VideoURL, &v.ThumbnailURL, &v.Title, &v.Description,
		&v.Duration, &v.Views, &v.IsPublished, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *VideoRepository) Create(ctx context.Context, v *entity.Video) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO videos (owner_id, video_url, thumbnail_url, title, description, duration, is_published)
		VALUES ($1, $2, $3, $4, $5, $6, true)
		RETURNING id, views, is_published, created_at, updated_at
	`, v.OwnerID, v.VideoURL, v.ThumbnailURL, v.Title, v.Description, v.Duration)
	return row.Scan(&v.ID, &v.Views, &v.IsPublished, &v.CreatedAt, &v.UpdatedAt)
}

func (r *VideoRepository) GetByID(ctx context.Context, id string) (*entity.Video, error) {
	return scanVideo(r.pool.QueryRow(ctx, `SELECT `+videoColumns+` FROM videos WHERE id = $1`, id))
}

var sortColumns = map[string]string{
	"createdAt": "created_at",
	"views":     "views",
	"duration":  "duration",
}

func (r *VideoRepository) List(ctx context.Context, p repository.ListVideosParams) ([]entity.Video, int64, error) {
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 10
	}
	if p.Page <= 0 {
		p.Page = 1
	}

	where := "WHERE 1=1"
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if p.OnlyPublished {
		where += " AND is_published"
	}
	if p.OwnerID != "" {
		where += " AND owner_id = " + arg(p.OwnerID)
	}
	if p.Query != "" {
		ph := arg("%" + p.Query + "%")
		where += " AND (title ILIKE " + ph + " OR description ILIKE " + ph + ")"
	}

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT count(*) FROM videos "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	col, ok := sortColumns[p.SortBy]
	if !ok {
		col = "created_at"
	}
	dir := "DESC"
	if p.SortAsc {
		dir = "ASC"
	}
	query := fmt.Sprintf("SELECT %s FROM videos %s ORDER BY %s %s LIMIT %s OFFSET %s",
		videoColumns, where, col, dir, arg(p.Limit), arg((p.Page-1)*p.Limit))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var videos []entity.Video
	for rows.Next() {
		v := entity.Video{}
		if err := rows.Scan(&v.ID, &v.OwnerID, &v.VideoURL, &v.ThumbnailURL, &v.Title, &v.Description,
			&v.Duration, &v.Views, &v.IsPublished, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, 0, err
		}
		videos = append(videos, v)
	}
	return videos, total, rows.Err()
}

func (r *VideoRepository) UpdateDetails(ctx context.Context, id, title, description, thumbnailURL string) (*entity.Video, error) {
	// Single guarded statement: a concurrently deleted video surfaces as
	// ErrNotFound instead of a nil dereference.
	return scanVideo(r.pool.QueryRow(ctx, `
		UPDATE videos
		SET title = $2, description = $3, thumbnail_url = $4, updated_at = now()
		WHERE id = $1
		RETURNING `+videoColumns, id, title, description, thumbnailURL))
}

func (r *VideoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *VideoRepository) IncrementViews(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `UPDATE videos SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *VideoRepository) TogglePublish(ctx context.Context, id string) (*entity.Video, error) {
	return scanVideo(r.pool.QueryRow(ctx, `
		UPDATE videos SET is_published = NOT is_published, updated_at = now()
		WHERE id = $1
		RETURNING `+videoColumns, id))
}

var _ repository.VideoRepository = (*VideoRepository)(nil)
