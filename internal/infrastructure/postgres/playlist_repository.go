package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/streamhive/backend/internal/domain/entity"
	"github.com/streamhive/backend/internal/domain/repository"
)

type PlaylistRepository struct {
	pool *pgxpool.Pool
}

func NewPlaylistRepository(pool *pgxpool.Pool) *PlaylistRepository {
	return &PlaylistRepository{pool: pool}
}

func scanPlaylist(row pgx.Row) (*entity.Playlist, error) {
	p := &entity.Playlist{}
	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PlaylistRepository) Create(ctx context.Context, p *entity.Playlist) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO playlists (owner_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, p.OwnerID, p.Name, p.Description).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PlaylistRepository) GetByID(ctx context.Context, id string) (*entity.Playlist, error) {
	p, err := scanPlaylist(r.pool.QueryRow(ctx, `
		SELECT id, owner_id, name, description, created_at, updated_at
		FROM playlists WHERE id = $1
	`, id))
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+prefixedVideoColumns("v")+`
		FROM playlist_videos pv
		JOIN videos v ON v.id = pv.video_id
		WHERE pv.playlist_id = $1
		ORDER BY pv.added_at ASC
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	p.Videos = []entity.Video{}
	for rows.Next() {
		v := entity.Video{}
		if err := rows.Scan(&v.ID, &v.OwnerID, &v.VideoURL, &v.ThumbnailURL, &v.Title, &v.Description,
			&v.Duration, &v.Views, &v.IsPublished, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		p.Videos = append(p.Videos, v)
	}
	return p, rows.Err()
}

func (r *PlaylistRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Playlist, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, owner_id, name, description, created_at, updated_at
		FROM playlists WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	playlists := []entity.Playlist{}
	for rows.Next() {
		p := entity.Playlist{}
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		playlists = append(playlists, p)
	}
	return playlists, rows.Err()
}

func (r *PlaylistRepository) Update(ctx context.Context, id, name, description string) (*entity.Playlist, error) {
	return scanPlaylist(r.pool.QueryRow(ctx, `
		UPDATE playlists SET name = $2, description = $3, updated_at = now()
		WHERE id = $1
		RETURNING id, owner_id, name, description, created_at, updated_at
	`, id, name, description))
}

func (r *PlaylistRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO playlist_videos (playlist_id, video_id)
		VALUES ($1, $2)
		ON CONFLICT (playlist_id, video_id) DO NOTHING
	`, playlistID, videoID)
	return err
}

func (r *PlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID string) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM playlist_videos WHERE playlist_id = $1 AND video_id = $2
	`, playlistID, videoID)
	return err
}

func prefixedVideoColumns(alias string) string {
	return alias + `.id, ` + alias + `.owner_id, ` + alias + `.video_url, ` + alias + `.thumbnail_url, ` +
		alias + `.title, ` + alias + `.description, ` + alias + `.duration, ` + alias + `.views, ` +
		alias + `.is_published, ` + alias + `.created_at, ` + alias + `.updated_at`
}

var _ repository.PlaylistRepository = (*PlaylistRepository)(nil)
