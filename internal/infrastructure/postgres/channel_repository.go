package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/streamhive/backend/internal/domain/entity"
	"github.com/streamhive/backend/internal/domain/repository"
)

// ChannelRepository holds the read-only aggregation queries. Counts and
// membership facts are derived from the subscription/like/comment tables
// on every read; nothing is denormalized.
type ChannelRepository struct {
	pool *pgxpool.Pool
}

func NewChannelRepository(pool *pgxpool.Pool) *ChannelRepository {
	return &ChannelRepository{pool: pool}
}

func (r *ChannelRepository) Profile(ctx context.Context, username, viewerID string) (*entity.ChannelProfile, error) {
	p := &entity.ChannelProfile{}
	err := r.pool.QueryRow(ctx, `
		SELECT u.id, u.username, u.full_name, u.email,
		       COALESCE(u.avatar_url, ''), COALESCE(u.cover_image_url, ''),
		       (SELECT count(*) FROM subscriptions s WHERE s.channel_id = u.id),
		       (SELECT count(*) FROM subscriptions s WHERE s.subscriber_id = u.id),
		       EXISTS (
		           SELECT 1 FROM subscriptions s
		           WHERE s.channel_id = u.id AND s.subscriber_id = NULLIF($2, '')::uuid
		       )
		FROM users u
		WHERE u.username = lower($1)
	`, username, viewerID).Scan(
		&p.ID, &p.Username, &p.FullName, &p.Email,
		&p.AvatarURL, &p.CoverImageURL,
		&p.SubscriberCount, &p.SubscribedToCount, &p.IsSubscribed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+videoColumns+` FROM videos
		WHERE owner_id = $1 AND is_published
		ORDER BY created_at DESC
	`, p.ID)
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

func (r *ChannelRepository) VideoDetail(ctx context.Context, videoID, viewerID string) (*entity.VideoDetail, error) {
	d := &entity.VideoDetail{}
	o := entity.OwnerInfo{}
	err := r.pool.QueryRow(ctx, `
		SELECT v.id, v.owner_id, v.video_url, v.thumbnail_url, v.title, v.description,
		       v.duration, v.views, v.is_published, v.created_at, v.updated_at,
		       o.id, o.username, o.full_name, COALESCE(o.avatar_url, ''),
		       (SELECT count(*) FROM likes l WHERE l.target_type = 'video' AND l.target_id = v.id),
		       EXISTS (
		           SELECT 1 FROM likes l
		           WHERE l.target_type = 'video' AND l.target_id = v.id
		             AND l.liked_by = NULLIF($2, '')::uuid
		       ),
		       (SELECT count(*) FROM subscriptions s WHERE s.channel_id = v.owner_id),
		       EXISTS (
		           SELECT 1 FROM subscriptions s
		           WHERE s.channel_id = v.owner_id AND s.subscriber_id = NULLIF($2, '')::uuid
		       )
		FROM videos v
		JOIN users o ON o.id = v.owner_id
		WHERE v.id = $1
	`, videoID, viewerID).Scan(
		&d.ID, &d.OwnerID, &d.VideoURL, &d.ThumbnailURL, &d.Title, &d.Description,
		&d.Duration, &d.Views, &d.IsPublished, &d.CreatedAt, &d.UpdatedAt,
		&o.ID, &o.Username, &o.FullName, &o.AvatarURL,
		&d.LikeCount, &d.ViewerHasLiked, &d.SubscriberCount, &d.ViewerIsSubscribed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	d.Owner = &o
	return d, nil
}

func (r *ChannelRepository) Stats(ctx context.Context, channelID string) (*entity.ChannelStats, error) {
	st := &entity.ChannelStats{}
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(v.views), 0),
		       COALESCE(SUM(lk.n), 0),
		       COALESCE(SUM(cm.n), 0),
		       COUNT(v.id),
		       COALESCE(SUM(v.duration), 0)
		FROM videos v
		LEFT JOIN LATERAL (
			SELECT count(*) AS n FROM likes l
			WHERE l.target_type = 'video' AND l.target_id = v.id
		) lk ON true
		LEFT JOIN LATERAL (
			SELECT count(*) AS n FROM comments c WHERE c.video_id = v.id
		) cm ON true
		WHERE v.owner_id = $1
	`, channelID).Scan(&st.TotalViews, &st.TotalLikes, &st.TotalComments, &st.TotalVideos, &st.TotalDuration)
	if err != nil {
		return nil, err
	}

	err = r.pool.QueryRow(ctx,
		`SELECT count(*) FROM subscriptions WHERE channel_id = $1`, channelID,
	).Scan(&st.TotalSubscribers)
	if err != nil {
		return nil, err
	}

	// A channel with no videos reports an average of zero rather than
	// dividing by zero.
	if st.TotalVideos > 0 {
		st.AvgSubscribersPerVideo = float64(st.TotalSubscribers) / float64(st.TotalVideos)
	}
	return st, nil
}

func (r *ChannelRepository) Subscribers(ctx context.Context, channelID string) ([]entity.OwnerInfo, error) {
	return r.queryOwners(ctx, `
		SELECT u.id, u.username, u.full_name, COALESCE(u.avatar_url, '')
		FROM subscriptions s
		JOIN users u ON u.id = s.subscriber_id
		WHERE s.channel_id = $1
		ORDER BY s.created_at DESC
	`, channelID)
}

func (r *ChannelRepository) SubscribedChannels(ctx context.Context, subscriberID string) ([]entity.OwnerInfo, error) {
	return r.queryOwners(ctx, `
		SELECT u.id, u.username, u.full_name, COALESCE(u.avatar_url, '')
		FROM subscriptions s
		JOIN users u ON u.id = s.channel_id
		WHERE s.subscriber_id = $1
		ORDER BY s.created_at DESC
	`, subscriberID)
}

func (r *ChannelRepository) queryOwners(ctx context.Context, query string, arg any) ([]entity.OwnerInfo, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	owners := []entity.OwnerInfo{}
	for rows.Next() {
		o := entity.OwnerInfo{}
		if err := rows.Scan(&o.ID, &o.Username, &o.FullName, &o.AvatarURL); err != nil {
			return nil, err
		}
		owners = append(owners, o)
	}
	return owners, rows.Err()
}

func (r *ChannelRepository) LikedVideos(ctx context.Context, userID string) ([]entity.Video, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT v.id, v.owner_id, v.video_url, v.thumbnail_url, v.title, v.description,
		       v.duration, v.views, v.is_published, v.created_at, v.updated_at,
		       o.id, o.username, o.full_name, COALESCE(o.avatar_url, '')
		FROM likes l
		JOIN videos v ON v.id = l.target_id
		JOIN users o ON o.id = v.owner_id
		WHERE l.liked_by = $1 AND l.target_type = 'video' AND v.is_published
		ORDER BY l.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	videos := []entity.Video{}
	for rows.Next() {
		v := entity.Video{}
		o := entity.OwnerInfo{}
		if err := rows.Scan(&v.ID, &v.OwnerID, &v.VideoURL, &v.ThumbnailURL, &v.Title, &v.Description,
			&v.Duration, &v.Views, &v.IsPublished, &v.CreatedAt, &v.UpdatedAt,
			&o.ID, &o.Username, &o.FullName, &o.AvatarURL); err != nil {
			return nil, err
		}
		v.Owner = &o
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

var _ repository.ChannelRepository = (*ChannelRepository)(nil)
