package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/streamhive/backend/internal/domain/entity"
	"github.com/streamhive/backend/internal/domain/repository"
	"github.com/streamhive/backend/internal/media"
	"github.com/streamhive/backend/pkg/apperr"
)

// VideoService owns the video lifecycle: publish with media upload,
// viewer-relative detail reads, listing/search, updates and the cascading
// delete that releases storage objects.
type VideoService struct {
	Videos   repository.VideoRepository
	Channels repository.ChannelRepository
	Media    *media.Manager
	Logger   *logrus.Logger

	ES      *elasticsearch.Client
	ESIndex string
}

func NewVideoService(videos repository.VideoRepository, channels repository.ChannelRepository, m *media.Manager, logger *logrus.Logger, es *elasticsearch.Client, esIndex string) *VideoService {
	return &VideoService{Videos: videos, Channels: channels, Media: m, Logger: logger, ES: es, ESIndex: esIndex}
}

type PublishVideoInput struct {
	OwnerID     string
	Title       string
	Description string
	Duration    float64
	VideoFile   *Upload
	Thumbnail   *Upload
}

func (s *VideoService) Publish(ctx context.Context, in PublishVideoInput) (*entity.Video, error) {
	if in.VideoFile == nil {
		return nil, apperr.Validation("video file is missing")
	}
	if in.Thumbnail == nil {
		return nil, apperr.Validation("thumbnail file is missing")
	}

	videoURL, err := s.Media.AttachNew(ctx, media.KindVideo, in.OwnerID, in.VideoFile.Filename, in.VideoFile.ContentType, in.VideoFile.Reader)
	if err != nil {
		return nil, apperr.Upstream("failed to upload video", err)
	}
	thumbURL, err := s.Media.AttachNew(ctx, media.KindThumbnail, in.OwnerID, in.Thumbnail.Filename, in.Thumbnail.ContentType, in.Thumbnail.Reader)
	if err != nil {
		// The video object is already stored; reclaim it rather than leak.
		s.Media.Release(ctx, videoURL)
		return nil, apperr.Upstream("failed to upload thumbnail", err)
	}

	v := &entity.Video{
		OwnerID:      in.OwnerID,
		VideoURL:     videoURL,
		ThumbnailURL: thumbURL,
		Title:        in.Title,
		Description:  in.Description,
		Duration:     in.Duration,
	}
	if err := s.Videos.Create(ctx, v); err != nil {
		s.Media.Release(ctx, videoURL)
		s.Media.Release(ctx, thumbURL)
		return nil, apperr.Upstream("failed to create video", err)
	}

	s.indexVideo(ctx, v)
	return v, nil
}

// Get returns the viewer-relative detail view. Unpublished videos are
// visible to their owner only. Each successful fetch bumps the view count.
func (s *VideoService) Get(ctx context.Context, videoID, viewerID string) (*entity.VideoDetail, error) {
	d, err := s.Channels.VideoDetail(ctx, videoID, viewerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("video not found")
		}
		return nil, apperr.Upstream("failed to load video", err)
	}
	if !d.IsPublished && d.OwnerID != viewerID {
		return nil, apperr.NotFound("video not found")
	}
	if err := s.Videos.IncrementViews(ctx, videoID); err == nil {
		d.Views++
	}
	return d, nil
}

func (s *VideoService) List(ctx context.Context, p repository.ListVideosParams) ([]entity.Video, int64, error) {
	if p.Query != "" && s.ES != nil && s.ESIndex != "" {
		videos, err := s.searchVideos(ctx, p.Query, p.Limit)
		if err == nil {
			return videos, int64(len(videos)), nil
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("es search failed, falling back to sql")
		}
	}
	videos, total, err := s.Videos.List(ctx, p)
	if err != nil {
		return nil, 0, apperr.Upstream("failed to list videos", err)
	}
	return videos, total, nil
}

type UpdateVideoInput struct {
	VideoID     string
	CallerID    string
	Title       string
	Description string
	Thumbnail   *Upload // optional replacement
}

func (s *VideoService) Update(ctx context.Context, in UpdateVideoInput) (*entity.Video, error) {
	v, err := s.Videos.GetByID(ctx, in.VideoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("video not found")
		}
		return nil, apperr.Upstream("failed to load video", err)
	}
	if v.OwnerID != in.CallerID {
		return nil, apperr.Unauthorized("only the owner can update this video")
	}

	thumbURL := v.ThumbnailURL
	if in.Thumbnail != nil {
		thumbURL, err = s.Media.Replace(ctx, media.KindThumbnail, v.OwnerID, in.Thumbnail.Filename, in.Thumbnail.ContentType, in.Thumbnail.Reader, v.ThumbnailURL)
		if err != nil {
			return nil, apperr.Upstream("failed to upload thumbnail", err)
		}
	}

	updated, err := s.Videos.UpdateDetails(ctx, in.VideoID, in.Title, in.Description, thumbURL)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("video not found")
		}
		return nil, apperr.Upstream("failed to update video", err)
	}

	s.indexVideo(ctx, updated)
	return updated, nil
}

// Delete removes the record first, then releases both storage objects.
// Release failures are logged inside the media manager, not propagated.
func (s *VideoService) Delete(ctx context.Context, videoID, callerID string) error {
	v, err := s.Videos.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("video not found")
		}
		return apperr.Upstream("failed to load video", err)
	}
	if v.OwnerID != callerID {
		return apperr.Unauthorized("only the owner can delete this video")
	}

	if err := s.Videos.Delete(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("video not found")
		}
		return apperr.Upstream("failed to delete video", err)
	}

	s.Media.Release(ctx, v.VideoURL)
	s.Media.Release(ctx, v.ThumbnailURL)
	s.removeFromIndex(ctx, videoID)
	return nil
}

func (s *VideoService) TogglePublish(ctx context.Context, videoID, callerID string) (*entity.Video, error) {
	v, err := s.Videos.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("video not found")
		}
		return nil, apperr.Upstream("failed to load video", err)
	}
	if v.OwnerID != callerID {
		return nil, apperr.Unauthorized("only the owner can change publish status")
	}

	toggled, err := s.Videos.TogglePublish(ctx, videoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("video not found")
		}
		return nil, apperr.Upstream("failed to toggle publish status", err)
	}

	if toggled.IsPublished {
		s.indexVideo(ctx, toggled)
	} else {
		s.removeFromIndex(ctx, videoID)
	}
	return toggled, nil
}

// indexVideo mirrors published videos into Elasticsearch, best effort.
func (s *VideoService) indexVideo(ctx context.Context, v *entity.Video) {
	if s.ES == nil || s.ESIndex == "" || !v.IsPublished {
		return
	}
	b, _ := json.Marshal(v)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: v.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("video_id", v.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("video_id", v.ID).Warn("es index response error")
	}
}

func (s *VideoService) removeFromIndex(ctx context.Context, videoID string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: videoID}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("video_id", videoID).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// searchVideos runs a multi_match over title and description.
func (s *VideoService) searchVideos(ctx context.Context, q string, size int) ([]entity.Video, error) {
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "description"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source entity.Video `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]entity.Video, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
