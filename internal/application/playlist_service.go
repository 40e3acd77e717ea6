package application

import (
	"context"
	"errors"

	"github.com/streamhive/backend/internal/domain/entity"
	"github.com/streamhive/backend/internal/domain/repository"
	"github.com/streamhive/backend/pkg/apperr"
)

// PlaylistService manages playlists and their video membership. Mutations
// are restricted to the playlist owner.
type PlaylistService struct {
	Playlists repository.PlaylistRepository
	Videos    repository.VideoRepository
}

func NewPlaylistService(playlists repository.PlaylistRepository, videos repository.VideoRepository) *PlaylistService {
	return &PlaylistService{Playlists: playlists, Videos: videos}
}

func (s *PlaylistService) Create(ctx context.Context, ownerID, name, description string) (*entity.Playlist, error) {
	p := &entity.Playlist{OwnerID: ownerID, Name: name, Description: description}
	if err := s.Playlists.Create(ctx, p); err != nil {
		return nil, apperr.Upstream("failed to create playlist", err)
	}
	return p, nil
}

// Get loads a playlist with its videos in insertion order.
func (s *PlaylistService) Get(ctx context.Context, playlistID string) (*entity.Playlist, error) {
	p, err := s.Playlists.GetByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("playlist not found")
		}
		return nil, apperr.Upstream("failed to load playlist", err)
	}
	return p, nil
}

func (s *PlaylistService) ListByOwner(ctx context.Context, ownerID string) ([]entity.Playlist, error) {
	out, err := s.Playlists.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperr.Upstream("failed to list playlists", err)
	}
	return out, nil
}

func (s *PlaylistService) Update(ctx context.Context, playlistID, callerID, name, description string) (*entity.Playlist, error) {
	if err := s.requireOwner(ctx, playlistID, callerID); err != nil {
		return nil, err
	}
	p, err := s.Playlists.Update(ctx, playlistID, name, description)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("playlist not found")
		}
		return nil, apperr.Upstream("failed to update playlist", err)
	}
	return p, nil
}

func (s *PlaylistService) Delete(ctx context.Context, playlistID, callerID string) error {
	if err := s.requireOwner(ctx, playlistID, callerID); err != nil {
		return err
	}
	if err := s.Playlists.Delete(ctx, playlistID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("playlist not found")
		}
		return apperr.Upstream("failed to delete playlist", err)
	}
	return nil
}

// AddVideo has set semantics: adding an already-present video succeeds
// without duplicating it.
func (s *PlaylistService) AddVideo(ctx context.Context, playlistID, videoID, callerID string) (*entity.Playlist, error) {
	if err := s.requireOwner(ctx, playlistID, callerID); err != nil {
		return nil, err
	}
	if _, err := s.Videos.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("video not found")
		}
		return nil, apperr.Upstream("failed to load video", err)
	}
	if err := s.Playlists.AddVideo(ctx, playlistID, videoID); err != nil {
		return nil, apperr.Upstream("failed to add video to playlist", err)
	}
	return s.Get(ctx, playlistID)
}

func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistID, videoID, callerID string) (*entity.Playlist, error) {
	if err := s.requireOwner(ctx, playlistID, callerID); err != nil {
		return nil, err
	}
	if err := s.Playlists.RemoveVideo(ctx, playlistID, videoID); err != nil {
		return nil, apperr.Upstream("failed to remove video from playlist", err)
	}
	return s.Get(ctx, playlistID)
}

func (s *PlaylistService) requireOwner(ctx context.Context, playlistID, callerID string) error {
	p, err := s.Playlists.GetByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("playlist not found")
		}
		return apperr.Upstream("failed to load playlist", err)
	}
	if p.OwnerID != callerID {
		return apperr.Unauthorized("only the owner can modify this playlist")
	}
	return nil
}
