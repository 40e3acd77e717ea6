package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamhive/backend/pkg/apperr"
)

func newPlaylistFixture(t *testing.T) (*PlaylistService, *fakeUserRepo, *fakeVideoRepo) {
	t.Helper()
	users := newFakeUserRepo()
	videos := newFakeVideoRepo()
	return NewPlaylistService(newFakePlaylistRepo(videos), videos), users, videos
}

func TestPlaylistOwnerOnlyMutations(t *testing.T) {
	svc, users, _ := newPlaylistFixture(t)
	owner := seedUser(t, users, "alice")

	p, err := svc.Create(context.Background(), owner.ID, "favorites", "")
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), p.ID, "intruder", "renamed", "")
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	err = svc.Delete(context.Background(), p.ID, "intruder")
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	updated, err := svc.Update(context.Background(), p.ID, owner.ID, "renamed", "desc")
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
}

func TestPlaylistAddVideoIsIdempotent(t *testing.T) {
	svc, users, videos := newPlaylistFixture(t)
	owner := seedUser(t, users, "alice")
	v := seedVideo(t, videos, owner.ID)

	p, err := svc.Create(context.Background(), owner.ID, "favorites", "")
	require.NoError(t, err)

	p, err = svc.AddVideo(context.Background(), p.ID, v.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, p.Videos, 1)

	// Adding again does not duplicate.
	p, err = svc.AddVideo(context.Background(), p.ID, v.ID, owner.ID)
	require.NoError(t, err)
	assert.Len(t, p.Videos, 1)
}

func TestPlaylistAddUnknownVideo(t *testing.T) {
	svc, users, _ := newPlaylistFixture(t)
	owner := seedUser(t, users, "alice")

	p, err := svc.Create(context.Background(), owner.ID, "favorites", "")
	require.NoError(t, err)

	_, err = svc.AddVideo(context.Background(), p.ID, "missing", owner.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestPlaylistRemoveVideo(t *testing.T) {
	svc, users, videos := newPlaylistFixture(t)
	owner := seedUser(t, users, "alice")
	first := seedVideo(t, videos, owner.ID)
	second := seedVideo(t, videos, owner.ID)

	p, err := svc.Create(context.Background(), owner.ID, "favorites", "")
	require.NoError(t, err)
	_, err = svc.AddVideo(context.Background(), p.ID, first.ID, owner.ID)
	require.NoError(t, err)
	_, err = svc.AddVideo(context.Background(), p.ID, second.ID, owner.ID)
	require.NoError(t, err)

	p, err = svc.RemoveVideo(context.Background(), p.ID, first.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, p.Videos, 1)
	assert.Equal(t, second.ID, p.Videos[0].ID)
}
