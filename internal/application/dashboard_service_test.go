package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamhive/backend/pkg/apperr"
)

func newDashboardFixture(t *testing.T) (*DashboardService, *fakeUserRepo, *fakeVideoRepo, *fakeSubscriptionRepo) {
	t.Helper()
	users := newFakeUserRepo()
	videos := newFakeVideoRepo()
	subs := newFakeSubscriptionRepo()
	channels := &fakeChannelRepo{users: users, videos: videos, subs: subs}
	return NewDashboardService(channels, videos, users), users, videos, subs
}

func TestStatsEmptyChannelIsZeroed(t *testing.T) {
	svc, users, _, _ := newDashboardFixture(t)
	u := seedUser(t, users, "alice")

	stats, err := svc.Stats(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalVideos)
	assert.Zero(t, stats.TotalViews)
	assert.Zero(t, stats.AvgSubscribersPerVideo)
}

func TestStatsUnknownChannel(t *testing.T) {
	svc, _, _, _ := newDashboardFixture(t)
	_, err := svc.Stats(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestStatsAveragesSubscribersOverVideos(t *testing.T) {
	svc, users, videos, subs := newDashboardFixture(t)
	owner := seedUser(t, users, "alice")
	fanA := seedUser(t, users, "bob")
	fanB := seedUser(t, users, "carol")

	seedVideo(t, videos, owner.ID)
	seedVideo(t, videos, owner.ID)
	_, err := subs.Create(context.Background(), fanA.ID, owner.ID)
	require.NoError(t, err)
	_, err = subs.Create(context.Background(), fanB.ID, owner.ID)
	require.NoError(t, err)

	stats, err := svc.Stats(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalVideos)
	assert.Equal(t, int64(2), stats.TotalSubscribers)
	assert.InDelta(t, 1.0, stats.AvgSubscribersPerVideo, 1e-9)
}

func TestChannelVideosIncludesUnpublished(t *testing.T) {
	svc, users, videos, _ := newDashboardFixture(t)
	owner := seedUser(t, users, "alice")
	v := seedVideo(t, videos, owner.ID)
	seedVideo(t, videos, owner.ID)

	_, err := videos.TogglePublish(context.Background(), v.ID)
	require.NoError(t, err)

	list, total, err := svc.ChannelVideos(context.Background(), owner.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, list, 2)
}
