package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamhive/backend/internal/domain/entity"
	"github.com/streamhive/backend/pkg/apperr"
)

func newLikeFixture(t *testing.T) (*LikeService, *fakeUserRepo, *fakeVideoRepo, *fakeCommentRepo, *fakeTweetRepo) {
	t.Helper()
	users := newFakeUserRepo()
	videos := newFakeVideoRepo()
	subs := newFakeSubscriptionRepo()
	comments := newFakeCommentRepo()
	tweets := newFakeTweetRepo()
	likes := newFakeLikeRepo()
	channels := &fakeChannelRepo{users: users, videos: videos, subs: subs, likes: likes}
	return NewLikeService(likes, videos, comments, tweets, channels), users, videos, comments, tweets
}

func TestToggleLikeOnVideo(t *testing.T) {
	svc, users, videos, _, _ := newLikeFixture(t)
	u := seedUser(t, users, "alice")
	v := seedVideo(t, videos, u.ID)

	liked, err := svc.Toggle(context.Background(), u.ID, entity.LikeTargetVideo, v.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = svc.Toggle(context.Background(), u.ID, entity.LikeTargetVideo, v.ID)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestToggleLikeAcrossTargetTypes(t *testing.T) {
	svc, users, videos, comments, tweets := newLikeFixture(t)
	u := seedUser(t, users, "alice")
	v := seedVideo(t, videos, u.ID)

	c := &entity.Comment{VideoID: v.ID, OwnerID: u.ID, Content: "nice"}
	require.NoError(t, comments.Create(context.Background(), c))
	tw := &entity.Tweet{OwnerID: u.ID, Content: "hello"}
	require.NoError(t, tweets.Create(context.Background(), tw))

	for _, tc := range []struct {
		target   entity.LikeTarget
		targetID string
	}{
		{entity.LikeTargetVideo, v.ID},
		{entity.LikeTargetComment, c.ID},
		{entity.LikeTargetTweet, tw.ID},
	} {
		liked, err := svc.Toggle(context.Background(), u.ID, tc.target, tc.targetID)
		require.NoError(t, err)
		assert.True(t, liked, string(tc.target))
	}
}

func TestLikedVideosOnlyListsPublished(t *testing.T) {
	svc, users, videos, _, _ := newLikeFixture(t)
	u := seedUser(t, users, "alice")
	published := seedVideo(t, videos, u.ID)
	hidden := seedVideo(t, videos, u.ID)

	for _, id := range []string{published.ID, hidden.ID} {
		liked, err := svc.Toggle(context.Background(), u.ID, entity.LikeTargetVideo, id)
		require.NoError(t, err)
		require.True(t, liked)
	}
	_, err := videos.TogglePublish(context.Background(), hidden.ID)
	require.NoError(t, err)

	out, err := svc.LikedVideos(context.Background(), u.ID)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, published.ID, out[0].ID)
}

func TestToggleLikeInvalidTarget(t *testing.T) {
	svc, users, _, _, _ := newLikeFixture(t)
	u := seedUser(t, users, "alice")

	_, err := svc.Toggle(context.Background(), u.ID, entity.LikeTarget("playlist"), "x")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestToggleLikeMissingTarget(t *testing.T) {
	svc, users, _, _, _ := newLikeFixture(t)
	u := seedUser(t, users, "alice")

	_, err := svc.Toggle(context.Background(), u.ID, entity.LikeTargetVideo, "missing")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
