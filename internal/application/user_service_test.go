package application

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamhive/backend/internal/domain/entity"
	"github.com/streamhive/backend/internal/media"
	"github.com/streamhive/backend/pkg/apperr"
)

func newUserFixture(t *testing.T) (*UserService, *fakeUserRepo, *fakeVideoRepo, *fakeStore) {
	t.Helper()
	users := newFakeUserRepo()
	videos := newFakeVideoRepo()
	subs := newFakeSubscriptionRepo()
	store := newFakeStore()
	m := media.NewManager(store, "test-bucket", nil)
	channels := &fakeChannelRepo{users: users, videos: videos, subs: subs}
	return NewUserService(users, videos, channels, m, nil), users, videos, store
}

func seedUser(t *testing.T, users *fakeUserRepo, username string) *entity.User {
	t.Helper()
	u := &entity.User{Username: username, Email: username + "@example.com", FullName: username, Password: "x"}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func seedVideo(t *testing.T, videos *fakeVideoRepo, ownerID string) *entity.Video {
	t.Helper()
	v := &entity.Video{OwnerID: ownerID, Title: "clip", VideoURL: "u", ThumbnailURL: "t"}
	require.NoError(t, videos.Create(context.Background(), v))
	return v
}

func TestWatchHistoryCapDropsOldest(t *testing.T) {
	svc, users, videos, _ := newUserFixture(t)
	u := seedUser(t, users, "alice")

	var ids []string
	for i := 0; i < watchHistoryCap+3; i++ {
		v := seedVideo(t, videos, u.ID)
		ids = append(ids, v.ID)
		require.NoError(t, svc.AddToWatchHistory(context.Background(), u.ID, v.ID))
	}

	history, err := svc.WatchHistory(context.Background(), u.ID)
	require.NoError(t, err)
	require.Len(t, history, watchHistoryCap)

	// Oldest three dropped; remaining are in watch order, oldest first.
	want := ids[3:]
	for i, v := range history {
		assert.Equal(t, want[i], v.ID, fmt.Sprintf("position %d", i))
	}
}

func TestWatchHistoryRewatchMovesToMostRecent(t *testing.T) {
	svc, users, videos, _ := newUserFixture(t)
	u := seedUser(t, users, "alice")

	first := seedVideo(t, videos, u.ID)
	second := seedVideo(t, videos, u.ID)
	require.NoError(t, svc.AddToWatchHistory(context.Background(), u.ID, first.ID))
	require.NoError(t, svc.AddToWatchHistory(context.Background(), u.ID, second.ID))
	require.NoError(t, svc.AddToWatchHistory(context.Background(), u.ID, first.ID))

	history, err := svc.WatchHistory(context.Background(), u.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)
}

func TestAddToWatchHistoryUnknownVideo(t *testing.T) {
	svc, users, _, _ := newUserFixture(t)
	u := seedUser(t, users, "alice")

	err := svc.AddToWatchHistory(context.Background(), u.ID, "missing")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestClearWatchHistory(t *testing.T) {
	svc, users, videos, _ := newUserFixture(t)
	u := seedUser(t, users, "alice")
	v := seedVideo(t, videos, u.ID)
	require.NoError(t, svc.AddToWatchHistory(context.Background(), u.ID, v.ID))

	require.NoError(t, svc.ClearWatchHistory(context.Background(), u.ID))
	history, err := svc.WatchHistory(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestUpdateAvatarReleasesPreviousObject(t *testing.T) {
	svc, users, _, store := newUserFixture(t)
	u := seedUser(t, users, "alice")

	first, err := svc.UpdateAvatar(context.Background(), u.ID, &Upload{
		Reader: strings.NewReader("one"), Filename: "one.png", ContentType: "image/png",
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.AvatarURL)
	assert.Len(t, store.objects, 1)

	second, err := svc.UpdateAvatar(context.Background(), u.ID, &Upload{
		Reader: strings.NewReader("two"), Filename: "two.png", ContentType: "image/png",
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.AvatarURL, second.AvatarURL)
	// Old avatar object was deleted, exactly one reference remains.
	assert.Len(t, store.objects, 1)
}

func TestUpdateAccountDuplicateEmail(t *testing.T) {
	svc, users, _, _ := newUserFixture(t)
	alice := seedUser(t, users, "alice")
	seedUser(t, users, "bob")

	_, err := svc.UpdateAccount(context.Background(), alice.ID, "Alice", "bob@example.com")
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestChannelProfileUnknownChannel(t *testing.T) {
	svc, _, _, _ := newUserFixture(t)
	_, err := svc.ChannelProfile(context.Background(), "nobody", "")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
