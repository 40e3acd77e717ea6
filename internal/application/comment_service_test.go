package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamhive/backend/pkg/apperr"
)

func newCommentFixture(t *testing.T) (*CommentService, *fakeUserRepo, *fakeVideoRepo) {
	t.Helper()
	users := newFakeUserRepo()
	videos := newFakeVideoRepo()
	return NewCommentService(newFakeCommentRepo(), videos), users, videos
}

func TestAddCommentToUnknownVideo(t *testing.T) {
	svc, users, _ := newCommentFixture(t)
	u := seedUser(t, users, "alice")

	_, err := svc.Add(context.Background(), "missing", u.ID, "hello")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCommentAuthorOnlyMutations(t *testing.T) {
	svc, users, videos := newCommentFixture(t)
	author := seedUser(t, users, "alice")
	v := seedVideo(t, videos, author.ID)

	c, err := svc.Add(context.Background(), v.ID, author.ID, "first")
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), c.ID, "intruder", "edited")
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	err = svc.Delete(context.Background(), c.ID, "intruder")
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	updated, err := svc.Update(context.Background(), c.ID, author.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	require.NoError(t, svc.Delete(context.Background(), c.ID, author.ID))

	comments, total, err := svc.ListByVideo(context.Background(), v.ID, 1, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, comments)
}
