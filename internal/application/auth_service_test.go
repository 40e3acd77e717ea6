package application

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamhive/backend/internal/media"
	"github.com/streamhive/backend/pkg/apperr"
	"github.com/streamhive/backend/pkg/helpers"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserRepo, *fakeStore) {
	t.Helper()
	users := newFakeUserRepo()
	store := newFakeStore()
	m := media.NewManager(store, "test-bucket", nil)
	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", 15*time.Minute, 240*time.Hour)
	svc := NewAuthService(users, jwt, m, nil, nil, "streamhive")
	return svc, users, store
}

func registerTestUser(t *testing.T, svc *AuthService) *AuthService {
	t.Helper()
	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "Alice",
		Email:    "alice@example.com",
		FullName: "Alice Doe",
		Password: "hunter2hunter2",
		Avatar:   &Upload{Reader: strings.NewReader("img"), Filename: "a.png", ContentType: "image/png"},
	})
	require.NoError(t, err)
	return svc
}

func TestRegisterRequiresAvatar(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "bob", Email: "bob@example.com", FullName: "Bob", Password: "password123",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestRegisterNormalizesUsernameAndHashesPassword(t *testing.T) {
	svc, users, store := newAuthFixture(t)
	registerTestUser(t, svc)

	u, err := users.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.NotEqual(t, "hunter2hunter2", u.Password)
	assert.True(t, helpers.CompareHashAndPassword(u.Password, "hunter2hunter2"))
	assert.Len(t, store.objects, 1, "avatar object stored")
	assert.Contains(t, u.AvatarURL, "https://storage.googleapis.com/test-bucket/avatars/")
}

func TestRegisterDuplicateIsConflict(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	registerTestUser(t, svc)

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice", Email: "other@example.com", FullName: "A", Password: "password123",
		Avatar: &Upload{Reader: strings.NewReader("img"), Filename: "a.png", ContentType: "image/png"},
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	registerTestUser(t, svc)

	_, _, err := svc.Login(context.Background(), "alice", "", "wrong-password")
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	_, _, err := svc.Login(context.Background(), "ghost", "", "whatever123")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestLoginPersistsRefreshToken(t *testing.T) {
	svc, users, _ := newAuthFixture(t)
	registerTestUser(t, svc)

	u, pair, err := svc.Login(context.Background(), "", "alice@example.com", "hunter2hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	stored, err := users.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, pair.RefreshToken, stored.RefreshToken)
}

func TestRotateRefreshInvalidatesPreviousToken(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	registerTestUser(t, svc)

	_, pair, err := svc.Login(context.Background(), "alice", "", "hunter2hunter2")
	require.NoError(t, err)

	next, err := svc.RotateRefresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, next.RefreshToken)
	// Login and rotation land within the same second here; the rotated
	// token must still differ from the one it replaces.
	require.NotEqual(t, pair.RefreshToken, next.RefreshToken)

	// The first token was rotated out; presenting it again must fail.
	_, err = svc.RotateRefresh(context.Background(), pair.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	// The current token still works.
	_, err = svc.RotateRefresh(context.Background(), next.RefreshToken)
	require.NoError(t, err)
}

func TestLogoutRejectsFutureRefresh(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	registerTestUser(t, svc)

	u, pair, err := svc.Login(context.Background(), "alice", "", "hunter2hunter2")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(context.Background(), u.ID))

	_, err = svc.RotateRefresh(context.Background(), pair.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestVerifyAccessChecksUserExistence(t *testing.T) {
	svc, users, _ := newAuthFixture(t)
	registerTestUser(t, svc)

	u, pair, err := svc.Login(context.Background(), "alice", "", "hunter2hunter2")
	require.NoError(t, err)

	got, err := svc.VerifyAccess(context.Background(), pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	delete(users.users, u.ID)
	_, err = svc.VerifyAccess(context.Background(), pair.AccessToken)
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestVerifyAccessRejectsRefreshToken(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	registerTestUser(t, svc)

	_, pair, err := svc.Login(context.Background(), "alice", "", "hunter2hunter2")
	require.NoError(t, err)

	// Tokens are signed with separate secrets; a refresh token is not an
	// access token.
	_, err = svc.VerifyAccess(context.Background(), pair.RefreshToken)
	require.Error(t, err)
}

func TestChangePassword(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	registerTestUser(t, svc)

	u, _, err := svc.Login(context.Background(), "alice", "", "hunter2hunter2")
	require.NoError(t, err)

	err = svc.ChangePassword(context.Background(), u.ID, "wrong-old", "newpassword123")
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	require.NoError(t, svc.ChangePassword(context.Background(), u.ID, "hunter2hunter2", "newpassword123"))

	_, _, err = svc.Login(context.Background(), "alice", "", "newpassword123")
	require.NoError(t, err)
}
