package application

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/streamhive/backend/internal/domain/entity"
	"github.com/streamhive/backend/internal/domain/repository"
)

// In-memory repository fakes for service tests.

type fakeUserRepo struct {
	users map[string]*entity.User
	// watch history kept in recency order, oldest first
	history map[string][]string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}, history: map[string][]string{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, ex := range r.users {
		if ex.Username == strings.ToLower(u.Username) || ex.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	u.ID = uuid.NewString()
	u.Username = strings.ToLower(u.Username)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == strings.ToLower(username) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByUsernameOrEmail(_ context.Context, username, email string) (*entity.User, error) {
	for _, u := range r.users {
		if (username != "" && u.Username == strings.ToLower(username)) || (email != "" && u.Email == email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) UpdateAccount(_ context.Context, id, fullName, email string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for oid, other := range r.users {
		if oid != id && other.Email == email {
			return nil, repository.ErrDuplicate
		}
	}
	u.FullName, u.Email = fullName, email
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) UpdateAvatar(_ context.Context, id, url string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u.AvatarURL = url
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) UpdateCoverImage(_ context.Context, id, url string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u.CoverImageURL = url
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id, hash string) error {
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Password = hash
	return nil
}

func (r *fakeUserRepo) SetRefreshToken(_ context.Context, id, token string) error {
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.RefreshToken = token
	return nil
}

func (r *fakeUserRepo) AppendWatchHistory(_ context.Context, userID, videoID string) error {
	h := r.history[userID]
	for i, id := range h {
		if id == videoID {
			h = append(h[:i], h[i+1:]...)
			break
		}
	}
	r.history[userID] = append(h, videoID)
	return nil
}

func (r *fakeUserRepo) TrimWatchHistory(_ context.Context, userID string, keep int) error {
	h := r.history[userID]
	if len(h) > keep {
		r.history[userID] = append([]string(nil), h[len(h)-keep:]...)
	}
	return nil
}

func (r *fakeUserRepo) ClearWatchHistory(_ context.Context, userID string) error {
	delete(r.history, userID)
	return nil
}

func (r *fakeUserRepo) WatchHistory(_ context.Context, userID string) ([]entity.Video, error) {
	out := make([]entity.Video, 0, len(r.history[userID]))
	for _, id := range r.history[userID] {
		out = append(out, entity.Video{ID: id})
	}
	return out, nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

type fakeVideoRepo struct {
	videos map[string]*entity.Video
}

func newFakeVideoRepo() *fakeVideoRepo {
	return &fakeVideoRepo{videos: map[string]*entity.Video{}}
}

func (r *fakeVideoRepo) Create(_ context.Context, v *entity.Video) error {
	v.ID = uuid.NewString()
	v.IsPublished = true
	v.CreatedAt = time.Now()
	v.UpdatedAt = v.CreatedAt
	cp := *v
	r.videos[v.ID] = &cp
	return nil
}

func (r *fakeVideoRepo) GetByID(_ context.Context, id string) (*entity.Video, error) {
	v, ok := r.videos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (r *fakeVideoRepo) List(_ context.Context, p repository.ListVideosParams) ([]entity.Video, int64, error) {
	var out []entity.Video
	for _, v := range r.videos {
		if p.OwnerID != "" && v.OwnerID != p.OwnerID {
			continue
		}
		if p.OnlyPublished && !v.IsPublished {
			continue
		}
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (r *fakeVideoRepo) UpdateDetails(_ context.Context, id, title, description, thumbnailURL string) (*entity.Video, error) {
	v, ok := r.videos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	v.Title, v.Description, v.ThumbnailURL = title, description, thumbnailURL
	cp := *v
	return &cp, nil
}

func (r *fakeVideoRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.videos[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.videos, id)
	return nil
}

func (r *fakeVideoRepo) IncrementViews(_ context.Context, id string) error {
	v, ok := r.videos[id]
	if !ok {
		return repository.ErrNotFound
	}
	v.Views++
	return nil
}

func (r *fakeVideoRepo) TogglePublish(_ context.Context, id string) (*entity.Video, error) {
	v, ok := r.videos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	v.IsPublished = !v.IsPublished
	cp := *v
	return &cp, nil
}

var _ repository.VideoRepository = (*fakeVideoRepo)(nil)

type fakeSubscriptionRepo struct {
	subs map[string]*entity.Subscription // id -> edge
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subs: map[string]*entity.Subscription{}}
}

func (r *fakeSubscriptionRepo) Get(_ context.Context, subscriberID, channelID string) (*entity.Subscription, error) {
	for _, s := range r.subs {
		if s.SubscriberID == subscriberID && s.ChannelID == channelID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeSubscriptionRepo) Create(_ context.Context, subscriberID, channelID string) (*entity.Subscription, error) {
	for _, s := range r.subs {
		if s.SubscriberID == subscriberID && s.ChannelID == channelID {
			return nil, repository.ErrDuplicate
		}
	}
	s := &entity.Subscription{ID: uuid.NewString(), SubscriberID: subscriberID, ChannelID: channelID, CreatedAt: time.Now()}
	r.subs[s.ID] = s
	cp := *s
	return &cp, nil
}

func (r *fakeSubscriptionRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.subs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.subs, id)
	return nil
}

func (r *fakeSubscriptionRepo) Exists(_ context.Context, subscriberID, channelID string) (bool, error) {
	for _, s := range r.subs {
		if s.SubscriberID == subscriberID && s.ChannelID == channelID {
			return true, nil
		}
	}
	return false, nil
}

var _ repository.SubscriptionRepository = (*fakeSubscriptionRepo)(nil)

// fakeChannelRepo serves viewer-relative reads from the other fakes.
type fakeChannelRepo struct {
	users  *fakeUserRepo
	videos *fakeVideoRepo
	subs   *fakeSubscriptionRepo
	likes  *fakeLikeRepo
}

func (r *fakeChannelRepo) Profile(ctx context.Context, username, viewerID string) (*entity.ChannelProfile, error) {
	u, err := r.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	p := &entity.ChannelProfile{
		ID:            u.ID,
		Username:      u.Username,
		FullName:      u.FullName,
		Email:         u.Email,
		AvatarURL:     u.AvatarURL,
		CoverImageURL: u.CoverImageURL,
	}
	for _, s := range r.subs.subs {
		if s.ChannelID == u.ID {
			p.SubscriberCount++
			if s.SubscriberID == viewerID {
				p.IsSubscribed = true
			}
		}
		if s.SubscriberID == u.ID {
			p.SubscribedToCount++
		}
	}
	return p, nil
}

func (r *fakeChannelRepo) VideoDetail(ctx context.Context, videoID, viewerID string) (*entity.VideoDetail, error) {
	v, err := r.videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	d := &entity.VideoDetail{Video: *v}
	for _, s := range r.subs.subs {
		if s.ChannelID == v.OwnerID {
			d.SubscriberCount++
			if s.SubscriberID == viewerID {
				d.ViewerIsSubscribed = true
			}
		}
	}
	return d, nil
}

func (r *fakeChannelRepo) Stats(_ context.Context, channelID string) (*entity.ChannelStats, error) {
	st := &entity.ChannelStats{}
	for _, v := range r.videos.videos {
		if v.OwnerID != channelID {
			continue
		}
		st.TotalVideos++
		st.TotalViews += v.Views
		st.TotalDuration += v.Duration
	}
	for _, s := range r.subs.subs {
		if s.ChannelID == channelID {
			st.TotalSubscribers++
		}
	}
	if st.TotalVideos > 0 {
		st.AvgSubscribersPerVideo = float64(st.TotalSubscribers) / float64(st.TotalVideos)
	}
	return st, nil
}

func (r *fakeChannelRepo) Subscribers(_ context.Context, channelID string) ([]entity.OwnerInfo, error) {
	var out []entity.OwnerInfo
	for _, s := range r.subs.subs {
		if s.ChannelID == channelID {
			if u, ok := r.users.users[s.SubscriberID]; ok {
				out = append(out, u.Owner())
			}
		}
	}
	return out, nil
}

func (r *fakeChannelRepo) SubscribedChannels(_ context.Context, subscriberID string) ([]entity.OwnerInfo, error) {
	var out []entity.OwnerInfo
	for _, s := range r.subs.subs {
		if s.SubscriberID == subscriberID {
			if u, ok := r.users.users[s.ChannelID]; ok {
				out = append(out, u.Owner())
			}
		}
	}
	return out, nil
}

func (r *fakeChannelRepo) LikedVideos(_ context.Context, userID string) ([]entity.Video, error) {
	out := []entity.Video{}
	if r.likes == nil {
		return out, nil
	}
	for _, l := range r.likes.likes {
		if l.LikedBy != userID || l.TargetType != entity.LikeTargetVideo {
			continue
		}
		if v, ok := r.videos.videos[l.TargetID]; ok && v.IsPublished {
			out = append(out, *v)
		}
	}
	return out, nil
}

var _ repository.ChannelRepository = (*fakeChannelRepo)(nil)

type fakeLikeRepo struct {
	likes map[string]entity.Like // key likedBy|type|id
}

func newFakeLikeRepo() *fakeLikeRepo { return &fakeLikeRepo{likes: map[string]entity.Like{}} }

func likeKey(likedBy string, t entity.LikeTarget, id string) string {
	return fmt.Sprintf("%s|%s|%s", likedBy, t, id)
}

func (r *fakeLikeRepo) Create(_ context.Context, l *entity.Like) error {
	k := likeKey(l.LikedBy, l.TargetType, l.TargetID)
	if _, ok := r.likes[k]; ok {
		return repository.ErrDuplicate
	}
	l.ID = uuid.NewString()
	r.likes[k] = *l
	return nil
}

func (r *fakeLikeRepo) DeleteByTarget(_ context.Context, likedBy string, target entity.LikeTarget, targetID string) (bool, error) {
	k := likeKey(likedBy, target, targetID)
	if _, ok := r.likes[k]; !ok {
		return false, nil
	}
	delete(r.likes, k)
	return true, nil
}

var _ repository.LikeRepository = (*fakeLikeRepo)(nil)

type fakeCommentRepo struct {
	comments map[string]*entity.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[string]*entity.Comment{}}
}

func (r *fakeCommentRepo) Create(_ context.Context, c *entity.Comment) error {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	r.comments[c.ID] = &cp
	return nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, id string) (*entity.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCommentRepo) ListByVideo(_ context.Context, videoID string, _, _ int) ([]entity.Comment, int64, error) {
	var out []entity.Comment
	for _, c := range r.comments {
		if c.VideoID == videoID {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeCommentRepo) UpdateContent(_ context.Context, id, content string) (*entity.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c.Content = content
	cp := *c
	return &cp, nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.comments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.comments, id)
	return nil
}

var _ repository.CommentRepository = (*fakeCommentRepo)(nil)

type fakeTweetRepo struct {
	tweets map[string]*entity.Tweet
}

func newFakeTweetRepo() *fakeTweetRepo { return &fakeTweetRepo{tweets: map[string]*entity.Tweet{}} }

func (r *fakeTweetRepo) Create(_ context.Context, t *entity.Tweet) error {
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	cp := *t
	r.tweets[t.ID] = &cp
	return nil
}

func (r *fakeTweetRepo) GetByID(_ context.Context, id string) (*entity.Tweet, error) {
	t, ok := r.tweets[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTweetRepo) ListByOwner(_ context.Context, ownerID string) ([]entity.Tweet, error) {
	var out []entity.Tweet
	for _, t := range r.tweets {
		if t.OwnerID == ownerID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTweetRepo) UpdateContent(_ context.Context, id, content string) (*entity.Tweet, error) {
	t, ok := r.tweets[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	t.Content = content
	cp := *t
	return &cp, nil
}

func (r *fakeTweetRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tweets[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.tweets, id)
	return nil
}

var _ repository.TweetRepository = (*fakeTweetRepo)(nil)

type fakePlaylistRepo struct {
	videos    *fakeVideoRepo
	playlists map[string]*entity.Playlist
	members   map[string][]string // playlist id -> video ids in insertion order
}

func newFakePlaylistRepo(videos *fakeVideoRepo) *fakePlaylistRepo {
	return &fakePlaylistRepo{videos: videos, playlists: map[string]*entity.Playlist{}, members: map[string][]string{}}
}

func (r *fakePlaylistRepo) Create(_ context.Context, p *entity.Playlist) error {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	r.playlists[p.ID] = &cp
	return nil
}

func (r *fakePlaylistRepo) GetByID(_ context.Context, id string) (*entity.Playlist, error) {
	p, ok := r.playlists[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	cp.Videos = nil
	for _, vid := range r.members[id] {
		if v, ok := r.videos.videos[vid]; ok {
			cp.Videos = append(cp.Videos, *v)
		}
	}
	return &cp, nil
}

func (r *fakePlaylistRepo) ListByOwner(_ context.Context, ownerID string) ([]entity.Playlist, error) {
	var out []entity.Playlist
	for _, p := range r.playlists {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePlaylistRepo) Update(_ context.Context, id, name, description string) (*entity.Playlist, error) {
	p, ok := r.playlists[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p.Name, p.Description = name, description
	cp := *p
	return &cp, nil
}

func (r *fakePlaylistRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.playlists[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.playlists, id)
	delete(r.members, id)
	return nil
}

func (r *fakePlaylistRepo) AddVideo(_ context.Context, playlistID, videoID string) error {
	for _, vid := range r.members[playlistID] {
		if vid == videoID {
			return nil
		}
	}
	r.members[playlistID] = append(r.members[playlistID], videoID)
	return nil
}

func (r *fakePlaylistRepo) RemoveVideo(_ context.Context, playlistID, videoID string) error {
	m := r.members[playlistID]
	for i, vid := range m {
		if vid == videoID {
			r.members[playlistID] = append(m[:i], m[i+1:]...)
			return nil
		}
	}
	return nil
}

var _ repository.PlaylistRepository = (*fakePlaylistRepo)(nil)

// fakeStore records object-store operations for media assertions.
type fakeStore struct {
	objects map[string]string // path -> content type
	fail    bool
}

func newFakeStore() *fakeStore { return &fakeStore{objects: map[string]string{}} }

func (s *fakeStore) Put(_ context.Context, objectPath, contentType string, _ io.Reader) error {
	if s.fail {
		return fmt.Errorf("store unavailable")
	}
	s.objects[objectPath] = contentType
	return nil
}

func (s *fakeStore) Delete(_ context.Context, objectPath string) error {
	if _, ok := s.objects[objectPath]; !ok {
		return fmt.Errorf("object %s not found", objectPath)
	}
	delete(s.objects, objectPath)
	return nil
}
