package media

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Kind names the top-level object prefix for each media field.
type Kind string

const (
	KindAvatar    Kind = "avatars"
	KindCover     Kind = "covers"
	KindVideo     Kind = "videos"
	KindThumbnail Kind = "thumbnails"
)

// ObjectStore is the minimal surface the manager needs from object storage.
type ObjectStore interface {
	Put(ctx context.Context, objectPath, contentType string, r io.Reader) error
	Delete(ctx context.Context, objectPath string) error
}

// Manager coordinates object-storage references attached to entities so
// that replacing or deleting media does not leak orphaned objects.
// Uploads fail closed; deletes of stale objects are best effort.
type Manager struct {
	store  ObjectStore
	bucket string
	log    *logrus.Logger
}

func NewManager(store ObjectStore, bucket string, log *logrus.Logger) *Manager {
	return &Manager{store: store, bucket: bucket, log: log}
}

// AttachNew uploads a fresh object and returns its public URL. Any upload
// failure aborts the enclosing operation; no entity field is written.
func (m *Manager) AttachNew(ctx context.Context, kind Kind, ownerID, filename, contentType string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := fmt.Sprintf("%s/%s/%s%s", kind, ownerID, uuid.NewString(), ext)
	if err := m.store.Put(ctx, objectPath, contentType, r); err != nil {
		return "", fmt.Errorf("upload %s: %w", objectPath, err)
	}
	return PublicURL(m.bucket, objectPath), nil
}

// Replace uploads the new object first and only then releases the previous
// reference. A failed release is logged and swallowed: the worst case is a
// leaked object, never a dangling entity reference.
func (m *Manager) Replace(ctx context.Context, kind Kind, ownerID, filename, contentType string, r io.Reader, oldURL string) (string, error) {
	url, err := m.AttachNew(ctx, kind, ownerID, filename, contentType, r)
	if err != nil {
		return "", err
	}
	if oldURL != "" {
		m.Release(ctx, oldURL)
	}
	return url, nil
}

// Release deletes the object a URL points at. Returns false when the URL is
// empty, points outside our bucket, or the delete fails.
func (m *Manager) Release(ctx context.Context, url string) bool {
	objectPath, ok := m.ObjectPath(url)
	if !ok {
		return false
	}
	if err := m.store.Delete(ctx, objectPath); err != nil {
		if m.log != nil {
			m.log.WithError(err).WithField("object", objectPath).Warn("media release failed")
		}
		return false
	}
	return true
}

// ObjectPath derives the storage object path from a public URL previously
// produced by PublicURL. Reports false for foreign URLs.
func (m *Manager) ObjectPath(url string) (string, bool) {
	prefix := fmt.Sprintf("https://storage.googleapis.com/%s/", m.bucket)
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	p := strings.TrimPrefix(url, prefix)
	if p == "" {
		return "", false
	}
	return p, true
}

// PublicURL builds a public URL for an object (assuming public read access).
func PublicURL(bucket, objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectPath)
}
