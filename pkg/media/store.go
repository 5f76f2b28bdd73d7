// Package media stores uploaded images for logs and nutrients.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store keeps image bytes under slash-separated keys. Get returns an
// error wrapping apperr.ErrNotFound for a missing key. Ping checks that the
// backing directory or bucket is reachable.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

var ErrInvalidKey = errors.New("invalid media key")

// NewKey names a fresh object for an upload, e.g. "logs/12/<uuid>.jpg".
func NewKey(kind string, id any, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s/%v/%s%s", kind, id, uuid.NewString(), ext)
}

// sanitizeKey rejects keys that could escape the store root.
func sanitizeKey(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidKey)
	}
	if strings.Contains(key, "..") {
		return "", fmt.Errorf("%w: contains '..'", ErrInvalidKey)
	}
	if strings.HasPrefix(key, "/") {
		return "", fmt.Errorf("%w: absolute", ErrInvalidKey)
	}
	return filepath.ToSlash(filepath.Clean(key)), nil
}
