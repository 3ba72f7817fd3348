package blobstore

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store persists binary blobs and returns a stable URL for retrieval.
// Profile images are the only blobs this service stores today.
type Store interface {
	Put(name, contentType string, data []byte) (string, error)
}

// extensions maps the accepted image mime types to file extensions.
// Anything else is rejected.
var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
}

// LocalStore writes blobs to a directory that the HTTP server exposes as
// static files. Writes under the same name overwrite the previous blob, so
// re-uploading a profile image keeps its URL stable per extension.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore creates the storage directory if needed and returns a
// store whose URLs are prefixed with baseURL.
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create blob directory %s: %w", dir, err)
	}
	return &LocalStore{
		dir:     dir,
		baseURL: baseURL,
	}, nil
}

// Put stores the blob and returns its serving URL.
func (s *LocalStore) Put(name, contentType string, data []byte) (string, error) {
	ext, ok := extensions[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported content type %s: only jpeg and png images are allowed", contentType)
	}

	filename := name + ext
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write blob %s: %w", filename, err)
	}
	return s.baseURL + "/" + filename, nil
}
