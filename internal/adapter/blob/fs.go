package blob

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
)

// FSStore writes video blobs under a local root directory. Locators point at
// PublicBaseURL, which is expected to serve the same root.
type FSStore struct {
	root          string
	prefix        string
	publicBaseURL string
	newID         func() string
}

// NewFSStore creates a filesystem-backed blob store.
func NewFSStore(root, prefix, publicBaseURL string) *FSStore {
	return &FSStore{root: root, prefix: prefix, publicBaseURL: publicBaseURL, newID: newBlobID}
}

// Upload writes data to a temp file and renames it into place, so a reader
// never sees a partial blob.
func (s *FSStore) Upload(ctx context.Context, data []byte) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	blobID := s.newID()
	key := objectKey(s.prefix, blobID)
	path := filepath.Join(s.root, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", "", fmt.Errorf("create blob dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".upload-*")
	if err != nil {
		return "", "", fmt.Errorf("create temp blob: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", "", fmt.Errorf("write blob %s: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return "", "", fmt.Errorf("sync blob %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return "", "", fmt.Errorf("close blob %s: %w", key, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", "", fmt.Errorf("chmod blob %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", "", fmt.Errorf("publish blob %s: %w", key, err)
	}

	return joinURL(s.publicBaseURL, key), blobID, nil
}

// Ping checks that the root directory exists.
func (s *FSStore) Ping(_ context.Context) error {
	fi, err := os.Stat(s.root)
	if err != nil {
		return fmt.Errorf("stat blob root: %w", err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("blob root %s is not a directory", s.root)
	}
	return nil
}

// Handler serves stored blobs read-only. Directories are reported as missing
// so stored keys cannot be listed.
func (s *FSStore) Handler() http.Handler {
	return http.FileServer(filesOnly{http.Dir(s.root)})
}

type filesOnly struct {
	fs http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}
	fi, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if fi.IsDir() {
		file.Close()
		return nil, fs.ErrNotExist
	}
	return file, nil
}
