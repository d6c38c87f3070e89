package ingestion

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Blob kinds. A stored analysis owns one blob of each.
const (
	KindReport = "reports"
	KindResume = "resumes"
)

// ErrBlobNotFound is returned by StorageClient.Get when no blob exists
// for the key.
var ErrBlobNotFound = errors.New("blob not found")

// StorageClient abstracts blob storage for analysis reports and the resume
// texts they were computed from.
type StorageClient interface {
	Put(ctx context.Context, kind, id string, data []byte) error
	Get(ctx context.Context, kind, id string) ([]byte, error)
}

// ObjectKey returns the key of a blob relative to the storage root:
// "{prefix}/{kind}/{id}.json" for reports and ".txt" for resumes.
func ObjectKey(prefix, kind, id string) string {
	return path.Join(prefix, kind, id+extension(kind))
}

// IDFromRef extracts the object id from a stored ref such as
// "reports/{id}.json".
func IDFromRef(ref string) string {
	base := path.Base(ref)
	return strings.TrimSuffix(base, path.Ext(base))
}

func extension(kind string) string {
	if kind == KindResume {
		return ".txt"
	}
	return ".json"
}

func contentType(kind string) string {
	if kind == KindResume {
		return "text/plain; charset=utf-8"
	}
	return "application/json"
}

// LocalStorage implements StorageClient using the local filesystem.
// Useful for development and testing.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a LocalStorage rooted at the given directory.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

func (s *LocalStorage) path(kind, id string) string {
	return filepath.Join(s.BaseDir, filepath.FromSlash(ObjectKey("", kind, id)))
}

// Put stores a blob, creating parent directories as needed.
func (s *LocalStorage) Put(ctx context.Context, kind, id string, data []byte) error {
	p := s.path(kind, id)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(p, data, 0o644)
}

// Get retrieves a blob.
func (s *LocalStorage) Get(ctx context.Context, kind, id string) ([]byte, error) {
	data, err := os.ReadFile(s.path(kind, id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s/%s: %w", kind, id, ErrBlobNotFound)
	}
	return data, err
}
