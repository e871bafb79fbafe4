package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"examapi/internal/config"
)

// localStorage implements Storage on the local filesystem. The base directory
// is created on demand so a fresh deployment needs no setup step.
type localStorage struct {
	dir string
}

// NewLocal creates a filesystem-backed storage rooted at cfg.Dir.
func NewLocal(cfg config.LogsConfig) (Storage, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("log directory is required")
	}
	return &localStorage{dir: cfg.Dir}, nil
}

// Put writes the content to dir/key. Keys must stay inside the base directory;
// a key that escapes it is rejected.
func (l *localStorage) Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return ObjectInfo{}, err
	}

	path := filepath.Join(l.dir, filepath.FromSlash(key))
	rel, err := filepath.Rel(l.dir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return ObjectInfo{}, fmt.Errorf("invalid key %q", key)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return ObjectInfo{}, fmt.Errorf("create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("create file: %w", err)
	}

	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return ObjectInfo{}, fmt.Errorf("write file: %w", err)
	}

	return ObjectInfo{Key: key, Size: n}, nil
}
