package storage

import (
	"context"
	"io"
)

// Store is where rendered dashboard pages are kept. Paths are slash
// separated and relative to the store root, as built by SnapshotPath.
type Store interface {
	// Save writes reader to path, creating parent directories, and returns
	// the number of bytes written.
	Save(ctx context.Context, path string, reader io.Reader) (int64, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	// List returns the files directly under dir, sorted.
	List(ctx context.Context, dir string) ([]string, error)
}
