package storage

import (
	"context"
	"io"
)

// Storage abstracts where uploaded photos live. Paths are relative and
// forward-slash separated; the backend decides the physical layout.
type Storage interface {
	// Save writes content at path, creating parent directories as needed.
	Save(ctx context.Context, path string, content io.Reader) error

	// Get opens the file at path for reading. The caller closes it.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the file at path. Deleting a missing file is not an
	// error.
	Delete(ctx context.Context, path string) error
}
