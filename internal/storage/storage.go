package storage

import (
	"context"
	"io"
)

// Storage is the file backend for job images. Only a local-disk
// implementation exists today; the interface is here so a bucket backend
// can be added without touching the handlers.
type Storage interface {
	// Save stores a file at the given path.
	Save(ctx context.Context, path string, reader io.Reader) error

	// Get retrieves a file from the given path.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file at the given path.
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists at the given path.
	Exists(ctx context.Context, path string) (bool, error)

	// URL returns the public URL for the file.
	URL(path string) string
}
