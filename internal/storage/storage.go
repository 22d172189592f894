package storage

import (
	"context"
	"io"
)

// Storage is the file store behind resume uploads.
type Storage interface {
	// Save stores a file at the given path.
	Save(ctx context.Context, path string, reader io.Reader) error

	// Get retrieves a file from the given path.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file; deleting an absent file is not an error.
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists at the given path.
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL returns a public URL for the file.
	GetURL(ctx context.Context, path string) (string, error)
}

// Config holds storage configuration.
type Config struct {
	BasePath string // root directory for stored files
	BaseURL  string // public URL base
}

// NewStorage creates the configured storage backend.
func NewStorage(cfg Config) (Storage, error) {
	return NewLocalStorage(cfg)
}
