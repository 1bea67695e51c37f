package storage

import (
	"context"
	"time"
)

// StorageClient defines the interface for report artifact storage
type StorageClient interface {
	// StoreFile stores a file under the report folder for the given timestamp
	StoreFile(ctx context.Context, fileData []byte, filename string, timestamp time.Time) error

	// GetFile retrieves a previously stored file by its full path
	GetFile(ctx context.Context, filePath string) ([]byte, error)

	// ListReports lists stored report folders, newest first
	ListReports(ctx context.Context, limit int) ([]string, error)

	// Close closes the storage client
	Close() error
}
