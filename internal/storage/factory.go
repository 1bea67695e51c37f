package storage

import (
	"context"
	"fmt"
)

// StorageMode selects the storage backend
type StorageMode string

const (
	ModeLocal StorageMode = "local"
	ModeGCS   StorageMode = "gcs"
)

// NewStorageClient creates a storage client for the configured mode
func NewStorageClient(ctx context.Context, mode StorageMode, outputDir, gcsBucket string) (StorageClient, error) {
	switch mode {
	case ModeLocal:
		if outputDir == "" {
			outputDir = "out"
		}
		client, err := NewLocalStorageClient(outputDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage client: %w", err)
		}
		return client, nil

	case ModeGCS:
		if gcsBucket == "" {
			return nil, fmt.Errorf("gcs storage mode requires a bucket name")
		}
		client, err := NewGCSClient(ctx, gcsBucket)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize GCS client: %w", err)
		}
		return client, nil

	default:
		return nil, fmt.Errorf("unsupported storage mode: %s", mode)
	}
}
