package reports

import (
	"context"
	"fmt"
	"time"

	"salesreport/internal/logger"
	"salesreport/internal/storage"
)

// StorageOrchestrator persists a generated report through a storage client
type StorageOrchestrator struct {
	storage storage.StorageClient
	log     *logger.Logger
}

// NewStorageOrchestrator creates a storage orchestrator
func NewStorageOrchestrator(client storage.StorageClient) *StorageOrchestrator {
	return &StorageOrchestrator{
		storage: client,
		log:     logger.WithComponent("STORAGE"),
	}
}

// StoreAllFiles writes the report HTML and every staged file to storage under
// the run's folder path
func (so *StorageOrchestrator) StoreAllFiles(ctx context.Context, files *GeneratedFiles, timestamp time.Time) error {
	if err := so.storage.StoreFile(ctx, []byte(files.HTMLContent), "report.html", timestamp); err != nil {
		return fmt.Errorf("storing report.html: %w", err)
	}

	for filename, data := range files.Files {
		if err := so.storage.StoreFile(ctx, data, filename, timestamp); err != nil {
			return fmt.Errorf("storing %s: %w", filename, err)
		}
	}

	so.log.Info("Report files stored", map[string]interface{}{
		"folder": files.FolderPath,
		"count":  len(files.Files) + 1,
	})
	return nil
}
