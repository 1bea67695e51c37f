package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// LocalStorageClient stores report artifacts on the local filesystem
type LocalStorageClient struct {
	baseDir string
}

// NewLocalStorageClient creates a local storage client rooted at baseDir
func NewLocalStorageClient(baseDir string) (*LocalStorageClient, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory %s: %w", baseDir, err)
	}

	return &LocalStorageClient{
		baseDir: baseDir,
	}, nil
}

// Close is a no-op for local storage
func (l *LocalStorageClient) Close() error {
	return nil
}

// StoreFile writes fileData into the report folder for timestamp
func (l *LocalStorageClient) StoreFile(ctx context.Context, fileData []byte, filename string, timestamp time.Time) error {
	filePath := filepath.Join(l.baseDir, ReportFolderPath(timestamp), filename)

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(filePath, fileData, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filePath, err)
	}

	return nil
}

// GetFile retrieves a file from local storage
func (l *LocalStorageClient) GetFile(ctx context.Context, filePath string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.baseDir, filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return data, nil
}

// ListReports lists stored report folders, newest first
func (l *LocalStorageClient) ListReports(ctx context.Context, limit int) ([]string, error) {
	var reportPaths []string

	err := filepath.Walk(l.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip errors and continue
		}
		if info.Name() == "report.html" {
			relPath, _ := filepath.Rel(l.baseDir, filepath.Dir(path))
			reportPaths = append(reportPaths, relPath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk reports directory: %w", err)
	}

	// Folder names sort chronologically; reverse for newest first
	sort.Sort(sort.Reverse(sort.StringSlice(reportPaths)))

	if limit > 0 && limit < len(reportPaths) {
		reportPaths = reportPaths[:limit]
	}

	return reportPaths, nil
}
