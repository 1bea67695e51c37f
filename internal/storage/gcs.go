package storage

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"salesreport/internal/logger"
)

// GCSClient stores report artifacts in a Google Cloud Storage bucket
type GCSClient struct {
	client *storage.Client
	bucket string
	log    *logger.Logger
}

// NewGCSClient creates a GCS-backed storage client
func NewGCSClient(ctx context.Context, bucketName string) (*GCSClient, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSClient{
		client: client,
		bucket: bucketName,
		log:    logger.WithComponent("GCS"),
	}, nil
}

// Close closes the GCS client
func (g *GCSClient) Close() error {
	return g.client.Close()
}

// StoreFile uploads fileData into the report folder for timestamp
func (g *GCSClient) StoreFile(ctx context.Context, fileData []byte, filename string, timestamp time.Time) error {
	objectPath := ReportFolderPath(timestamp) + "/" + filename

	g.log.Debug("Storing file to GCS", map[string]interface{}{
		"bucket": g.bucket,
		"object": objectPath,
	})

	obj := g.client.Bucket(g.bucket).Object(objectPath)
	writer := obj.NewWriter(ctx)
	writer.ContentType = ContentType(filename)
	writer.Metadata = map[string]string{
		"generated-at": timestamp.Format(time.RFC3339),
		"filename":     filename,
	}

	if _, err := writer.Write(fileData); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write file to GCS: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize GCS upload: %w", err)
	}

	return nil
}

// GetFile retrieves a file from GCS
func (g *GCSClient) GetFile(ctx context.Context, filePath string) ([]byte, error) {
	obj := g.client.Bucket(g.bucket).Object(filePath)

	reader, err := obj.NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for %s: %w", filePath, err)
	}
	defer reader.Close()

	fileData, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	return fileData, nil
}

// ListReports lists stored report folders in the bucket, newest first
func (g *GCSClient) ListReports(ctx context.Context, limit int) ([]string, error) {
	it := g.client.Bucket(g.bucket).Objects(ctx, &storage.Query{})

	var reportPaths []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}
		if strings.HasSuffix(attrs.Name, "/report.html") {
			reportPaths = append(reportPaths, strings.TrimSuffix(attrs.Name, "/report.html"))
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(reportPaths)))

	if limit > 0 && limit < len(reportPaths) {
		reportPaths = reportPaths[:limit]
	}

	return reportPaths, nil
}
