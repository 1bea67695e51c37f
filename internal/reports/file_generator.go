package reports

import (
	"encoding/json"
	"fmt"
	"time"

	"salesreport/internal/logger"
	"salesreport/internal/models"
	"salesreport/internal/storage"
)

// GeneratedFiles contains everything a report run persists
type GeneratedFiles struct {
	HTMLContent string
	Files       map[string][]byte
	FolderPath  string
}

// FileGenerator turns an assembled bundle into the set of files persisted
// alongside the delivered email
type FileGenerator struct {
	log *logger.Logger
}

// NewFileGenerator creates a file generator
func NewFileGenerator() *FileGenerator {
	return &FileGenerator{
		log: logger.WithComponent("FILES"),
	}
}

// GenerateAllFiles lays out the report HTML, every bundle attachment, and a
// metrics.json snapshot under a timestamped folder path
func (fg *FileGenerator) GenerateAllFiles(bundle *models.ArtifactBundle, m *models.Metrics, generatedAt time.Time) (*GeneratedFiles, error) {
	files := &GeneratedFiles{
		HTMLContent: bundle.HTMLBody,
		Files:       make(map[string][]byte),
		FolderPath:  storage.ReportFolderPath(generatedAt),
	}

	for _, att := range bundle.Attachments {
		files.Files[att.Filename] = att.Data
		fg.log.Debug("Staged attachment", map[string]interface{}{
			"filename": att.Filename,
			"bytes":    len(att.Data),
		})
	}

	metricsJSON, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling metrics: %w", err)
	}
	files.Files["metrics.json"] = metricsJSON
	fg.log.Debug("Staged metrics snapshot", map[string]interface{}{"bytes": len(metricsJSON)})

	return files, nil
}
