package storage

import (
	"fmt"
	"strings"
	"time"
)

// ReportFolderPath generates a consistent folder path for report runs
// Format: YYYY/MM/DD/SalesReport-YYYY-MM-DD-HH-MM-SS
func ReportFolderPath(timestamp time.Time) string {
	return fmt.Sprintf("%04d/%02d/%02d/SalesReport-%04d-%02d-%02d-%02d-%02d-%02d",
		timestamp.Year(), timestamp.Month(), timestamp.Day(),
		timestamp.Year(), timestamp.Month(), timestamp.Day(),
		timestamp.Hour(), timestamp.Minute(), timestamp.Second())
}

// ContentType determines the MIME content type based on file extension
func ContentType(filename string) string {
	switch {
	case strings.HasSuffix(filename, ".html"):
		return "text/html"
	case strings.HasSuffix(filename, ".json"):
		return "application/json"
	case strings.HasSuffix(filename, ".png"):
		return "image/png"
	case strings.HasSuffix(filename, ".pdf"):
		return "application/pdf"
	case strings.HasSuffix(filename, ".csv"):
		return "text/csv"
	case strings.HasSuffix(filename, ".txt"):
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
