package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/go-pdf/fpdf"
)

// ErrExport indicates the PDF document could not be produced.
var ErrExport = errors.New("pdf export failed")

// Letter page with one inch margins, all units in points
const (
	pageMargin = 72.0
	titleY     = 72.0
	subtitleY  = 96.0
	imageY     = 120.0
)

// Exporter renders a one-page PDF summary containing the report title,
// generation timestamp, and the revenue chart.
type Exporter struct{}

// NewExporter creates a PDF exporter
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export builds the PDF from the chart PNG. The chart is scaled to the page
// width with its aspect ratio preserved.
func (e *Exporter) Export(chartPNG []byte, title string, generatedAt time.Time) ([]byte, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(chartPNG))
	if err != nil {
		return nil, fmt.Errorf("%w: decoding chart image: %v", ErrExport, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: chart image has no dimensions", ErrExport)
	}

	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.Text(pageMargin, titleY, title)

	doc.SetFont("Helvetica", "", 10)
	doc.Text(pageMargin, subtitleY, "Generated at: "+generatedAt.Format("2006-01-02 15:04"))

	pageW, _ := doc.GetPageSize()
	imgW := pageW - 2*pageMargin
	imgH := imgW * float64(cfg.Height) / float64(cfg.Width)

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("revenue_chart", opts, bytes.NewReader(chartPNG))
	doc.ImageOptions("revenue_chart", pageMargin, imageY, imgW, imgH, false, opts, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExport, err)
	}

	return buf.Bytes(), nil
}

// ExportToFile exports the PDF and writes it to path
func (e *Exporter) ExportToFile(chartPNG []byte, title string, generatedAt time.Time, path string) error {
	data, err := e.Export(chartPNG, title, generatedAt)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrExport, path, err)
	}
	return nil
}
