package reports

import (
	"context"
	"fmt"
	"html/template"
	"time"

	"salesreport/internal/charts"
	"salesreport/internal/logger"
	"salesreport/internal/metrics"
	"salesreport/internal/models"
)

// Attachment filenames inside the artifact bundle
const (
	ChartFilename = "revenue_chart.png"
	PDFFilename   = "report.pdf"
)

// PDFExporter converts a rendered chart into a one-page PDF document
type PDFExporter interface {
	Export(chartPNG []byte, title string, generatedAt time.Time) ([]byte, error)
}

// InsightsProvider produces optional commentary HTML for the report body
type InsightsProvider interface {
	Commentary(ctx context.Context, m *models.Metrics) (string, error)
}

// Builder orchestrates the full report assembly: metrics, chart, HTML, and
// the optional PDF
type Builder struct {
	title     string
	enablePDF bool
	renderer  *charts.Renderer
	formatter *Formatter
	exporter  PDFExporter
	insights  InsightsProvider
	log       *logger.Logger
}

// NewBuilder creates a report builder. exporter may be nil when PDF export is
// disabled; insights may be nil when commentary is not configured.
func NewBuilder(title string, enablePDF bool, formatter *Formatter, exporter PDFExporter, insights InsightsProvider) *Builder {
	return &Builder{
		title:     title,
		enablePDF: enablePDF,
		renderer:  charts.NewRenderer(),
		formatter: formatter,
		exporter:  exporter,
		insights:  insights,
		log:       logger.WithComponent("BUILDER"),
	}
}

// BuildBundle runs the pipeline over table and returns the deliverable bundle
// together with the computed metrics. Attachment order is fixed: chart first,
// then the PDF when enabled.
func (b *Builder) BuildBundle(ctx context.Context, table *models.Table, generatedAt time.Time) (*models.ArtifactBundle, *models.Metrics, error) {
	m, err := metrics.Summarize(table)
	if err != nil {
		return nil, nil, err
	}
	b.log.Info("Metrics computed", map[string]interface{}{
		"total_orders":  m.TotalOrders,
		"total_revenue": m.TotalRevenue.StringFixed(2),
		"best_day":      m.BestDay.Date.Format(models.DateFormat),
	})

	chartPNG, err := b.renderer.RenderPNG(table)
	if err != nil {
		return nil, nil, err
	}

	reportCtx := BuildContext(b.title, table, m, generatedAt)

	if snippet, err := charts.RevenueTrendSnippet(table); err == nil {
		reportCtx.RevenueChart = template.HTML(snippet)
	} else {
		b.log.Warn("Interactive chart skipped", map[string]interface{}{"error": err.Error()})
	}

	if b.insights != nil {
		commentary, err := b.insights.Commentary(ctx, m)
		if err != nil {
			// Commentary is best-effort; the report ships without it
			b.log.Warn("Commentary generation failed", map[string]interface{}{"error": err.Error()})
		} else {
			reportCtx.Commentary = template.HTML(commentary)
		}
	}

	htmlBody, err := b.formatter.Render(reportCtx)
	if err != nil {
		return nil, nil, err
	}

	bundle := &models.ArtifactBundle{
		Subject:  b.title,
		HTMLBody: htmlBody,
		Attachments: []models.Attachment{
			{Filename: ChartFilename, Data: chartPNG, MIMEType: "image/png"},
		},
	}

	if b.enablePDF {
		if b.exporter == nil {
			return nil, nil, fmt.Errorf("pdf export enabled but no exporter configured")
		}
		pdfData, err := b.exporter.Export(chartPNG, b.title, generatedAt)
		if err != nil {
			return nil, nil, err
		}
		bundle.Attachments = append(bundle.Attachments, models.Attachment{
			Filename: PDFFilename,
			Data:     pdfData,
			MIMEType: "application/pdf",
		})
	}

	b.log.Info("Bundle assembled", map[string]interface{}{
		"subject":     bundle.Subject,
		"attachments": len(bundle.Attachments),
		"html_bytes":  len(bundle.HTMLBody),
	})

	return bundle, m, nil
}
