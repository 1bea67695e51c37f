package reports

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"time"

	"salesreport/internal/models"
)

// ErrTemplate indicates the report template could not be loaded, parsed, or
// executed.
var ErrTemplate = errors.New("report template failed")

// Row is one rendered table line in the daily breakdown
type Row struct {
	Date    string
	Orders  int
	Revenue string
}

// ReportContext carries everything the HTML template needs. Monetary values
// are pre-formatted strings so the template never does arithmetic.
type ReportContext struct {
	Title          string
	GeneratedAt    string
	ChartPath      string
	TotalOrders    int
	TotalRevenue   string
	BestDayDate    string
	BestDayRevenue string
	Rows           []Row
	RevenueChart   template.HTML
	Commentary     template.HTML
}

// BuildContext assembles the template context from the dataset and its
// computed metrics
func BuildContext(title string, table *models.Table, m *models.Metrics, generatedAt time.Time) *ReportContext {
	rows := make([]Row, table.Len())
	for i, rec := range table.Records {
		rows[i] = Row{
			Date:    rec.Date.Format(models.DateFormat),
			Orders:  rec.Orders,
			Revenue: models.FormatCurrency(rec.Revenue),
		}
	}

	return &ReportContext{
		Title:          title,
		GeneratedAt:    generatedAt.Format("2006-01-02 15:04"),
		ChartPath:      ChartFilename,
		TotalOrders:    m.TotalOrders,
		TotalRevenue:   models.FormatCurrency(m.TotalRevenue),
		BestDayDate:    m.BestDay.Date.Format(models.DateFormat),
		BestDayRevenue: models.FormatCurrency(m.BestDay.Revenue),
		Rows:           rows,
	}
}

// Formatter renders the report HTML from a template
type Formatter struct {
	loader *TemplateLoader
}

// NewFormatter creates a formatter backed by the given template loader
func NewFormatter(loader *TemplateLoader) *Formatter {
	return &Formatter{loader: loader}
}

// Render executes the report template against ctx and returns the complete
// HTML document
func (f *Formatter) Render(ctx *ReportContext) (string, error) {
	text, err := f.loader.Load()
	if err != nil {
		return "", err
	}

	tmpl, err := template.New("report").Parse(text)
	if err != nil {
		return "", fmt.Errorf("%w: parsing: %v", ErrTemplate, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return "", fmt.Errorf("%w: executing: %v", ErrTemplate, err)
	}

	return buf.String(), nil
}
