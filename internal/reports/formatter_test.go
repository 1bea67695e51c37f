package reports

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"salesreport/internal/models"
)

func testTable(t *testing.T) *models.Table {
	t.Helper()
	table := &models.Table{}
	days := []struct {
		date    string
		orders  int
		revenue string
	}{
		{"2024-01-01", 5, "100.00"},
		{"2024-01-02", 8, "250.00"},
		{"2024-01-03", 2, "0.00"},
	}
	for _, d := range days {
		date, err := time.Parse(models.DateFormat, d.date)
		if err != nil {
			t.Fatalf("parse date: %v", err)
		}
		table.Records = append(table.Records, models.Record{
			Date:    date,
			Orders:  d.orders,
			Revenue: decimal.RequireFromString(d.revenue),
		})
	}
	return table
}

func testMetrics(t *testing.T) *models.Metrics {
	t.Helper()
	bestDay, err := time.Parse(models.DateFormat, "2024-01-02")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	return &models.Metrics{
		TotalOrders:  15,
		TotalRevenue: decimal.RequireFromString("350.00"),
		BestDay: models.Record{
			Date:    bestDay,
			Orders:  8,
			Revenue: decimal.RequireFromString("250.00"),
		},
	}
}

func TestBuildContext(t *testing.T) {
	generatedAt := time.Date(2024, 1, 3, 9, 30, 0, 0, time.UTC)

	ctx := BuildContext("Sales Report", testTable(t), testMetrics(t), generatedAt)

	if ctx.GeneratedAt != "2024-01-03 09:30" {
		t.Errorf("GeneratedAt = %q", ctx.GeneratedAt)
	}
	if ctx.TotalOrders != 15 {
		t.Errorf("TotalOrders = %d", ctx.TotalOrders)
	}
	if ctx.TotalRevenue != "$350.00" {
		t.Errorf("TotalRevenue = %q", ctx.TotalRevenue)
	}
	if ctx.BestDayDate != "2024-01-02" || ctx.BestDayRevenue != "$250.00" {
		t.Errorf("BestDay = %q / %q", ctx.BestDayDate, ctx.BestDayRevenue)
	}
	if ctx.ChartPath != ChartFilename {
		t.Errorf("ChartPath = %q", ctx.ChartPath)
	}
	if len(ctx.Rows) != 3 {
		t.Fatalf("Rows = %d", len(ctx.Rows))
	}
	if ctx.Rows[2].Revenue != "$0.00" {
		t.Errorf("zero revenue row = %q", ctx.Rows[2].Revenue)
	}
}

func TestRenderDefaultTemplate(t *testing.T) {
	f := NewFormatter(NewTemplateLoader(""))
	ctx := BuildContext("Sales Report", testTable(t), testMetrics(t), time.Date(2024, 1, 3, 9, 30, 0, 0, time.UTC))

	html, err := f.Render(ctx)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, want := range []string{
		"<title>Sales Report</title>",
		"Generated at: 2024-01-03 09:30",
		"$350.00",
		"$250.00",
		`src="revenue_chart.png"`,
		"2024-01-01",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML missing %q", want)
		}
	}
}

func TestRenderEscapesTitle(t *testing.T) {
	f := NewFormatter(NewTemplateLoader(""))
	ctx := BuildContext("A & B <Sales>", testTable(t), testMetrics(t), time.Now())

	html, err := f.Render(ctx)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(html, "A &amp; B &lt;Sales&gt;") {
		t.Error("title was not HTML-escaped")
	}
	if strings.Contains(html, "<Sales>") {
		t.Error("raw title markup leaked into output")
	}
}

func TestRenderDeterministic(t *testing.T) {
	f := NewFormatter(NewTemplateLoader(""))
	generatedAt := time.Date(2024, 1, 3, 9, 30, 0, 0, time.UTC)

	first, err := f.Render(BuildContext("Sales Report", testTable(t), testMetrics(t), generatedAt))
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := f.Render(BuildContext("Sales Report", testTable(t), testMetrics(t), generatedAt))
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if first != second {
		t.Error("renders with identical input differ")
	}
}

func TestRenderOverrideTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	if err := os.WriteFile(path, []byte("<h1>{{.Title}}</h1>"), 0644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	f := NewFormatter(NewTemplateLoader(path))
	html, err := f.Render(BuildContext("Sales Report", testTable(t), testMetrics(t), time.Now()))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if html != "<h1>Sales Report</h1>" {
		t.Errorf("override output = %q", html)
	}
}

func TestRenderMissingOverride(t *testing.T) {
	f := NewFormatter(NewTemplateLoader(filepath.Join(t.TempDir(), "missing.html")))

	_, err := f.Render(BuildContext("Sales Report", testTable(t), testMetrics(t), time.Now()))
	if !errors.Is(err, ErrTemplate) {
		t.Errorf("expected ErrTemplate, got %v", err)
	}
}

func TestRenderBadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	if err := os.WriteFile(path, []byte("{{.Title"), 0644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	f := NewFormatter(NewTemplateLoader(path))
	_, err := f.Render(BuildContext("Sales Report", testTable(t), testMetrics(t), time.Now()))
	if !errors.Is(err, ErrTemplate) {
		t.Errorf("expected ErrTemplate, got %v", err)
	}
}
