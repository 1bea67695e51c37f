package reports

import (
	"fmt"
	"os"
)

// defaultTemplate is the built-in report layout. It is used whenever no
// override template path is configured.
const defaultTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
body {
    font-family: 'Segoe UI', Arial, sans-serif;
    margin: 0;
    padding: 24px;
    background-color: #f4f6f8;
    color: #2c3e50;
}
.report {
    max-width: 960px;
    margin: 0 auto;
    background: #ffffff;
    border-radius: 8px;
    box-shadow: 0 2px 8px rgba(0, 0, 0, 0.08);
    padding: 32px;
}
h1 {
    margin-top: 0;
    font-size: 28px;
    border-bottom: 2px solid #3366cc;
    padding-bottom: 12px;
}
.generated-at {
    color: #7f8c8d;
    font-size: 13px;
    margin-bottom: 24px;
}
.summary {
    display: flex;
    gap: 16px;
    flex-wrap: wrap;
    margin-bottom: 24px;
}
.summary .card {
    flex: 1;
    min-width: 180px;
    background: #eef3fb;
    border-radius: 6px;
    padding: 16px;
}
.summary .card .label {
    font-size: 12px;
    text-transform: uppercase;
    letter-spacing: 1px;
    color: #7f8c8d;
}
.summary .card .value {
    font-size: 22px;
    font-weight: 600;
    margin-top: 4px;
}
.chart {
    text-align: center;
    margin: 24px 0;
}
.chart img {
    max-width: 100%;
    height: auto;
}
.commentary {
    background: #fbf6ec;
    border-left: 4px solid #e0a93f;
    padding: 12px 16px;
    margin: 24px 0;
}
table.sales {
    width: 100%;
    border-collapse: collapse;
    margin-top: 16px;
}
table.sales th, table.sales td {
    border: 1px solid #dfe4ea;
    padding: 8px 12px;
    text-align: right;
}
table.sales th {
    background: #3366cc;
    color: #ffffff;
}
table.sales td:first-child, table.sales th:first-child {
    text-align: left;
}
</style>
</head>
<body>
<div class="report">
    <h1>{{.Title}}</h1>
    <div class="generated-at">Generated at: {{.GeneratedAt}}</div>
    <div class="summary">
        <div class="card">
            <div class="label">Total Orders</div>
            <div class="value">{{.TotalOrders}}</div>
        </div>
        <div class="card">
            <div class="label">Total Revenue</div>
            <div class="value">{{.TotalRevenue}}</div>
        </div>
        <div class="card">
            <div class="label">Best Day</div>
            <div class="value">{{.BestDayDate}}</div>
            <div class="label">{{.BestDayRevenue}}</div>
        </div>
    </div>
    <div class="chart">
        <img src="{{.ChartPath}}" alt="Revenue Over Time">
    </div>
    {{if .RevenueChart}}<div class="chart-interactive">{{.RevenueChart}}</div>{{end}}
    {{if .Commentary}}<div class="commentary">{{.Commentary}}</div>{{end}}
    <h2>Daily Breakdown</h2>
    <table class="sales">
        <thead><tr><th>Date</th><th>Orders</th><th>Revenue</th></tr></thead>
        <tbody>
        {{range .Rows}}<tr><td>{{.Date}}</td><td>{{.Orders}}</td><td>{{.Revenue}}</td></tr>
        {{end}}</tbody>
    </table>
</div>
</body>
</html>
`

// TemplateLoader resolves the report template source
type TemplateLoader struct {
	overridePath string
}

// NewTemplateLoader creates a template loader. An empty overridePath selects
// the built-in template.
func NewTemplateLoader(overridePath string) *TemplateLoader {
	return &TemplateLoader{overridePath: overridePath}
}

// Load returns the template text, reading the override file when configured
func (t *TemplateLoader) Load() (string, error) {
	if t.overridePath == "" {
		return defaultTemplate, nil
	}
	content, err := os.ReadFile(t.overridePath)
	if err != nil {
		return "", fmt.Errorf("%w: reading template %s: %v", ErrTemplate, t.overridePath, err)
	}
	return string(content), nil
}
