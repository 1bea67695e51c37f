package charts

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"salesreport/internal/models"
)

// revenueTrendChartID keeps the generated element and script IDs stable so
// report output stays byte-identical across runs with the same input.
const revenueTrendChartID = "chart-revenue-trend"

// RevenueTrendSnippet renders an interactive revenue line chart as an HTML
// fragment for embedding in the report body. It complements the PNG chart,
// which remains the canonical attachment.
func RevenueTrendSnippet(table *models.Table) (string, error) {
	if table.Len() == 0 {
		return "", fmt.Errorf("%w: no records to plot", ErrRender)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			ChartID: revenueTrendChartID,
			Theme:   types.ThemeWesteros,
			Width:   "900px",
			Height:  "450px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Revenue Over Time",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    true,
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: true,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Date",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Revenue",
		}),
	)

	dates := make([]string, table.Len())
	values := make([]opts.LineData, table.Len())
	for i, rec := range table.Records {
		dates[i] = rec.Date.Format(models.DateFormat)
		values[i] = opts.LineData{Value: rec.Revenue.InexactFloat64()}
	}

	line.SetXAxis(dates).
		AddSeries("Revenue", values).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{
			Smooth: true,
		}))

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}

	return buf.String(), nil
}
