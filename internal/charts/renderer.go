package charts

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"salesreport/internal/models"
)

// ErrRender indicates the revenue chart could not be produced.
var ErrRender = errors.New("chart render failed")

var seriesColor = drawing.Color{R: 51, G: 102, B: 204, A: 255}

// Renderer produces the chart artifacts for a report run
type Renderer struct {
	width  int
	height int
}

// NewRenderer creates a chart renderer with the default canvas size
func NewRenderer() *Renderer {
	return &Renderer{
		width:  900,
		height: 450,
	}
}

// RenderPNG plots revenue over time as a line series and returns the encoded
// PNG bytes. Records are plotted in table order; the renderer does not
// re-sort.
func (r *Renderer) RenderPNG(table *models.Table) ([]byte, error) {
	if table.Len() == 0 {
		return nil, fmt.Errorf("%w: no records to plot", ErrRender)
	}

	xValues := make([]time.Time, table.Len())
	yValues := make([]float64, table.Len())
	for i, rec := range table.Records {
		v := rec.Revenue.InexactFloat64()
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: revenue for %s is not encodable", ErrRender, rec.Date.Format(models.DateFormat))
		}
		xValues[i] = rec.Date
		yValues[i] = v
	}

	xAxis := chart.XAxis{
		Name: "Date",
		NameStyle: chart.Style{
			FontSize: 12,
		},
		Style: chart.Style{
			FontSize: 9,
		},
		ValueFormatter: dateValueFormatter,
	}
	if table.Len() == 1 {
		// go-chart rejects a zero x-range delta, pad a day either side of
		// the lone date so single-record tables still render
		lone := xValues[0]
		xAxis.Range = &chart.ContinuousRange{
			Min: chart.TimeToFloat64(lone.AddDate(0, 0, -1)),
			Max: chart.TimeToFloat64(lone.AddDate(0, 0, 1)),
		}
		xAxis.Ticks = []chart.Tick{
			{Value: xAxis.Range.GetMin(), Label: lone.AddDate(0, 0, -1).Format(models.DateFormat)},
			{Value: chart.TimeToFloat64(lone), Label: lone.Format(models.DateFormat)},
			{Value: xAxis.Range.GetMax(), Label: lone.AddDate(0, 0, 1).Format(models.DateFormat)},
		}
	}

	graph := chart.Chart{
		Title: "Revenue Over Time",
		TitleStyle: chart.Style{
			FontSize:  16,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   70,
				Right:  20,
				Bottom: 60,
			},
		},
		Width:  r.width,
		Height: r.height,
		XAxis:  xAxis,
		YAxis: chart.YAxis{
			Name: "Revenue",
			NameStyle: chart.Style{
				FontSize: 12,
			},
			Style: chart.Style{
				FontSize: 10,
			},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name: "Revenue",
				Style: chart.Style{
					StrokeColor: seriesColor,
					StrokeWidth: 2,
					DotColor:    seriesColor,
					DotWidth:    4,
				},
				XValues: xValues,
				YValues: yValues,
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	return buf.Bytes(), nil
}

// RenderToFile renders the chart and writes it to path as well as returning
// the bytes
func (r *Renderer) RenderToFile(table *models.Table, path string) ([]byte, error) {
	data, err := r.RenderPNG(table)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("%w: writing %s: %v", ErrRender, path, err)
	}
	return data, nil
}

// dateValueFormatter formats axis tick values as calendar dates
func dateValueFormatter(v interface{}) string {
	switch value := v.(type) {
	case time.Time:
		return value.Format(models.DateFormat)
	case float64:
		return chart.TimeFromFloat64(value).Format(models.DateFormat)
	default:
		return ""
	}
}
