package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"salesreport/internal/models"
)

// ErrDataLoad indicates the dataset could not be loaded or parsed. The run
// aborts, there is no partial table.
var ErrDataLoad = errors.New("data load failed")

// Loader reads the sales dataset from a local CSV file or an HTTP endpoint
type Loader struct {
	client *resty.Client
}

// NewLoader creates a new dataset loader
func NewLoader() *Loader {
	client := resty.New()
	client.SetTimeout(30 * time.Second)

	return &Loader{client: client}
}

// LoadFile reads and parses a CSV dataset from disk
func (l *Loader) LoadFile(path string) (*models.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrDataLoad, path, err)
	}
	return parseCSV(data)
}

// LoadURL fetches a CSV dataset over HTTP and parses it with the same rules
// as a local file
func (l *Loader) LoadURL(ctx context.Context, url string) (*models.Table, error) {
	resp, err := l.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %v", ErrDataLoad, url, err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrDataLoad, url, resp.StatusCode())
	}

	return parseCSV(resp.Body())
}

// parseCSV parses the raw dataset. The first row must be a header naming the
// date, orders and revenue columns; extra columns are ignored and record
// order is preserved.
func parseCSV(data []byte) (*models.Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: malformed CSV: %v", ErrDataLoad, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: dataset has no records", ErrDataLoad)
	}

	columns := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"date", "orders", "revenue"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: missing required column %q", ErrDataLoad, required)
		}
	}

	records := make([]models.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2 // 1-based, after the header

		date, err := time.Parse(models.DateFormat, strings.TrimSpace(row[columns["date"]]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: invalid date %q", ErrDataLoad, line, row[columns["date"]])
		}

		orders, err := strconv.Atoi(strings.TrimSpace(row[columns["orders"]]))
		if err != nil || orders < 0 {
			return nil, fmt.Errorf("%w: line %d: invalid order count %q", ErrDataLoad, line, row[columns["orders"]])
		}

		revenue, err := decimal.NewFromString(strings.TrimSpace(row[columns["revenue"]]))
		if err != nil || revenue.IsNegative() {
			return nil, fmt.Errorf("%w: line %d: invalid revenue %q", ErrDataLoad, line, row[columns["revenue"]])
		}

		records = append(records, models.Record{Date: date, Orders: orders, Revenue: revenue})
	}

	return &models.Table{Records: records}, nil
}
