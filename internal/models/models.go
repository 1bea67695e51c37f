package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the calendar date layout used across the report pipeline.
const DateFormat = "2006-01-02"

// Record is one dated sales observation: an order count and a revenue amount.
type Record struct {
	Date    time.Time       `json:"date"`
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

// Table is the full ordered collection of records for a single pipeline run.
// It is loaded once, in file order, and never mutated afterwards.
type Table struct {
	Records []Record `json:"records"`
}

// Len returns the number of records in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// Metrics holds the aggregate figures derived from a table.
type Metrics struct {
	TotalOrders  int             `json:"total_orders"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	BestDay      Record          `json:"best_day"`
}

// Attachment is one named binary artifact attached to the outgoing report.
type Attachment struct {
	Filename string `json:"filename"`
	Data     []byte `json:"-"`
	MIMEType string `json:"mime_type"`
}

// ArtifactBundle is the terminal value of a pipeline run: the email subject,
// the rendered HTML body and the ordered attachment list. It is consumed
// exactly once by the mailer.
type ArtifactBundle struct {
	Subject     string
	HTMLBody    string
	Attachments []Attachment
}
