package metrics

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"salesreport/internal/models"
)

// ErrEmptyDataset indicates a summary was requested for a table with zero
// records. There is no zero-valued default, the run aborts.
var ErrEmptyDataset = errors.New("dataset is empty")

// Summarize computes the aggregate metrics for a table: total orders, total
// revenue and the best-performing record. The best record is the one with the
// highest revenue; the earliest record in table order wins ties.
func Summarize(table *models.Table) (*models.Metrics, error) {
	if table.Len() == 0 {
		return nil, fmt.Errorf("%w: cannot summarize zero records", ErrEmptyDataset)
	}

	totalOrders := 0
	totalRevenue := decimal.Zero
	best := table.Records[0]

	for _, rec := range table.Records {
		totalOrders += rec.Orders
		totalRevenue = totalRevenue.Add(rec.Revenue)
		if rec.Revenue.GreaterThan(best.Revenue) {
			best = rec
		}
	}

	return &models.Metrics{
		TotalOrders:  totalOrders,
		TotalRevenue: totalRevenue,
		BestDay:      best,
	}, nil
}
