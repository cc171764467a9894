package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/PoseidonKRL/FINDASH/internal/application/store"
	"github.com/PoseidonKRL/FINDASH/internal/domain/entity"
)

// DefaultTrendMonths is the number of trailing months shown on the dashboard
// trend chart.
const DefaultTrendMonths = 6

// TrendSeriesInput represents the input for the trend series. Reference
// anchors the window (the last bucket is the reference's month); Months
// defaults to DefaultTrendMonths when not positive.
type TrendSeriesInput struct {
	Reference time.Time
	Months    int
}

// TrendPoint is one monthly bucket of the trend series.
type TrendPoint struct {
	Label   string
	Year    int
	Month   time.Month
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// TrendSeriesOutput represents the output of the trend series.
type TrendSeriesOutput struct {
	Points []TrendPoint
}

// TrendSeriesUseCase computes the trailing monthly income/expense series.
type TrendSeriesUseCase struct {
	store *store.Store
}

// NewTrendSeriesUseCase creates a new TrendSeriesUseCase instance.
func NewTrendSeriesUseCase(store *store.Store) *TrendSeriesUseCase {
	return &TrendSeriesUseCase{store: store}
}

// Execute builds the series oldest-to-newest with one bucket per month,
// zero-filled for months without transactions. Transactions outside the
// window contribute nothing.
func (uc *TrendSeriesUseCase) Execute(_ context.Context, input TrendSeriesInput) (*TrendSeriesOutput, error) {
	months := input.Months
	if months <= 0 {
		months = DefaultTrendMonths
	}

	type bucketKey struct {
		year  int
		month time.Month
	}

	points := make([]TrendPoint, months)
	indexByKey := make(map[bucketKey]int, months)

	anchor := time.Date(input.Reference.Year(), input.Reference.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < months; i++ {
		bucket := anchor.AddDate(0, i-(months-1), 0)
		key := bucketKey{year: bucket.Year(), month: bucket.Month()}
		points[i] = TrendPoint{
			Label:   formatMonthLabel(bucket),
			Year:    key.year,
			Month:   key.month,
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
		indexByKey[key] = i
	}

	for _, transaction := range uc.store.Transactions() {
		key := bucketKey{year: transaction.Date.Year(), month: transaction.Date.Month()}
		i, ok := indexByKey[key]
		if !ok {
			continue
		}
		if transaction.Type == entity.TransactionTypeIncome {
			points[i].Income = points[i].Income.Add(transaction.Amount)
		} else {
			points[i].Expense = points[i].Expense.Add(transaction.Amount)
		}
	}

	return &TrendSeriesOutput{Points: points}, nil
}

// monthAbbreviations maps months to Portuguese abbreviations.
var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Fev",
	time.March:     "Mar",
	time.April:     "Abr",
	time.May:       "Mai",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Ago",
	time.September: "Set",
	time.October:   "Out",
	time.November:  "Nov",
	time.December:  "Dez",
}

func formatMonthLabel(date time.Time) string {
	return fmt.Sprintf("%s %d", monthAbbreviations[date.Month()], date.Year())
}
