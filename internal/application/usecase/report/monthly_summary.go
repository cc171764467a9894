// Package report contains aggregation use cases computed over the
// transaction collection.
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/PoseidonKRL/FINDASH/internal/application/store"
	"github.com/PoseidonKRL/FINDASH/internal/domain/entity"
)

// MonthlySummaryInput represents the input for the monthly summary.
type MonthlySummaryInput struct {
	Year  int
	Month time.Month
}

// MonthlySummaryOutput represents the monthly income, expense, and net totals.
type MonthlySummaryOutput struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// MonthlySummaryUseCase computes the totals of one calendar month.
type MonthlySummaryUseCase struct {
	store *store.Store
}

// NewMonthlySummaryUseCase creates a new MonthlySummaryUseCase instance.
func NewMonthlySummaryUseCase(store *store.Store) *MonthlySummaryUseCase {
	return &MonthlySummaryUseCase{store: store}
}

// Execute sums the month's incomes and expenses. Transactions outside the
// month contribute nothing.
func (uc *MonthlySummaryUseCase) Execute(_ context.Context, input MonthlySummaryInput) (*MonthlySummaryOutput, error) {
	income := decimal.Zero
	expense := decimal.Zero

	for _, transaction := range uc.store.Transactions() {
		if !transaction.InMonth(input.Year, input.Month) {
			continue
		}
		if transaction.Type == entity.TransactionTypeIncome {
			income = income.Add(transaction.Amount)
		} else {
			expense = expense.Add(transaction.Amount)
		}
	}

	return &MonthlySummaryOutput{
		Income:  income,
		Expense: expense,
		Net:     income.Sub(expense),
	}, nil
}
