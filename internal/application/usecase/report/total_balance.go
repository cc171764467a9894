package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/PoseidonKRL/FINDASH/internal/application/store"
)

// TotalBalanceOutput represents the lifetime balance.
type TotalBalanceOutput struct {
	Balance decimal.Decimal
}

// TotalBalanceUseCase computes the signed sum over every transaction ever
// recorded, regardless of month.
type TotalBalanceUseCase struct {
	store *store.Store
}

// NewTotalBalanceUseCase creates a new TotalBalanceUseCase instance.
func NewTotalBalanceUseCase(store *store.Store) *TotalBalanceUseCase {
	return &TotalBalanceUseCase{store: store}
}

// Execute sums incomes positively and expenses negatively.
func (uc *TotalBalanceUseCase) Execute(_ context.Context) (*TotalBalanceOutput, error) {
	balance := decimal.Zero
	for _, transaction := range uc.store.Transactions() {
		balance = balance.Add(transaction.SignedAmount())
	}
	return &TotalBalanceOutput{Balance: balance}, nil
}
