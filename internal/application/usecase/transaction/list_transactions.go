package transaction

import (
	"context"
	"sort"
	"time"

	"github.com/PoseidonKRL/FINDASH/internal/application/store"
	"github.com/PoseidonKRL/FINDASH/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
// Year/Month restrict the listing to one calendar month; Type, when set,
// restricts it further to expenses or incomes.
type ListTransactionsInput struct {
	Year  int
	Month time.Month
	Type  *entity.TransactionType
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []entity.TransactionWithCategory
}

// ListTransactionsUseCase handles transaction listing logic.
type ListTransactionsUseCase struct {
	store *store.Store
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(store *store.Store) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{store: store}
}

// Execute lists the month's transactions newest-first, each joined with its
// category. Dangling category references yield a nil category.
func (uc *ListTransactionsUseCase) Execute(_ context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	matched := make([]entity.TransactionWithCategory, 0)
	for _, transaction := range uc.store.Transactions() {
		if !transaction.InMonth(input.Year, input.Month) {
			continue
		}
		if input.Type != nil && transaction.Type != *input.Type {
			continue
		}

		category, _ := uc.store.FindCategory(transaction.CategoryID)
		matched = append(matched, entity.TransactionWithCategory{
			Transaction: transaction,
			Category:    category,
		})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Transaction.Date.After(matched[j].Transaction.Date)
	})

	return &ListTransactionsOutput{Transactions: matched}, nil
}
