// Package transaction contains transaction-related use cases.
package transaction

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/PoseidonKRL/FINDASH/internal/domain/entity"
	domainerror "github.com/PoseidonKRL/FINDASH/internal/domain/error"
)

// remainderEpsilon is the threshold below which an expense remainder is
// considered zero and no remainder sub-item is appended.
var remainderEpsilon = decimal.NewFromFloat(0.001)

// Breakdown is the resolved amount and sub-item list of a transaction after
// composition rules have been applied.
type Breakdown struct {
	Amount        decimal.Decimal
	SubItems      []entity.SubItem
	InitialAmount *decimal.Decimal
}

// ComposeExpenseBreakdown resolves an expense entered with an initial amount
// and user-authored sub-items. The transaction amount is the initial amount
// itself; when the sub-items fall short of it by more than the epsilon, a
// synthetic remainder entry labeled entity.RemainderLabel is appended so the
// breakdown always sums to the amount. Sub-items summing to more than the
// initial amount are rejected.
func ComposeExpenseBreakdown(initialAmount decimal.Decimal, items []entity.SubItem) (Breakdown, error) {
	if err := validateUserSubItems(items); err != nil {
		return Breakdown{}, err
	}

	if len(items) == 0 {
		return Breakdown{Amount: initialAmount}, nil
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}

	if total.GreaterThan(initialAmount) {
		return Breakdown{}, domainerror.NewTransactionError(
			domainerror.ErrCodeSubItemsExceedInitial,
			"sub-items sum to more than the initial amount",
			domainerror.ErrSubItemsExceedInitialAmount,
		)
	}

	composed := make([]entity.SubItem, len(items))
	copy(composed, items)

	remainder := initialAmount.Sub(total)
	if remainder.GreaterThan(remainderEpsilon) {
		composed = append(composed, entity.NewSubItem(entity.RemainderLabel, remainder))
	}

	initial := initialAmount
	return Breakdown{
		Amount:        initialAmount,
		SubItems:      composed,
		InitialAmount: &initial,
	}, nil
}

// ComposeIncomeBreakdown resolves an income. Incomes carry no remainder: the
// transaction amount is the sum of the sub-items, or the bare amount when
// there are none.
func ComposeIncomeBreakdown(bareAmount decimal.Decimal, items []entity.SubItem) (Breakdown, error) {
	if err := validateUserSubItems(items); err != nil {
		return Breakdown{}, err
	}

	if len(items) == 0 {
		return Breakdown{Amount: bareAmount}, nil
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}

	composed := make([]entity.SubItem, len(items))
	copy(composed, items)

	return Breakdown{
		Amount:   total,
		SubItems: composed,
	}, nil
}

// SplitForEdit splits a stored transaction back into the user-facing edit
// shape: the user-authored sub-item rows and the entered initial amount. Any
// stored remainder entry is filtered out so a subsequent save recomputes it
// instead of duplicating it.
func SplitForEdit(t *entity.Transaction) ([]entity.SubItem, decimal.Decimal) {
	items := t.UserSubItems()

	if t.Type == entity.TransactionTypeExpense && t.InitialAmount != nil {
		return items, *t.InitialAmount
	}
	return items, t.Amount
}

func validateUserSubItems(items []entity.SubItem) error {
	for _, item := range items {
		if strings.TrimSpace(item.Description) == entity.RemainderLabel {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeReservedSubItem,
				"sub-item description is reserved for the remainder entry",
				domainerror.ErrReservedSubItemDescription,
			)
		}
	}
	return nil
}
