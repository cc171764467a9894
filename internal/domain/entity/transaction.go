// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// RemainderLabel is the description of the synthetic sub-item that captures
// the unallocated remainder of an expense (initial amount minus the sum of
// the user-authored sub-items). It is derived bookkeeping, never a
// user-authored line, and is recomputed on every edit.
const RemainderLabel = "Sobra"

// SubItem is a named partial amount composing a transaction's total.
type SubItem struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
}

// NewSubItem creates a new SubItem with a fresh id.
func NewSubItem(description string, amount decimal.Decimal) SubItem {
	return SubItem{
		ID:          uuid.New(),
		Description: description,
		Amount:      amount,
	}
}

// IsRemainder reports whether this sub-item is the synthetic remainder entry.
func (s SubItem) IsRemainder() bool {
	return s.Description == RemainderLabel
}

// Transaction represents a financial transaction in FINDASH.
//
// For expenses with sub-items, Amount holds the independently entered initial
// amount (a budget ceiling) and InitialAmount records it explicitly; the
// sub-item list then always sums to Amount because a remainder entry is
// appended when the user-authored items fall short. For incomes, Amount is
// simply the sum of the sub-items (or the bare amount when there are none).
type Transaction struct {
	ID            uuid.UUID
	CategoryID    uuid.UUID // dangling references are tolerated
	Type          TransactionType
	Amount        decimal.Decimal
	Description   string
	Date          time.Time
	Notes         string
	SubItems      []SubItem
	InitialAmount *decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewTransaction creates a new Transaction entity with a fresh unique id.
func NewTransaction(
	categoryID uuid.UUID,
	transactionType TransactionType,
	amount decimal.Decimal,
	description string,
	date time.Time,
	notes string,
	subItems []SubItem,
	initialAmount *decimal.Decimal,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:            uuid.New(),
		CategoryID:    categoryID,
		Type:          transactionType,
		Amount:        amount,
		Description:   description,
		Date:          date,
		Notes:         notes,
		SubItems:      subItems,
		InitialAmount: initialAmount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// SignedAmount returns the amount with its balance sign: positive for
// incomes, negative for expenses.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// InMonth reports whether the transaction date falls in the given year/month.
func (t *Transaction) InMonth(year int, month time.Month) bool {
	return t.Date.Year() == year && t.Date.Month() == month
}

// UserSubItems returns the user-authored sub-items, excluding any synthetic
// remainder entry.
func (t *Transaction) UserSubItems() []SubItem {
	if len(t.SubItems) == 0 {
		return nil
	}

	items := make([]SubItem, 0, len(t.SubItems))
	for _, item := range t.SubItems {
		if item.IsRemainder() {
			continue
		}
		items = append(items, item)
	}
	return items
}

// RemainderSubItem returns the synthetic remainder entry, or nil when the
// breakdown has none.
func (t *Transaction) RemainderSubItem() *SubItem {
	for i := range t.SubItems {
		if t.SubItems[i].IsRemainder() {
			return &t.SubItems[i]
		}
	}
	return nil
}

// SubItemsTotal returns the sum of all sub-item amounts, remainder included.
func (t *Transaction) SubItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range t.SubItems {
		total = total.Add(item.Amount)
	}
	return total
}

// TransactionWithCategory represents a transaction with its associated
// category. Category is nil when the reference is dangling.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}

// TransactionTotals represents aggregated totals for transactions.
type TransactionTotals struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}
