package transaction

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PoseidonKRL/FINDASH/internal/domain/entity"
	domainerror "github.com/PoseidonKRL/FINDASH/internal/domain/error"
)

// FormRow is one editable sub-item line of the transaction form.
type FormRow struct {
	Description string
	Amount      decimal.Decimal
}

// Form models the transaction entry form: the shared fields plus the
// sub-item rows. Validation failures leave the form untouched so the caller
// can correct and retry without losing input.
type Form struct {
	Type        entity.TransactionType
	CategoryID  uuid.UUID
	Description string
	Date        time.Time
	Notes       string
	Amount      decimal.Decimal
	Rows        []FormRow
}

// NewForm creates an empty form of the given type with one blank row.
func NewForm(transactionType entity.TransactionType) *Form {
	return &Form{
		Type: transactionType,
		Rows: []FormRow{{}},
	}
}

// NewFormFromTransaction repopulates a form from a stored transaction for
// editing. Stored remainder entries are split back out so saving the form
// recomputes the remainder instead of stacking a second one.
func NewFormFromTransaction(t *entity.Transaction) *Form {
	items, amount := SplitForEdit(t)

	rows := make([]FormRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, FormRow{Description: item.Description, Amount: item.Amount})
	}
	if len(rows) == 0 {
		rows = []FormRow{{}}
	}

	return &Form{
		Type:        t.Type,
		CategoryID:  t.CategoryID,
		Description: t.Description,
		Date:        t.Date,
		Notes:       t.Notes,
		Amount:      amount,
		Rows:        rows,
	}
}

// AddRow appends a blank sub-item row.
func (f *Form) AddRow() {
	f.Rows = append(f.Rows, FormRow{})
}

// RemoveRow removes the row at index. The form always keeps at least one row,
// and out-of-range indexes are ignored.
func (f *Form) RemoveRow(index int) {
	if len(f.Rows) <= 1 || index < 0 || index >= len(f.Rows) {
		return
	}
	f.Rows = append(f.Rows[:index], f.Rows[index+1:]...)
}

// MoveRowUp swaps the row at index with the one above it.
func (f *Form) MoveRowUp(index int) {
	if index <= 0 || index >= len(f.Rows) {
		return
	}
	f.Rows[index-1], f.Rows[index] = f.Rows[index], f.Rows[index-1]
}

// MoveRowDown swaps the row at index with the one below it.
func (f *Form) MoveRowDown(index int) {
	if index < 0 || index >= len(f.Rows)-1 {
		return
	}
	f.Rows[index], f.Rows[index+1] = f.Rows[index+1], f.Rows[index]
}

// filledRows returns the rows the user actually filled in. Blank rows (the
// initial empty row, rows cleared but not removed) are skipped.
func (f *Form) filledRows() []FormRow {
	rows := make([]FormRow, 0, len(f.Rows))
	for _, row := range f.Rows {
		if strings.TrimSpace(row.Description) == "" && row.Amount.IsZero() {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// Validate checks the form without mutating it.
func (f *Form) Validate() error {
	if f.Type != entity.TransactionTypeExpense && f.Type != entity.TransactionTypeIncome {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if strings.TrimSpace(f.Description) == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingDescription,
			"description is required",
			domainerror.ErrMissingDescription,
		)
	}
	if f.CategoryID == uuid.Nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingCategory,
			"a category must be selected",
			domainerror.ErrMissingCategory,
		)
	}
	if f.Date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}
	return nil
}

// Build validates the form and resolves it into a breakdown. On error the
// form is left intact and no breakdown is produced.
func (f *Form) Build() (Breakdown, error) {
	if err := f.Validate(); err != nil {
		return Breakdown{}, err
	}

	items := make([]entity.SubItem, 0, len(f.Rows))
	for _, row := range f.filledRows() {
		items = append(items, entity.NewSubItem(strings.TrimSpace(row.Description), row.Amount))
	}

	var breakdown Breakdown
	var err error
	if f.Type == entity.TransactionTypeExpense {
		breakdown, err = ComposeExpenseBreakdown(f.Amount, items)
	} else {
		breakdown, err = ComposeIncomeBreakdown(f.Amount, items)
	}
	if err != nil {
		return Breakdown{}, err
	}

	if !breakdown.Amount.IsPositive() {
		return Breakdown{}, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	return breakdown, nil
}
