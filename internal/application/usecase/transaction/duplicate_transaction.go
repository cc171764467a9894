package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PoseidonKRL/FINDASH/internal/application/store"
	"github.com/PoseidonKRL/FINDASH/internal/domain/entity"
)

// DuplicateTransactionInput represents the input for duplicating a
// transaction at a new date.
type DuplicateTransactionInput struct {
	ID   uuid.UUID
	Date time.Time
}

// DuplicateTransactionOutput represents the output of a duplication.
type DuplicateTransactionOutput struct {
	Transaction *entity.Transaction
}

// DuplicateTransactionUseCase copies an existing transaction under a fresh
// id at a chosen date, keeping its breakdown. Recurring entries (rent, a
// monthly salary) are re-entered this way.
type DuplicateTransactionUseCase struct {
	store *store.Store
}

// NewDuplicateTransactionUseCase creates a new DuplicateTransactionUseCase instance.
func NewDuplicateTransactionUseCase(store *store.Store) *DuplicateTransactionUseCase {
	return &DuplicateTransactionUseCase{store: store}
}

// Execute performs the duplication.
func (uc *DuplicateTransactionUseCase) Execute(ctx context.Context, input DuplicateTransactionInput) (*DuplicateTransactionOutput, error) {
	source, err := uc.store.FindTransaction(input.ID)
	if err != nil {
		return nil, err
	}

	subItems := make([]entity.SubItem, len(source.SubItems))
	for i, item := range source.SubItems {
		subItems[i] = entity.NewSubItem(item.Description, item.Amount)
	}

	var initialAmount *decimal.Decimal
	if source.InitialAmount != nil {
		initial := *source.InitialAmount
		initialAmount = &initial
	}

	duplicate := entity.NewTransaction(
		source.CategoryID,
		source.Type,
		source.Amount,
		source.Description,
		input.Date,
		source.Notes,
		subItems,
		initialAmount,
	)

	uc.store.AddTransaction(ctx, duplicate)

	return &DuplicateTransactionOutput{Transaction: duplicate}, nil
}
