package transaction

import (
	"context"

	"github.com/PoseidonKRL/FINDASH/internal/application/store"
	"github.com/PoseidonKRL/FINDASH/internal/domain/entity"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Form *Form
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	store *store.Store
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(store *store.Store) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{store: store}
}

// Execute performs the transaction creation. Validation failure returns a
// domain error and leaves the store unchanged.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	breakdown, err := input.Form.Build()
	if err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(
		input.Form.CategoryID,
		input.Form.Type,
		breakdown.Amount,
		input.Form.Description,
		input.Form.Date,
		input.Form.Notes,
		breakdown.SubItems,
		breakdown.InitialAmount,
	)

	uc.store.AddTransaction(ctx, transaction)

	return &CreateTransactionOutput{Transaction: transaction}, nil
}
