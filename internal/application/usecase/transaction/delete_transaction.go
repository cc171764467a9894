package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/PoseidonKRL/FINDASH/internal/application/store"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	ID uuid.UUID
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	store *store.Store
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(store *store.Store) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{store: store}
}

// Execute removes the transaction. Deleting an id that is not present is a
// no-op, not an error.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	uc.store.DeleteTransaction(ctx, input.ID)
	return nil
}
