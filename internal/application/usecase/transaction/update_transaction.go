package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/PoseidonKRL/FINDASH/internal/application/store"
	"github.com/PoseidonKRL/FINDASH/internal/domain/entity"
)

// UpdateTransactionInput represents the input for a full transaction update.
type UpdateTransactionInput struct {
	ID   uuid.UUID
	Form *Form
}

// UpdateTransactionOutput represents the output of a transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	store *store.Store
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(store *store.Store) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{store: store}
}

// Execute replaces the stored transaction with the form contents under the
// same id. The breakdown is recomposed from scratch, so a remainder entry
// present in the stored version never carries over. Updating an absent id
// returns domainerror.ErrTransactionNotFound and changes nothing.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	existing, err := uc.store.FindTransaction(input.ID)
	if err != nil {
		return nil, err
	}

	breakdown, err := input.Form.Build()
	if err != nil {
		return nil, err
	}

	updated := &entity.Transaction{
		ID:            existing.ID,
		CategoryID:    input.Form.CategoryID,
		Type:          input.Form.Type,
		Amount:        breakdown.Amount,
		Description:   input.Form.Description,
		Date:          input.Form.Date,
		Notes:         input.Form.Notes,
		SubItems:      breakdown.SubItems,
		InitialAmount: breakdown.InitialAmount,
		CreatedAt:     existing.CreatedAt,
		UpdatedAt:     time.Now().UTC(),
	}

	if err := uc.store.UpdateTransaction(ctx, updated); err != nil {
		return nil, err
	}

	return &UpdateTransactionOutput{Transaction: updated}, nil
}
