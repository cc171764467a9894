package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/PoseidonKRL/FINDASH/internal/application/store"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	ID uuid.UUID
}

// DeleteGoalUseCase handles goal deletion logic.
type DeleteGoalUseCase struct {
	store *store.Store
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(store *store.Store) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{store: store}
}

// Execute removes the goal. Deleting an id that is not present is a no-op.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	uc.store.DeleteGoal(ctx, input.ID)
	return nil
}
