package goal

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/PoseidonKRL/FINDASH/internal/application/store"
	"github.com/PoseidonKRL/FINDASH/internal/domain/entity"
)

// UpdateGoalInput represents the input for a full goal update.
type UpdateGoalInput struct {
	ID            uuid.UUID
	Name          string
	Description   string
	TargetAmount  float64
	CurrentAmount float64
}

// UpdateGoalOutput represents the output of a goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	store *store.Store
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(store *store.Store) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{store: store}
}

// Execute replaces the stored goal under the same id. Updating an absent id
// returns domainerror.ErrGoalNotFound and changes nothing.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	existing, err := uc.store.FindGoal(input.ID)
	if err != nil {
		return nil, err
	}

	if err := validateGoalFields(input.Name, input.TargetAmount, input.CurrentAmount); err != nil {
		return nil, err
	}

	updated := &entity.Goal{
		ID:            existing.ID,
		Name:          strings.TrimSpace(input.Name),
		Description:   input.Description,
		TargetAmount:  input.TargetAmount,
		CurrentAmount: input.CurrentAmount,
		CreatedAt:     existing.CreatedAt,
		UpdatedAt:     time.Now().UTC(),
	}

	if err := uc.store.UpdateGoal(ctx, updated); err != nil {
		return nil, err
	}

	return &UpdateGoalOutput{Goal: updated}, nil
}
