// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"strings"

	"github.com/PoseidonKRL/FINDASH/internal/application/store"
	"github.com/PoseidonKRL/FINDASH/internal/domain/entity"
	domainerror "github.com/PoseidonKRL/FINDASH/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	Name          string
	Description   string
	TargetAmount  float64
	CurrentAmount float64
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	store *store.Store
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(store *store.Store) *CreateGoalUseCase {
	return &CreateGoalUseCase{store: store}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if err := validateGoalFields(input.Name, input.TargetAmount, input.CurrentAmount); err != nil {
		return nil, err
	}

	goal := entity.NewGoal(
		strings.TrimSpace(input.Name),
		input.Description,
		input.TargetAmount,
		input.CurrentAmount,
	)
	uc.store.AddGoal(ctx, goal)

	return &CreateGoalOutput{Goal: goal}, nil
}

// validateGoalFields checks the fields shared by goal creation and update.
// The current amount may exceed the target (overfunded goals are allowed);
// neither may be negative and the target must be set.
func validateGoalFields(name string, targetAmount, currentAmount float64) error {
	if strings.TrimSpace(name) == "" {
		return domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalName,
			"name is required",
			domainerror.ErrMissingGoalName,
		)
	}
	if targetAmount <= 0 {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}
	if currentAmount < 0 {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidCurrentAmount,
			"current amount must not be negative",
			domainerror.ErrInvalidCurrentAmount,
		)
	}
	return nil
}
